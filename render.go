package ezprint

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
)

func (p *Printer) render(s *sink, v reflect.Value) {
	if !v.IsValid() {
		s.writeString(nilMarker)
		return
	}
	pl := p.planFor(v.Type())
	if v.Kind() == reflect.Pointer && v.IsNil() && (pl.kind == KindTuple || pl.all >= 0) {
		s.writeString(nilMarker)
		return
	}
	switch pl.kind {
	case KindDynamic:
		if v.IsNil() {
			s.writeString(nilMarker)
			return
		}
		p.render(s, v.Elem())
	case KindDirect:
		writeDirect(s, v, pl)
	case KindIterable:
		p.writeIterable(s, v, pl)
	case KindAssociative:
		p.writeAssociative(s, v, pl)
	case KindTuple:
		t := v.Interface().(Tuple)
		p.writeElems(s, t.Arity(), func(i int) reflect.Value { return reflect.ValueOf(t.Elem(i)) })
	case KindAggregate:
		fl := fieldsOf(v, pl.fields)
		p.writeElems(s, len(fl), fl.at)
	default:
		s.writeString(unknownMarker)
	}
}

func writeDirect(s *sink, v reflect.Value, pl *plan) {
	if !pl.text {
		_, _ = fmt.Fprint(s, v.Interface())
		return
	}
	if v.Kind() == reflect.Slice {
		_, _ = s.Write(v.Bytes())
		return
	}
	b := make([]byte, v.Len())
	for i := range b {
		b[i] = byte(v.Index(i).Uint())
	}
	_, _ = s.Write(b)
}

// writeElems writes {e0 e1 ...}: the first element unprefixed, every later
// one prefixed by a single space. Zero elements give "{}".
func (p *Printer) writeElems(s *sink, n int, at func(int) reflect.Value) {
	s.writeString("{")
	for i := range n {
		if i > 0 {
			s.writeString(" ")
		}
		p.render(s, at(i))
	}
	s.writeString("}")
}

// source returns the value to range over: the result of the All() method
// when the plan names one, otherwise v itself.
func source(v reflect.Value, pl *plan) reflect.Value {
	if pl.all >= 0 {
		return v.Method(pl.all).Call(nil)[0]
	}
	return v
}

func (p *Printer) writeIterable(s *sink, v reflect.Value, pl *plan) {
	src := source(v, pl)
	if src.Kind() != reflect.Func {
		p.writeElems(s, src.Len(), src.Index)
		return
	}
	s.writeString("{")
	if !src.IsNil() {
		i := 0
		for e := range src.Seq() {
			if i > 0 {
				s.writeString(" ")
			}
			p.render(s, e)
			i++
		}
	}
	s.writeString("}")
}

func (p *Printer) writeAssociative(s *sink, v reflect.Value, pl *plan) {
	src := source(v, pl)
	s.writeString("{")
	i := 0
	pair := func(k, e reflect.Value) {
		if i > 0 {
			s.writeString(" ")
		}
		p.render(s, k)
		s.writeString(": ")
		p.render(s, e)
		i++
	}
	if src.Kind() == reflect.Map {
		for _, k := range p.sortedKeys(src) {
			pair(k, src.MapIndex(k))
		}
	} else if !src.IsNil() {
		for k, e := range src.Seq2() {
			pair(k, e)
		}
	}
	s.writeString("}")
}

// sortedKeys orders map keys so output does not depend on map iteration
// order. Keys that still tie are ordered by their rendered values; pairs that
// tie on both render identically in either order.
func (p *Printer) sortedKeys(m reflect.Value) []reflect.Value {
	keys := m.MapKeys()
	slices.SortStableFunc(keys, func(a, b reflect.Value) int {
		if c := p.compareKeys(a, b); c != 0 {
			return c
		}
		return cmp.Compare(p.Sprint(m.MapIndex(a).Interface()), p.Sprint(m.MapIndex(b).Interface()))
	})
	return keys
}

// compareKeys orders two keys of the same map. Ordered kinds compare by
// value. Everything else compares by rendered text, then by shape, so keys
// that render alike (pointers, channels, colliding Stringers) still get a
// fixed order.
func (p *Printer) compareKeys(a, b reflect.Value) int {
	if a.Kind() == reflect.Interface {
		if a.IsNil() || b.IsNil() {
			return cmp.Compare(boolRank(!a.IsNil()), boolRank(!b.IsNil()))
		}
		a, b = a.Elem(), b.Elem()
		if a.Type() != b.Type() {
			return cmp.Compare(a.Type().String(), b.Type().String())
		}
	}
	if c, ok := compareOrdered(a, b); ok {
		return c
	}
	if a.CanInterface() && b.CanInterface() {
		if c := cmp.Compare(p.Sprint(a.Interface()), p.Sprint(b.Interface())); c != 0 {
			return c
		}
	}
	return p.compareShape(a, b)
}

func compareOrdered(a, b reflect.Value) (int, bool) {
	switch a.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(a.Int(), b.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(a.Uint(), b.Uint()), true
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(a.Float(), b.Float()), true
	case reflect.Complex64, reflect.Complex128:
		x, y := a.Complex(), b.Complex()
		if c := cmp.Compare(real(x), real(y)); c != 0 {
			return c, true
		}
		return cmp.Compare(imag(x), imag(y)), true
	case reflect.String:
		return cmp.Compare(a.String(), b.String()), true
	case reflect.Bool:
		return cmp.Compare(boolRank(a.Bool()), boolRank(b.Bool())), true
	}
	return 0, false
}

// compareShape breaks ties between keys with equal text. Reference kinds
// compare by address; structs and arrays element by element.
func (p *Printer) compareShape(a, b reflect.Value) int {
	switch a.Kind() {
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return cmp.Compare(a.Pointer(), b.Pointer())
	case reflect.Struct:
		for i := range a.NumField() {
			if c := p.compareKeys(a.Field(i), b.Field(i)); c != 0 {
				return c
			}
		}
	case reflect.Array:
		for i := range a.Len() {
			if c := p.compareKeys(a.Index(i), b.Index(i)); c != 0 {
				return c
			}
		}
	}
	return 0
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}
