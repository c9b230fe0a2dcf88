package ezprint

import (
	"fmt"
	"reflect"
)

var (
	errorType     = reflect.TypeFor[error]()
	stringerType  = reflect.TypeFor[fmt.Stringer]()
	formatterType = reflect.TypeFor[fmt.Formatter]()
	tupleType     = reflect.TypeFor[Tuple]()
)

// plan is the cached classification of one type.
type plan struct {
	kind   Kind
	text   bool  // byte sequence written as raw text
	all    int   // index of an All() iterator method, -1 when ranging the value itself
	fields []int // struct field indexes in declaration order
	err    error // why kind is KindUnknown
}

func (p *Printer) planFor(t reflect.Type) *plan {
	if pl, ok := p.plans.Load(t); ok {
		return pl.(*plan)
	}
	pl, _ := p.plans.LoadOrStore(t, p.classify(t))
	return pl.(*plan)
}

// classify picks the first strategy that applies to t. The order matters:
// a type's own rendering wins over its shape.
func (p *Printer) classify(t reflect.Type) *plan {
	if t.Kind() == reflect.Interface {
		return &plan{kind: KindDynamic, all: -1}
	}
	if pl, ok := p.direct(t); ok {
		return pl
	}
	if pl, ok := iterable(t); ok {
		return pl
	}
	if t.Implements(tupleType) {
		return &plan{kind: KindTuple, all: -1}
	}
	if t.Kind() == reflect.Struct {
		return p.decompose(t)
	}
	return &plan{kind: KindUnknown, all: -1, err: fmt.Errorf("%w: %s", ErrUnsupportedType, t)}
}

func (p *Printer) direct(t reflect.Type) (*plan, bool) {
	if t.Implements(errorType) || t.Implements(stringerType) || t.Implements(formatterType) {
		return &plan{kind: KindDirect, all: -1}, true
	}
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128,
		reflect.String:
		return &plan{kind: KindDirect, all: -1}, true
	case reflect.Slice, reflect.Array:
		// Decided by element kind, never by content.
		if p.bytesAsText && t.Elem().Kind() == reflect.Uint8 {
			return &plan{kind: KindDirect, text: true, all: -1}, true
		}
	}
	return nil, false
}

func iterable(t reflect.Type) (*plan, bool) {
	// A declared traversal wins over the underlying representation.
	if m, ok := t.MethodByName("All"); ok && m.Type.NumIn() == 1 && m.Type.NumOut() == 1 {
		if pl, ok := seqPlan(m.Type.Out(0), m.Index); ok {
			return pl, true
		}
	}
	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		return &plan{kind: KindIterable, all: -1}, true
	case reflect.Map:
		return &plan{kind: KindAssociative, all: -1}, true
	case reflect.Func:
		return seqPlan(t, -1)
	}
	return nil, false
}

// seqPlan accepts iter.Seq and iter.Seq2 shaped function types.
func seqPlan(t reflect.Type, method int) (*plan, bool) {
	if t.Kind() != reflect.Func {
		return nil, false
	}
	switch {
	case t.CanSeq2():
		return &plan{kind: KindAssociative, all: method}, true
	case t.CanSeq():
		return &plan{kind: KindIterable, all: method}, true
	}
	return nil, false
}

// Check reports the first type reachable from t that renders as unknown.
// Element, key, and field types are followed; interface slots are not, since
// their content is only known per value.
func (p *Printer) Check(t reflect.Type) error {
	return p.check(t, make(map[reflect.Type]bool))
}

func (p *Printer) check(t reflect.Type, seen map[reflect.Type]bool) error {
	if seen[t] {
		return nil
	}
	seen[t] = true

	pl := p.planFor(t)
	switch pl.kind {
	case KindUnknown:
		return pl.err
	case KindIterable, KindAssociative:
		if pl.all >= 0 {
			return p.checkSeq(t.Method(pl.all).Type.Out(0), seen)
		}
		switch t.Kind() {
		case reflect.Map:
			if err := p.check(t.Key(), seen); err != nil {
				return err
			}
			return p.check(t.Elem(), seen)
		case reflect.Slice, reflect.Array:
			return p.check(t.Elem(), seen)
		case reflect.Func:
			return p.checkSeq(t, seen)
		}
	case KindAggregate:
		for _, i := range pl.fields {
			if err := p.check(t.Field(i).Type, seen); err != nil {
				return fmt.Errorf("%s.%s: %w", t, t.Field(i).Name, err)
			}
		}
	}
	return nil
}

// checkSeq follows the yield parameters of an iterator function type.
func (p *Printer) checkSeq(t reflect.Type, seen map[reflect.Type]bool) error {
	yield := t.In(0)
	for i := range yield.NumIn() {
		if err := p.check(yield.In(i), seen); err != nil {
			return err
		}
	}
	return nil
}
