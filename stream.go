package ezprint

import (
	"io"
	"iter"
	"reflect"
)

// FprintIter renders values from seq to w as they arrive, separated by single
// spaces, exactly as [Fprint] would render them all at once. It stops pulling
// from seq at the first write error and returns it.
func FprintIter[T any](w io.Writer, seq iter.Seq[T]) error {
	return std.fprintSeq(w, func(yield func(reflect.Value) bool) {
		for item := range seq {
			if !yield(reflect.ValueOf(any(item))) {
				return
			}
		}
	})
}

// FprintChan renders values received from ch until it is closed.
// It is a thin wrapper around [FprintIter].
func FprintChan[T any](w io.Writer, ch <-chan T) error {
	return FprintIter(w, chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}

func (p *Printer) fprintSeq(w io.Writer, seq iter.Seq[reflect.Value]) error {
	s := &sink{w: w}
	first := true
	for v := range seq {
		if !first {
			s.writeString(" ")
		}
		first = false
		p.render(s, v)
		if s.err != nil {
			return s.err
		}
	}
	return nil
}
