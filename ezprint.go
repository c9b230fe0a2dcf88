package ezprint

import (
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"
	"sync"
)

// Sentinel errors for programmatic error handling. Formatting itself never
// fails on a value; these come from [Check] and [ParseKind].
var (
	ErrUnsupportedType = errors.New("unsupported type")
	ErrUnexportedField = errors.New("unexported field")
	ErrFieldLimit      = errors.New("field limit exceeded")
	ErrUnknownKind     = errors.New("unknown kind")
)

// DefaultMaxFields is the largest struct field count a [Printer] decomposes
// unless configured otherwise with [WithMaxFields].
const DefaultMaxFields = 64

const (
	unknownMarker = "!(UNKNOWN TYPE)"
	nilMarker     = "<nil>"
)

// Kind is the rendering strategy selected for a type.
type Kind int

const (
	KindUnknown     Kind = iota // rendered as "!(UNKNOWN TYPE)"
	KindDirect                  // native text: basic kinds, Stringer, error, Formatter, byte text
	KindIterable                // {e1 e2 e3}
	KindAssociative             // {k1: v1 k2: v2}
	KindTuple                   // {e0 e1 e2}, see [Tuple]
	KindAggregate               // struct rendered as a tuple of its fields
	KindDynamic                 // interface slot, re-classified by its dynamic value
)

var kindNames = map[Kind]string{
	KindUnknown:     "unknown",
	KindDirect:      "direct",
	KindIterable:    "iterable",
	KindAssociative: "associative",
	KindTuple:       "tuple",
	KindAggregate:   "aggregate",
	KindDynamic:     "dynamic",
}

var kinds = []Kind{KindDirect, KindIterable, KindAssociative, KindTuple, KindAggregate, KindDynamic, KindUnknown}

// String returns the kind name.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind parses a kind name as returned by [Kind.String].
func ParseKind(s string) (Kind, error) {
	for _, k := range kinds {
		if kindNames[k] == s {
			return k, nil
		}
	}
	return KindUnknown, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Kinds returns every kind in classification priority order, with
// [KindUnknown] last.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

// Tuple is a fixed-arity, positionally indexed value. Types implementing it
// render as {e0 e1 ...} unless they already render natively or are iterable.
type Tuple interface {
	Arity() int
	Elem(i int) any
}

// --- Printer ---

// Printer renders values. The zero value is not usable; create one with
// [New]. A Printer is safe for concurrent use.
type Printer struct {
	maxFields   int
	bytesAsText bool
	plans       sync.Map // reflect.Type -> *plan
}

// Option configures a [Printer].
type Option func(*Printer)

// WithMaxFields sets the largest struct field count the printer decomposes.
// Structs with more fields render as unknown. Values below zero are ignored.
func WithMaxFields(n int) Option {
	return func(p *Printer) {
		if n >= 0 {
			p.maxFields = n
		}
	}
}

// WithBytesAsText controls whether slices and arrays of uint8 kind ([]byte,
// [N]byte and named byte types) render as text (the default) or as sequences
// of numbers.
func WithBytesAsText(on bool) Option {
	return func(p *Printer) { p.bytesAsText = on }
}

// New returns a Printer configured by opts.
func New(opts ...Option) *Printer {
	p := &Printer{maxFields: DefaultMaxFields, bytesAsText: true}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var std = New()

// Default returns the Printer used by the package-level functions.
func Default() *Printer { return std }

// MaxFields returns the printer's struct field ceiling.
func (p *Printer) MaxFields() int { return p.maxFields }

// Fprint renders values to w, separated by single spaces. It returns the
// first error reported by w; nothing is written after it.
func (p *Printer) Fprint(w io.Writer, values ...any) error {
	s := &sink{w: w}
	for i, v := range values {
		if i > 0 {
			s.writeString(" ")
		}
		p.render(s, reflect.ValueOf(v))
	}
	return s.err
}

// Fprintln is like [Printer.Fprint] followed by a newline.
func (p *Printer) Fprintln(w io.Writer, values ...any) error {
	if err := p.Fprint(w, values...); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// Sprint renders values into a string.
func (p *Printer) Sprint(values ...any) string {
	var sb strings.Builder
	_ = p.Fprint(&sb, values...)
	return sb.String()
}

// Sprintln is like [Printer.Sprint] followed by a newline.
func (p *Printer) Sprintln(values ...any) string {
	var sb strings.Builder
	_ = p.Fprintln(&sb, values...)
	return sb.String()
}

// Print renders values to standard output.
func (p *Printer) Print(values ...any) error {
	return p.Fprint(os.Stdout, values...)
}

// Println renders values to standard output followed by a newline.
func (p *Printer) Println(values ...any) error {
	return p.Fprintln(os.Stdout, values...)
}

// KindOf reports the strategy used for v's dynamic type. A nil interface is
// rendered natively as "<nil>" and reports [KindDirect].
func (p *Printer) KindOf(v any) Kind {
	if v == nil {
		return KindDirect
	}
	return p.planFor(reflect.TypeOf(v)).kind
}

// KindOfType reports the strategy used for t.
func (p *Printer) KindOfType(t reflect.Type) Kind {
	return p.planFor(t).kind
}

// --- Package-level entry points ---

// Fprint renders values to w with the default printer.
func Fprint(w io.Writer, values ...any) error { return std.Fprint(w, values...) }

// Fprintln renders values to w with the default printer, followed by a newline.
func Fprintln(w io.Writer, values ...any) error { return std.Fprintln(w, values...) }

// Sprint renders values into a string with the default printer.
func Sprint(values ...any) string { return std.Sprint(values...) }

// Sprintln is like [Sprint] followed by a newline.
func Sprintln(values ...any) string { return std.Sprintln(values...) }

// Print renders values to standard output with the default printer.
func Print(values ...any) error { return std.Print(values...) }

// Println renders values to standard output with the default printer,
// followed by a newline.
func Println(values ...any) error { return std.Println(values...) }

// KindOf reports the strategy the default printer uses for v.
func KindOf(v any) Kind { return std.KindOf(v) }

// Classify reports the strategy the default printer uses for type T.
// Interface types report [KindDynamic].
//
//	if ezprint.Classify[Point]() == ezprint.KindAggregate { ... }
func Classify[T any]() Kind {
	return std.KindOfType(reflect.TypeFor[T]())
}

// Check reports whether every type reachable from T renders with a real
// strategy under the default printer. Call it from a test or init to catch
// types that would print "!(UNKNOWN TYPE)".
func Check[T any]() error {
	return std.Check(reflect.TypeFor[T]())
}

// --- Output sink ---

// sink remembers the first write error and drops everything after it.
type sink struct {
	w   io.Writer
	err error
}

func (s *sink) Write(b []byte) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	n, err := s.w.Write(b)
	if err != nil {
		s.err = err
	}
	return n, err
}

func (s *sink) writeString(str string) {
	_, _ = io.WriteString(s, str)
}
