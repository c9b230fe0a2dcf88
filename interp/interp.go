// Package interp lets ezprint act as a fallback converter for fmt-style and
// text/template interpolation.
//
// Arguments that fmt already renders natively (basic kinds, [fmt.Stringer],
// error, [fmt.Formatter], byte text) are passed through untouched, so verbs
// like %5d or %q keep working. Everything else is replaced by its
// [ezprint.Sprint] text before interpolation:
//
//	interp.Sprintf("point=%v ids=%v", Point{1, 2}, []int{3, 4})
//	// point={1 2} ids={3 4}
//
// The core ezprint package does not depend on this package.
package interp

import (
	"fmt"
	"io"
	"os"

	"github.com/bjaus/ezprint"
)

// Arg returns v unchanged when fmt renders it natively, or its ezprint text
// otherwise.
func Arg(v any) any {
	if ezprint.KindOf(v) == ezprint.KindDirect {
		return v
	}
	return ezprint.Sprint(v)
}

// Args applies [Arg] to every element of args, returning a new slice.
func Args(args ...any) []any {
	out := make([]any, len(args))
	for i, a := range args {
		out[i] = Arg(a)
	}
	return out
}

// Value wraps v so that fmt renders it with ezprint under every verb. The
// verb's flags, width and precision apply to the ezprint text, which makes
// Value useful for a field that should always print that way:
//
//	log.Printf("%-20v|", interp.Value(cfg))
func Value(v any) fmt.Formatter {
	return value{v: v}
}

type value struct {
	v any
}

func (x value) Format(f fmt.State, verb rune) {
	switch verb {
	case 's', 'q', 'v', 'x', 'X':
	default:
		verb = 's'
	}
	_, _ = fmt.Fprintf(f, fmt.FormatString(f, verb), ezprint.Sprint(x.v))
}

// Sprintf formats according to format after converting args with [Arg].
func Sprintf(format string, args ...any) string {
	return fmt.Sprintf(format, Args(args...)...)
}

// Fprintf writes to w according to format after converting args with [Arg].
func Fprintf(w io.Writer, format string, args ...any) (int, error) {
	return fmt.Fprintf(w, format, Args(args...)...)
}

// Printf writes to standard output according to format after converting args
// with [Arg].
func Printf(format string, args ...any) (int, error) {
	return Fprintf(os.Stdout, format, args...)
}
