package interp

import (
	"errors"
	"fmt"
	"io"
	"text/template"

	"github.com/bjaus/ezprint"
)

// ErrInvalidTemplate is returned by [Execute] when the template text does
// not parse.
var ErrInvalidTemplate = errors.New("invalid template")

// FuncMap returns template functions backed by ezprint:
//
//   - ez renders its arguments like [ezprint.Sprint]
//   - ezln is like ez followed by a newline
//
// Use it with [text/template.Template.Funcs]:
//
//	{{ ez .Items }}
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"ez":   ezprint.Sprint,
		"ezln": ezprint.Sprintln,
	}
}

// Execute parses tmpl with [FuncMap] installed and executes it against data,
// writing the result to w.
func Execute(w io.Writer, tmpl string, data any) error {
	t, err := template.New("").Funcs(FuncMap()).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTemplate, err)
	}
	return t.Execute(w, data)
}
