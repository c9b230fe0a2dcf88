// Package document decodes structured input files into ordered Go values
// that ezprint renders in document order.
//
// Objects become [Object], a list of members with an All method, so the
// printer treats them as associative containers and keeps the key order of
// the source. Arrays become []any, scalars keep their decoded Go type.
package document

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"path/filepath"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrDecode            = errors.New("decode failed")
)

// Format names an input encoding.
type Format string

const (
	Auto  Format = "auto"
	JSON  Format = "json"
	JSONL Format = "jsonl"
	YAML  Format = "yaml"
	TOML  Format = "toml"
	CSV   Format = "csv"
	TSV   Format = "tsv"
)

var formats = []Format{Auto, JSON, JSONL, YAML, TOML, CSV, TSV}

var extensions = map[string]Format{
	".json":   JSON,
	".jsonl":  JSONL,
	".ndjson": JSONL,
	".yaml":   YAML,
	".yml":    YAML,
	".toml":   TOML,
	".csv":    CSV,
	".tsv":    TSV,
}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all format names, including [Auto].
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// FormatFor picks the format for path from its extension.
func FormatFor(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := extensions[ext]; ok {
		return f, nil
	}
	return "", fmt.Errorf("%w: cannot infer from %q", ErrUnsupportedFormat, path)
}

// Decode reads every document in r. JSON, JSONL and YAML streams may hold
// several documents; TOML, CSV and TSV always yield exactly one.
func Decode(r io.Reader, f Format) ([]any, error) {
	var (
		docs []any
		err  error
	)
	switch f {
	case JSON:
		docs, err = decodeJSON(r)
	case JSONL:
		docs, err = decodeJSONL(r)
	case YAML:
		docs, err = decodeYAML(r)
	case TOML:
		docs, err = decodeTOML(r)
	case CSV:
		docs, err = decodeCSV(r, ',')
	case TSV:
		docs, err = decodeCSV(r, '\t')
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, f, err)
	}
	return docs, nil
}

// Member is one key of an [Object].
type Member struct {
	Key   string
	Value any
}

// Object is an ordered mapping. Keys are unique; Set keeps the position of
// an existing key.
type Object []Member

// All yields the members in order.
func (o Object) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, m := range o {
			if !yield(m.Key, m.Value) {
				return
			}
		}
	}
}

// Get returns the value stored under key.
func (o Object) Get(key string) (any, bool) {
	for _, m := range o {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// Set stores value under key, appending the key when it is new.
func (o *Object) Set(key string, value any) {
	for i := range *o {
		if (*o)[i].Key == key {
			(*o)[i].Value = value
			return
		}
	}
	*o = append(*o, Member{Key: key, Value: value})
}

// Keys returns the keys in order.
func (o Object) Keys() []string {
	keys := make([]string, len(o))
	for i, m := range o {
		keys[i] = m.Key
	}
	return keys
}
