package document

import (
	"io"
	"sort"

	"github.com/BurntSushi/toml"
)

func decodeTOML(r io.Reader) ([]any, error) {
	var raw map[string]any
	md, err := toml.NewDecoder(r).Decode(&raw)
	if err != nil {
		return nil, err
	}
	root := newTable()
	for _, key := range md.Keys() {
		root.insert(raw, key)
	}
	return []any{root.object()}, nil
}

// table rebuilds TOML tables in the order their keys appear in the file.
// The decoded map supplies values; the metadata supplies order.
type table struct {
	keys   []string
	tables map[string]*table
	values map[string]any
}

func newTable() *table {
	return &table{tables: map[string]*table{}, values: map[string]any{}}
}

func (t *table) insert(raw map[string]any, key toml.Key) {
	node := raw
	for i, part := range key {
		val, ok := node[part]
		if !ok {
			return
		}
		sub, isTable := val.(map[string]any)
		if !isTable {
			// Arrays of tables report their inner keys too; the first key
			// for the array already captured the whole value.
			if _, seen := t.values[part]; !seen {
				t.keys = append(t.keys, part)
				t.values[part] = ordered(val)
			}
			return
		}
		next, ok := t.tables[part]
		if !ok {
			next = newTable()
			t.tables[part] = next
			t.keys = append(t.keys, part)
		}
		if i == len(key)-1 {
			return
		}
		t, node = next, sub
	}
}

func (t *table) object() Object {
	obj := make(Object, 0, len(t.keys))
	for _, k := range t.keys {
		if sub, ok := t.tables[k]; ok {
			obj = append(obj, Member{Key: k, Value: sub.object()})
			continue
		}
		obj = append(obj, Member{Key: k, Value: t.values[k]})
	}
	return obj
}

// ordered converts values nested inside arrays, where the metadata carries
// no key order. Map keys there are sorted.
func ordered(v any) any {
	switch v := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		obj := make(Object, 0, len(keys))
		for _, k := range keys {
			obj = append(obj, Member{Key: k, Value: ordered(v[k])})
		}
		return obj
	case []map[string]any:
		arr := make([]any, len(v))
		for i, m := range v {
			arr[i] = ordered(m)
		}
		return arr
	case []any:
		arr := make([]any, len(v))
		for i, e := range v {
			arr[i] = ordered(e)
		}
		return arr
	default:
		return v
	}
}
