package document

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

const binaryTag = "!!binary"

func decodeYAML(r io.Reader) ([]any, error) {
	dec := yaml.NewDecoder(r)
	var docs []any
	for {
		var node yaml.Node
		err := dec.Decode(&node)
		if errors.Is(err, io.EOF) {
			return docs, nil
		}
		if err != nil {
			return nil, err
		}
		v, err := fromYAML(&node)
		if err != nil {
			return nil, err
		}
		docs = append(docs, v)
	}
}

// fromYAML walks the node tree instead of decoding into map[string]any,
// which would lose mapping order.
func fromYAML(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return fromYAML(n.Content[0])
	case yaml.AliasNode:
		return fromYAML(n.Alias)
	case yaml.SequenceNode:
		arr := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := fromYAML(c)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		return arr, nil
	case yaml.MappingNode:
		obj := Object{}
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			if isMergeKey(k) {
				if err := mergeYAML(&obj, v); err != nil {
					return nil, err
				}
				continue
			}
			val, err := fromYAML(v)
			if err != nil {
				return nil, err
			}
			obj.Set(yamlKey(k), val)
		}
		return obj, nil
	case yaml.ScalarNode:
		if n.ShortTag() == binaryTag {
			// yaml.v3 hands back the decoded bytes as a string.
			var raw string
			if err := n.Decode(&raw); err != nil {
				return nil, fmt.Errorf("line %d: %w", n.Line, err)
			}
			return []byte(raw), nil
		}
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return v, nil
	default:
		return nil, fmt.Errorf("line %d: unexpected node kind %d", n.Line, n.Kind)
	}
}

// mergeYAML applies a "<<" merge key: the merged mapping (or each mapping of
// a merged sequence) contributes the members not already present.
func mergeYAML(obj *Object, n *yaml.Node) error {
	if n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	var sources []*yaml.Node
	switch n.Kind {
	case yaml.MappingNode:
		sources = []*yaml.Node{n}
	case yaml.SequenceNode:
		sources = n.Content
	default:
		return fmt.Errorf("line %d: merge value is not a mapping", n.Line)
	}
	for _, src := range sources {
		v, err := fromYAML(src)
		if err != nil {
			return err
		}
		m, ok := v.(Object)
		if !ok {
			return fmt.Errorf("line %d: merge value is not a mapping", src.Line)
		}
		for _, member := range m {
			if _, ok := obj.Get(member.Key); !ok {
				obj.Set(member.Key, member.Value)
			}
		}
	}
	return nil
}

func isMergeKey(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.Value == "<<" && (n.Tag == "" || n.Tag == "!!merge")
}

func yamlKey(n *yaml.Node) string {
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n.Value
}
