package ezprint

// T returns a [Tuple] holding values in order.
//
//	ezprint.Sprint(ezprint.T(1, "a", 2.5)) // {1 a 2.5}
func T(values ...any) Tuple {
	return tuple{elems: values}
}

type tuple struct {
	elems []any
}

func (t tuple) Arity() int { return len(t.elems) }

func (t tuple) Elem(i int) any { return t.elems[i] }

// Pair is a two-element [Tuple].
type Pair[K, V any] struct {
	Key   K
	Value V
}

// MakePair returns a Pair holding k and v.
func MakePair[K, V any](k K, v V) Pair[K, V] {
	return Pair[K, V]{Key: k, Value: v}
}

func (p Pair[K, V]) Arity() int { return 2 }

func (p Pair[K, V]) Elem(i int) any {
	if i == 0 {
		return p.Key
	}
	return p.Value
}
