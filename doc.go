// Package ezprint renders arbitrary Go values as compact, human-readable
// text without any opt-in from the value's type.
//
// The central entry points are [Fprint] and [Sprint], which accept any number
// of values and join their renderings with single spaces:
//
//	ezprint.Sprint(1, "two", 3)                 // 1 two 3
//	ezprint.Sprint([]int{1, 2, 3})              // {1 2 3}
//	ezprint.Sprint(map[string]int{"a": 1})      // {a: 1}
//	ezprint.Sprint(struct{ X int; Y string }{1, "hi"}) // {1 hi}
//
// # Classification
//
// Each type is classified once into a single [Kind], in this priority order:
//
//   - [KindDirect]: the type renders itself. It implements error,
//     [fmt.Stringer] or [fmt.Formatter], or has a basic kind. Slices and
//     arrays with a uint8-kind element, such as []byte, render as text (see
//     [WithBytesAsText]).
//   - [KindIterable]: slices, arrays, iter.Seq functions, and types with an
//     All() method returning an iter.Seq. Rendered as {e1 e2 e3}; empty is {}.
//   - [KindAssociative]: maps, iter.Seq2 functions, and types with an All()
//     method returning an iter.Seq2. Rendered as {k1: v1 k2: v2}. Map keys
//     are sorted so output is deterministic.
//   - [KindTuple]: types implementing [Tuple]. Rendered as {e0 e1}.
//   - [KindAggregate]: structs whose fields are all exported. Rendered
//     exactly like a tuple of their fields, in declaration order, without
//     names. Structs with more than [DefaultMaxFields] fields (see
//     [WithMaxFields]) are not decomposed.
//   - [KindUnknown]: everything else (pointers, channels, plain functions,
//     structs with unexported fields). Rendered as "!(UNKNOWN TYPE)".
//
// Interface-typed values are classified by their dynamic value; a nil
// interface renders as "<nil>".
//
// Use [Classify] or [Check] to inspect a type ahead of time:
//
//	func TestConfigPrintable(t *testing.T) {
//		require.NoError(t, ezprint.Check[Config]())
//	}
//
// # Output
//
// Output is not escaped or quoted and is not meant to be parsed back.
// Formatting never fails on a value; the only errors returned are those of
// the underlying [io.Writer].
//
// # Errors
//
// [Check] reports problems with sentinel errors:
//
//   - [ErrUnsupportedType]: the type has no rendering strategy
//   - [ErrUnexportedField]: a struct has fields that cannot be read
//   - [ErrFieldLimit]: a struct exceeds the field ceiling
//
// [ParseKind] returns [ErrUnknownKind] for names [Kind.String] never produces.
package ezprint
