package ezprint

import (
	"bytes"
	"errors"
	"iter"
	"math"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errInternalWrite = errors.New("write failed")

type errWriterInternal struct{ calls int }

func (e *errWriterInternal) Write([]byte) (int, error) {
	e.calls++
	return 0, errInternalWrite
}

func TestSinkKeepsFirstError(t *testing.T) {
	t.Parallel()
	w := &errWriterInternal{}
	s := &sink{w: w}
	s.writeString("a")
	s.writeString("b")
	assert.ErrorIs(t, s.err, errInternalWrite)
	assert.Equal(t, 1, w.calls)
}

func TestSinkWrites(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	s := &sink{w: &buf}
	s.writeString("a")
	_, err := s.Write([]byte("b"))
	require.NoError(t, err)
	assert.Equal(t, "ab", buf.String())
}

func TestPlanCachedPerType(t *testing.T) {
	t.Parallel()
	p := New()
	typ := reflect.TypeFor[struct{ A, B int }]()
	first := p.planFor(typ)
	assert.Same(t, first, p.planFor(typ))
	assert.Equal(t, []int{0, 1}, first.fields)
}

func TestPlansArePerPrinter(t *testing.T) {
	t.Parallel()
	typ := reflect.TypeFor[struct{ A, B int }]()
	assert.Equal(t, KindAggregate, New().planFor(typ).kind)
	assert.Equal(t, KindUnknown, New(WithMaxFields(1)).planFor(typ).kind)
}

func TestSeqPlan(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		typ    reflect.Type
		want   Kind
		wantOK bool
	}{
		"seq":         {typ: reflect.TypeFor[iter.Seq[int]](), want: KindIterable, wantOK: true},
		"seq2":        {typ: reflect.TypeFor[iter.Seq2[int, string]](), want: KindAssociative, wantOK: true},
		"plain func":  {typ: reflect.TypeFor[func()](), wantOK: false},
		"no bool":     {typ: reflect.TypeFor[func(func(int))](), wantOK: false},
		"not a func":  {typ: reflect.TypeFor[[]int](), wantOK: false},
		"extra param": {typ: reflect.TypeFor[func(func(int) bool, int)](), wantOK: false},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			pl, ok := seqPlan(tt.typ, -1)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, pl.kind)
			}
		})
	}
}

func TestCompareKeys(t *testing.T) {
	t.Parallel()
	p := New()
	tests := map[string]struct {
		a, b any
		want int
	}{
		"ints":         {a: 1, b: 2, want: -1},
		"uints":        {a: uint(5), b: uint(5), want: 0},
		"floats":       {a: 2.5, b: -1.0, want: 1},
		"nan first":    {a: math.NaN(), b: 0.0, want: -1},
		"strings":      {a: "b", b: "a", want: 1},
		"bools":        {a: false, b: true, want: -1},
		"by rendered":  {a: [2]int{1, 2}, b: [2]int{1, 3}, want: -1},
		"complex real": {a: complex(1, 9), b: complex(2, 0), want: -1},
		"complex imag": {a: complex(1, 2), b: complex(1, -2), want: 1},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got := p.compareKeys(reflect.ValueOf(tt.a), reflect.ValueOf(tt.b))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecomposeAliasesFields(t *testing.T) {
	t.Parallel()
	type pair struct{ A, B int }
	v := reflect.ValueOf(&pair{A: 1, B: 2}).Elem()
	fl := fieldsOf(v, []int{0, 1})
	fl.at(1).SetInt(9)
	assert.Equal(t, int64(9), v.Field(1).Int())
}

func TestCompareKeysBreaksTextTies(t *testing.T) {
	t.Parallel()
	p := New()
	type holder struct{ P *int }
	x, y := new(int), new(int)
	tests := map[string]struct {
		a, b any
	}{
		"pointers":        {a: x, b: y},
		"struct pointers": {a: holder{x}, b: holder{y}},
		"array pointers":  {a: [1]*int{x}, b: [1]*int{y}},
		"channels":        {a: make(chan int), b: make(chan int)},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			a, b := reflect.ValueOf(tt.a), reflect.ValueOf(tt.b)
			require.Equal(t, p.Sprint(tt.a), p.Sprint(tt.b))
			ab := p.compareKeys(a, b)
			assert.NotZero(t, ab)
			assert.Equal(t, -ab, p.compareKeys(b, a))
			assert.Zero(t, p.compareKeys(a, a))
		})
	}
}
