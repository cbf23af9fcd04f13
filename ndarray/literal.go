package ndarray

import (
	"fmt"
	"reflect"

	"github.com/robert-malhotra/go-ndarray/internal/layout"
)

// Literal is a brace-nested initializer: either a Scalar or a Seq of further
// literals. It only exists to construct arrays.
type Literal[T any] interface {
	literal()
}

// Scalar is a leaf value.
type Scalar[T any] struct {
	Value T
}

// Seq is an ordered sequence of nested literals.
type Seq[T any] []Literal[T]

func (Scalar[T]) literal() {}
func (Seq[T]) literal()    {}

// S wraps a scalar leaf.
func S[T any](v T) Scalar[T] {
	return Scalar[T]{Value: v}
}

// L builds a sequence from arbitrary literals. Prefer Values and Rows when
// every element has the same kind; they let the compiler infer T.
func L[T any](items ...Literal[T]) Seq[T] {
	return Seq[T](items)
}

// Values builds a sequence of scalar leaves.
func Values[T any](vs ...T) Seq[T] {
	s := make(Seq[T], len(vs))
	for i, v := range vs {
		s[i] = Scalar[T]{Value: v}
	}
	return s
}

// Rows builds a sequence of sequences.
func Rows[T any](rows ...Seq[T]) Seq[T] {
	s := make(Seq[T], len(rows))
	for i, r := range rows {
		s[i] = r
	}
	return s
}

// FromLiteral builds a rank-N array from a nested literal.
//
// The shape is inferred from the nesting: dimension d takes the length of the
// sequences found at depth d. Every sequence at one depth must have the same
// length and every element at one depth must be of the same kind (all scalars
// or all sequences); otherwise FromLiteral fails with ErrMalformedLiteral
// before allocating. Dimensions the literal is too shallow to describe get
// extent 1. Nesting deeper than rank is neither sized nor checked, and its
// data is dropped.
func FromLiteral[T comparable, O Order](rank int, lit Literal[T], opts ...Option[T]) (*Array[T, O], error) {
	if rank < 0 {
		return nil, rankError(rank, 0)
	}
	seq, ok := lit.(Seq[T])
	if !ok {
		return nil, fmt.Errorf("%w: top level must be a sequence, got %T", ErrMalformedLiteral, lit)
	}

	sh := shaper[T]{rank: rank}
	if err := sh.visit(seq, 0); err != nil {
		return nil, err
	}

	shape := make([]int, rank)
	for d := range shape {
		shape[d] = 1
		if d < len(sh.extents) {
			shape[d] = sh.extents[d]
		}
	}

	a := newArray[T, O](shape, applyOptions(opts))
	a.flatten(seq, 0, make([]int, rank))
	return a, nil
}

// shaper records the extent and element kind of every nesting depth below rank.
type shaper[T any] struct {
	rank    int
	extents []int
	// nested[d] is set once the kind of the elements at depth d is known:
	// 1 for sequences, 0 for scalars, -1 while unknown.
	nested []int
	path   []int
}

func (s *shaper[T]) visit(seq Seq[T], depth int) error {
	if depth >= s.rank {
		return nil
	}
	if depth == len(s.extents) {
		s.extents = append(s.extents, len(seq))
		s.nested = append(s.nested, -1)
	} else if s.extents[depth] != len(seq) {
		return s.fail("has %d elements, siblings have %d", len(seq), s.extents[depth])
	}

	for i, item := range seq {
		s.path = append(s.path, i)

		sub, isSeq := item.(Seq[T])
		kind := 0
		if isSeq {
			kind = 1
		} else if _, ok := item.(Scalar[T]); !ok {
			return s.fail("unsupported element %T", item)
		}

		switch s.nested[depth] {
		case -1:
			s.nested[depth] = kind
		case kind:
		default:
			if isSeq {
				return s.fail("is a sequence where siblings are scalars")
			}
			return s.fail("is a scalar where siblings are sequences")
		}

		if isSeq {
			if err := s.visit(sub, depth+1); err != nil {
				return err
			}
		}
		s.path = s.path[:len(s.path)-1]
	}
	return nil
}

func (s *shaper[T]) fail(format string, args ...any) error {
	return fmt.Errorf("%w: element %v %s", ErrMalformedLiteral, s.path, fmt.Sprintf(format, args...))
}

// flatten writes the scalars of seq at their multi-indices. index carries the
// position of seq's parents; depth is the dimension seq's elements index.
func (a *Array[T, O]) flatten(seq Seq[T], depth int, index []int) {
	if depth >= len(index) {
		return
	}
	for i, item := range seq {
		index[depth] = i
		switch v := item.(type) {
		case Seq[T]:
			a.flatten(v, depth+1, index)
		case Scalar[T]:
			if off := layout.Offset(a.strides, index); off < len(a.data) {
				a.data[off] = v.Value
			}
		}
	}
	index[depth] = 0
}

// FromNested builds a rank-N array from native nested Go slices or arrays,
// for example [][]float64{{0, 1}, {2, 3}} or []any{[]any{0, 1}, []any{2, 3}}.
// Leaves must be of type T or a numeric type convertible to T.
// Raggedness is reported as in FromLiteral.
func FromNested[T comparable, O Order](rank int, v any, opts ...Option[T]) (*Array[T, O], error) {
	lit, err := Nested[T](v)
	if err != nil {
		return nil, err
	}
	return FromLiteral[T, O](rank, lit, opts...)
}

// Nested converts native nested slices into a Literal.
func Nested[T any](v any) (Literal[T], error) {
	switch x := v.(type) {
	case Literal[T]:
		return x, nil
	case T:
		return Scalar[T]{Value: x}, nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		seq := make(Seq[T], rv.Len())
		for i := range seq {
			item, err := Nested[T](rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			seq[i] = item
		}
		return seq, nil
	}

	target := reflect.TypeFor[T]()
	if rv.IsValid() && isNumeric(rv.Kind()) && isNumeric(target.Kind()) {
		return Scalar[T]{Value: rv.Convert(target).Interface().(T)}, nil
	}
	return nil, fmt.Errorf("%w: cannot use %T as %v", ErrMalformedLiteral, v, target)
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
