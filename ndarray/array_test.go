package ndarray

import (
	"errors"
	"slices"
	"testing"
)

// expectPanic runs fn and fails unless it panics with an error wrapping target.
func expectPanic(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic wrapping %v", target)
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, target) {
			t.Fatalf("panic: got %v, want %v", r, target)
		}
	}()
	fn()
}

// sequential fills a rank-3 array in index order, last index fastest.
func sequential[O Order](a *Array[float64, O]) {
	x := 0.0
	for i := 0; i < a.Size(0); i++ {
		for j := 0; j < a.Size(1); j++ {
			for k := 0; k < a.Size(2); k++ {
				a.Set(x, i, j, k)
				x++
			}
		}
	}
}

func TestEmpty(t *testing.T) {
	a := Empty[float64, RowMajor](3)

	if a.Data() != nil {
		t.Errorf("Data: got %v, want nil", a.Data())
	}
	if !a.IsEmpty() {
		t.Error("expected empty array")
	}
	if a.NumElements() != 0 {
		t.Errorf("NumElements: got %d, want 0", a.NumElements())
	}
	if a.Rank() != 3 {
		t.Errorf("Rank: got %d, want 3", a.Rank())
	}
	for i := 0; i < 3; i++ {
		if a.Size(i) != 0 {
			t.Errorf("Size(%d): got %d, want 0", i, a.Size(i))
		}
	}
	for _, s := range a.Strides() {
		if s != 0 {
			t.Errorf("strides: got %v, want zeros", a.Strides())
		}
	}
}

func TestNew(t *testing.T) {
	a := New[float64, RowMajor](1, 2, 3)
	sequential(a)

	if a.IsEmpty() {
		t.Error("unexpected empty array")
	}
	if a.NumElements() != 6 {
		t.Errorf("NumElements: got %d, want 6", a.NumElements())
	}
	if !slices.Equal(a.Shape(), Shape{1, 2, 3}) {
		t.Errorf("Shape: got %v, want [1 2 3]", a.Shape())
	}
	for i, v := range a.Data() {
		if v != float64(i) {
			t.Errorf("data[%d]: got %v, want %d", i, v, i)
		}
	}
	if got := a.At(0, 1, 2); got != 5 {
		t.Errorf("At(0,1,2): got %v, want 5", got)
	}
}

func TestFull(t *testing.T) {
	a := Full[float64, ColumnMajor](10, 1, 2, 3)

	if a.NumElements() != 6 {
		t.Fatalf("NumElements: got %d, want 6", a.NumElements())
	}
	for i, v := range a.Data() {
		if v != 10 {
			t.Errorf("data[%d]: got %v, want 10", i, v)
		}
	}
}

func TestFromShape(t *testing.T) {
	tracker := NewTrackingAllocator[float64]()
	a := FromShape[float64, RowMajor](Shape{1, 2, 3}, WithFill(2.5), WithAllocator[float64](tracker))

	if a.NumElements() != 6 {
		t.Fatalf("NumElements: got %d, want 6", a.NumElements())
	}
	if a.At(0, 1, 1) != 2.5 {
		t.Errorf("At(0,1,1): got %v, want 2.5", a.At(0, 1, 1))
	}
	stats := tracker.Stats()
	if stats.TotalAllocations != 1 || stats.TotalElemsAlloc != 6 {
		t.Errorf("allocator stats: got %+v", stats)
	}
}

func TestNegativeExtentPanics(t *testing.T) {
	expectPanic(t, ErrNegativeExtent, func() {
		New[int, RowMajor](2, -1)
	})
}

func TestScalarArray(t *testing.T) {
	a := New[int, RowMajor]()
	if a.Rank() != 0 || a.NumElements() != 1 {
		t.Fatalf("rank %d, %d elements; want rank 0 with 1 element", a.Rank(), a.NumElements())
	}
	a.Set(7)
	if a.At() != 7 {
		t.Errorf("At(): got %d, want 7", a.At())
	}
}

// Filling the buffer in storage order shows which index varies fastest.
func TestStorageOrder(t *testing.T) {
	t.Run("row-major", func(t *testing.T) {
		a := New[int, RowMajor](2, 3, 4)
		for i := range a.Data() {
			a.Data()[i] = i
		}
		if got := a.At(0, 0, 1); got != 1 {
			t.Errorf("At(0,0,1): got %d, want 1", got)
		}
		if got := a.At(0, 1, 0); got != 4 {
			t.Errorf("At(0,1,0): got %d, want 4", got)
		}
		if got := a.At(1, 0, 0); got != 12 {
			t.Errorf("At(1,0,0): got %d, want 12", got)
		}
	})

	t.Run("column-major", func(t *testing.T) {
		a := New[int, ColumnMajor](2, 3, 4)
		for i := range a.Data() {
			a.Data()[i] = i
		}
		if got := a.At(1, 0, 0); got != 1 {
			t.Errorf("At(1,0,0): got %d, want 1", got)
		}
		if got := a.At(0, 1, 0); got != 2 {
			t.Errorf("At(0,1,0): got %d, want 2", got)
		}
		if got := a.At(0, 0, 1); got != 6 {
			t.Errorf("At(0,0,1): got %d, want 6", got)
		}
	})

	t.Run("same shape differs by layout", func(t *testing.T) {
		r := New[int, RowMajor](1, 2, 3)
		c := New[int, ColumnMajor](1, 2, 3)
		for i := 0; i < 6; i++ {
			r.Data()[i] = i
			c.Data()[i] = i
		}
		if r.At(0, 1, 2) != 5 {
			t.Errorf("row-major At(0,1,2): got %d, want 5", r.At(0, 1, 2))
		}
		if r.At(0, 1, 0) == c.At(0, 1, 0) {
			t.Errorf("At(0,1,0) agrees across layouts: %d", r.At(0, 1, 0))
		}
	})
}

func TestAtRankMismatch(t *testing.T) {
	a := New[float64, RowMajor](2, 3, 4)

	expectPanic(t, ErrRankMismatch, func() { a.At(0, 0) })
	expectPanic(t, ErrRankMismatch, func() { a.Set(1, 0, 0, 0, 0) })
	expectPanic(t, ErrRankMismatch, func() { a.Size(3) })
	expectPanic(t, ErrRankMismatch, func() { a.Row(0) })
}

func TestIndexConventions(t *testing.T) {
	a := New[int, ColumnMajor](2, 3)
	idx := []int{1, 2}

	a.Set(42, idx...)
	if a.At(1, 2) != 42 {
		t.Errorf("positional At: got %d, want 42", a.At(1, 2))
	}

	*a.Ptr(0, 1) = 7
	if a.At([]int{0, 1}...) != 7 {
		t.Errorf("slice At: got %d, want 7", a.At(0, 1))
	}
}

func TestRow(t *testing.T) {
	t.Run("row-major", func(t *testing.T) {
		a := New[int, RowMajor](2, 3)
		for i := range a.Data() {
			a.Data()[i] = i
		}
		row := a.Row(1)
		if !slices.Equal(row, []int{3, 4, 5}) {
			t.Errorf("Row(1): got %v, want [3 4 5]", row)
		}
		row[0] = 30
		if a.At(1, 0) != 30 {
			t.Errorf("write through Row: got %d, want 30", a.At(1, 0))
		}
		if cap(row) != 3 {
			t.Errorf("cap: got %d, want 3", cap(row))
		}
	})

	t.Run("column-major", func(t *testing.T) {
		a := New[int, ColumnMajor](2, 3)
		for i := range a.Data() {
			a.Data()[i] = i
		}
		// The run starts at (1,0) and covers three consecutive slots.
		if row := a.Row(1); !slices.Equal(row, []int{1, 2, 3}) {
			t.Errorf("Row(1): got %v, want [1 2 3]", row)
		}
	})

	t.Run("rank 1", func(t *testing.T) {
		a := Full[int, RowMajor](4, 5)
		if row := a.Row(); len(row) != 5 {
			t.Errorf("Row(): got %d elements, want 5", len(row))
		}
	})
}

func TestAll(t *testing.T) {
	a := New[int, ColumnMajor](2, 3)
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			a.Set(10*i+j, i, j)
		}
	}

	n := 0
	for idx, v := range a.All() {
		if v != 10*idx[0]+idx[1] {
			t.Errorf("All at %v: got %d", idx, v)
		}
		n++
	}
	if n != 6 {
		t.Errorf("visited %d elements, want 6", n)
	}

	var first []int
	for idx := range a.Indices() {
		first = slices.Clone(idx)
		break
	}
	if !slices.Equal(first, []int{0, 0}) {
		t.Errorf("first index: got %v, want [0 0]", first)
	}
}

func TestClone(t *testing.T) {
	a, err := FromNested[float64, RowMajor](3, [][][]float64{{{0, 1, 2}, {3, 4, 5}}})
	if err != nil {
		t.Fatal(err)
	}

	b := a.Clone()
	if !b.Equal(a) {
		t.Fatalf("clone differs: %v vs %v", b, a)
	}

	a.Set(100, 0, 0, 0)
	if b.At(0, 0, 0) != 0 {
		t.Error("clone was modified when original changed")
	}
}

func TestMove(t *testing.T) {
	a, err := FromNested[float64, RowMajor](3, [][][]float64{{{0, 1, 2}, {3, 4, 5}}})
	if err != nil {
		t.Fatal(err)
	}
	gen := a.Generation()

	b := a.Move()

	if b.NumElements() != 6 || !slices.Equal(b.Shape(), Shape{1, 2, 3}) {
		t.Errorf("moved-to array: shape %v, %d elements", b.Shape(), b.NumElements())
	}
	for i, v := range b.Data() {
		if v != float64(i) {
			t.Errorf("data[%d]: got %v, want %d", i, v, i)
		}
	}

	if !a.IsEmpty() || a.NumElements() != 0 || a.Data() != nil {
		t.Error("moved-from array is not empty")
	}
	if a.Rank() != 3 {
		t.Errorf("moved-from rank: got %d, want 3", a.Rank())
	}
	for i := 0; i < 3; i++ {
		if a.Size(i) != 0 {
			t.Errorf("moved-from Size(%d): got %d, want 0", i, a.Size(i))
		}
	}
	if a.Generation() == gen {
		t.Error("Move did not change the generation")
	}
}

func TestAssign(t *testing.T) {
	a, err := FromNested[float64, RowMajor](3, [][][]float64{{{0, 1, 2}, {3, 4, 5}}})
	if err != nil {
		t.Fatal(err)
	}

	b := Empty[float64, RowMajor](3)
	b.Assign(a)
	if !b.Equal(a) {
		t.Errorf("assigned array differs: %v vs %v", b, a)
	}

	c := Empty[float64, RowMajor](3)
	c.Assign(b.Move())
	if !c.Equal(a) {
		t.Errorf("assigned from moved array differs: %v", c)
	}
	if !b.IsEmpty() {
		t.Error("moved-from array is not empty")
	}

	c.Assign(c)
	if !c.Equal(a) {
		t.Error("self-assignment changed the array")
	}
}

func TestEqual(t *testing.T) {
	a := New[int, RowMajor](2, 3)
	b := New[int, RowMajor](3, 2)
	for i := range a.Data() {
		a.Data()[i] = i
		b.Data()[i] = i
	}

	if !a.Equal(a) {
		t.Error("array not equal to itself")
	}
	if a.Equal(b) {
		t.Error("arrays with different extents compared equal")
	}
	if a.Equal(nil) {
		t.Error("array equal to nil")
	}

	c := a.Clone()
	if !a.Equal(c) {
		t.Error("clone not equal")
	}
	c.Set(99, 1, 2)
	if a.Equal(c) {
		t.Error("arrays with different contents compared equal")
	}
}

func TestString(t *testing.T) {
	a, err := FromNested[int, ColumnMajor](2, [][]int{{0, 1}, {2, 3}})
	if err != nil {
		t.Fatal(err)
	}
	if got := a.String(); got != "{{0,1},{2,3}}" {
		t.Errorf("String: got %q", got)
	}
	if got := Empty[int, RowMajor](2).String(); got != "{}" {
		t.Errorf("empty String: got %q", got)
	}
}
