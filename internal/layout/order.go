package layout

// Order is a traversal order for N-dimensional data stored in one flat buffer.
//
// Implementations are zero-size types so they can be used as type parameters
// and called through their zero value.
type Order interface {
	// Strides fills strides (len(strides) == len(shape)) with the element
	// step of every dimension and returns the number of elements shape
	// addresses. A zero extent yields 0.
	Strides(shape, strides []int) int

	// Advance moves index to the next multi-index within shape in storage
	// order. It returns false, leaving index zeroed, once index wraps.
	Advance(shape, index []int) bool

	// Retreat moves index to the previous multi-index within shape in
	// storage order. It returns false once index wraps below zero.
	Retreat(shape, index []int) bool

	String() string
}

// RowMajor stores the last dimension contiguously.
type RowMajor struct{}

func (RowMajor) Strides(shape, strides []int) int {
	size := 1
	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = size
		size *= shape[i]
	}
	return size
}

func (RowMajor) Advance(shape, index []int) bool {
	for d := len(shape) - 1; d >= 0; d-- {
		index[d]++
		if index[d] < shape[d] {
			return true
		}
		index[d] = 0
	}
	return false
}

func (RowMajor) Retreat(shape, index []int) bool {
	for d := len(shape) - 1; d >= 0; d-- {
		if index[d] > 0 {
			index[d]--
			return true
		}
		index[d] = shape[d] - 1
	}
	return false
}

func (RowMajor) String() string { return "row-major" }

// ColumnMajor stores the first dimension contiguously.
type ColumnMajor struct{}

func (ColumnMajor) Strides(shape, strides []int) int {
	size := 1
	for i := 0; i < len(shape); i++ {
		strides[i] = size
		size *= shape[i]
	}
	return size
}

func (ColumnMajor) Advance(shape, index []int) bool {
	for d := 0; d < len(shape); d++ {
		index[d]++
		if index[d] < shape[d] {
			return true
		}
		index[d] = 0
	}
	return false
}

func (ColumnMajor) Retreat(shape, index []int) bool {
	for d := 0; d < len(shape); d++ {
		if index[d] > 0 {
			index[d]--
			return true
		}
		index[d] = shape[d] - 1
	}
	return false
}

func (ColumnMajor) String() string { return "column-major" }

// Compute returns freshly allocated strides for shape under O together with
// the total element count.
func Compute[O Order](shape []int) ([]int, int) {
	var o O
	strides := make([]int, len(shape))
	return strides, o.Strides(shape, strides)
}
