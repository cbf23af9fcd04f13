package ndarray

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/robert-malhotra/go-ndarray/internal/layout"
)

// ToDense copies a rank-2 array into a new row-major *mat.Dense.
// gonum matrices cannot have a zero dimension, so an array with a zero
// extent fails with mat.ErrZeroLength.
func ToDense[O Order](a *Array[float64, O]) (*mat.Dense, error) {
	if a.Rank() != 2 {
		return nil, rankError(a.Rank(), 2)
	}
	r, c := a.shape[0], a.shape[1]
	if r == 0 || c == 0 {
		return nil, fmt.Errorf("converting %dx%d array: %w", r, c, mat.ErrZeroLength)
	}

	data := make([]float64, r*c)
	layout.CopyRegion(data, []int{c, 1}, 0, a.data, a.strides, 0, a.shape)
	return mat.NewDense(r, c, data), nil
}

// FromMatrix copies m into a new rank-2 array laid out by O.
func FromMatrix[O Order](m mat.Matrix, opts ...Option[float64]) *Array[float64, O] {
	r, c := m.Dims()
	a := FromShape[float64, O](Shape{r, c}, opts...)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			a.data[i*a.strides[0]+j*a.strides[1]] = m.At(i, j)
		}
	}
	return a
}

// DenseView returns a view aliasing the storage of m without copying. Writes
// through the view are visible in m. For a sub-matrix obtained with m.Slice,
// the row stride exceeds the column count, so the view is not dense.
func DenseView(m *mat.Dense) *View[float64, RowMajor] {
	raw := m.RawMatrix()
	return newView[float64, RowMajor](raw.Data, []int{raw.Rows, raw.Cols}, []int{raw.Stride, 1})
}
