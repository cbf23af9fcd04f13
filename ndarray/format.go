package ndarray

import (
	"fmt"
	"strings"
)

// String renders the array in nested-brace literal form, e.g. {{0,1},{2,3}},
// walking the dimensions in index order regardless of layout.
func (a *Array[T, O]) String() string {
	var b strings.Builder
	formatNested(&b, a.data, a.shape, a.strides, 0, 0)
	return b.String()
}

// String renders the view like [Array.String].
func (v *View[T, O]) String() string {
	v.check()
	var b strings.Builder
	formatNested(&b, v.data, v.shape, v.strides, 0, 0)
	return b.String()
}

func formatNested[T any](b *strings.Builder, data []T, shape, strides []int, off, dim int) {
	if dim == len(shape) {
		if off < len(data) {
			fmt.Fprint(b, data[off])
		}
		return
	}
	b.WriteByte('{')
	for i := 0; i < shape[dim]; i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		formatNested(b, data, shape, strides, off+i*strides[dim], dim+1)
	}
	b.WriteByte('}')
}
