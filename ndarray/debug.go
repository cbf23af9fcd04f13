package ndarray

import (
	"fmt"

	"github.com/robert-malhotra/go-ndarray/internal/layout"
)

// checkIndex panics unless every index lies within its extent. It only runs
// in builds tagged ndarraydebug; otherwise the Go runtime's check of the flat
// offset against the buffer length is the only net, and it cannot catch an
// out-of-range index that combines into an in-range offset.
func checkIndex(shape, index []int) {
	if !layout.InBounds(shape, index) {
		panic(fmt.Errorf("%w: %v for shape %v", ErrIndexOutOfRange, index, shape))
	}
}
