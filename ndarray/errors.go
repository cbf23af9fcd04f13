package ndarray

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrMalformedLiteral = errors.New("malformed nested literal")
	ErrRankMismatch     = errors.New("rank mismatch")
	ErrIndexOutOfRange  = errors.New("index out of range")
	ErrOutOfRange       = errors.New("region out of range")
	ErrNegativeExtent   = errors.New("negative extent")
	ErrShortBuffer      = errors.New("buffer too short for shape")
	ErrDanglingView     = errors.New("view outlived its owner's storage")
)

func rankError(got, want int) error {
	return fmt.Errorf("%w: got %d, want %d", ErrRankMismatch, got, want)
}

// checkExtents rejects negative extents.
func checkExtents(shape []int) error {
	for i, d := range shape {
		if d < 0 {
			return fmt.Errorf("%w: dimension %d is %d", ErrNegativeExtent, i, d)
		}
	}
	return nil
}
