package layout

// CopyRegion copies the rectangular region count from src to dst. Each side
// addresses element index i at off + Offset(strides, i), so the two buffers may
// use different shapes and traversal orders. dst and src must not overlap.
//
// The copy recurses through the dimensions; the innermost dimension becomes a
// single copy call when both sides are contiguous along it.
func CopyRegion[T any](dst []T, dstStrides []int, dstOff int, src []T, srcStrides []int, srcOff int, count []int) {
	if NumElements(count) == 0 {
		return
	}
	if len(count) == 0 {
		dst[dstOff] = src[srcOff]
		return
	}
	copyRegionRecursive(dst, src, dstStrides, srcStrides, dstOff, srcOff, count, 0)
}

func copyRegionRecursive[T any](dst, src []T, dstStrides, srcStrides []int, dstOff, srcOff int, count []int, dim int) {
	n := count[dim]
	if dim == len(count)-1 {
		ds, ss := dstStrides[dim], srcStrides[dim]
		if ds == 1 && ss == 1 {
			copy(dst[dstOff:dstOff+n], src[srcOff:srcOff+n])
			return
		}
		for i := 0; i < n; i++ {
			dst[dstOff+i*ds] = src[srcOff+i*ss]
		}
		return
	}

	for i := 0; i < n; i++ {
		copyRegionRecursive(dst, src, dstStrides, srcStrides,
			dstOff+i*dstStrides[dim], srcOff+i*srcStrides[dim],
			count, dim+1)
	}
}
