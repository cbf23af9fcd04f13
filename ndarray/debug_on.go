//go:build ndarraydebug

package ndarray

const debug = true
