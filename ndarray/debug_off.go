//go:build !ndarraydebug

package ndarray

const debug = false
