package simdatoi

import (
	"strconv"
	"unsafe"
)

// ParseSimple accumulates b one digit at a time, b[0] most significant.
// It does not validate: empty input yields 0 and non-digit bytes produce an
// unspecified value. It is the reference the other kernels are checked against.
func ParseSimple(b []byte) uint64 {
	var n uint64
	for _, c := range b {
		n = n*10 + uint64(c-'0')
	}
	return n
}

// ParseStrconv converts b with strconv.ParseUint. Input the library rejects
// (non-digits, empty, overflow) yields 0.
func ParseStrconv(b []byte) uint64 {
	if len(b) == 0 {
		return 0
	}
	n, err := strconv.ParseUint(unsafe.String(&b[0], len(b)), 10, 64)
	if err != nil {
		return 0
	}
	return n
}
