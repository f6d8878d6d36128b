// Package simdatoi converts runs of ASCII decimal digits to uint64 with a
// family of kernels: scalar baselines, a SWAR bit trick over one word, a
// 16-lane register reduction network, and a variable-length front end that
// finds the leading digit run, left-aligns it within the register and feeds
// it through the same network.
//
// The fast-path kernels never validate and never allocate. Malformed input
// yields a deterministic but unspecified value, and values beyond 64 bits
// wrap. ParseUint and ParseUintPrefix are the slower, validating entry points.
//
// Example:
//
//	v, n := simdatoi.ParseVariable([]byte("42ab567890123456"))
//	// v == 42, n == 2
package simdatoi

// ParseFixed8 converts exactly eight ASCII digits, b[0] most significant.
// len(b) must be at least Fixed8Width; bytes past the eighth are not read.
func ParseFixed8(b []byte) uint64 {
	return parseFixed8Generic(b[:Fixed8Width])
}

// ParseFixed16 converts exactly sixteen ASCII digits through the register
// reduction network. len(b) must be at least RegisterWidth.
func ParseFixed16(b []byte) uint64 {
	return parseFixed16Generic(b[:RegisterWidth])
}

// ParseFixed16Pair converts sixteen ASCII digits as two ParseFixed8 halves
// recombined with a positional multiplier. It always agrees with ParseFixed16
// on digit input.
func ParseFixed16Pair(b []byte) uint64 {
	b = b[:RegisterWidth]
	return ParseFixed8(b)*100000000 + ParseFixed8(b[Fixed8Width:])
}

// ParseVariable parses the leading run of ASCII digits in b and returns its
// value and length. It always loads RegisterWidth bytes, so b must be at least
// that long even when the run is shorter; a shorter b returns (0, 0) without
// being read. A run longer than RegisterWidth is truncated to its first
// RegisterWidth digits. When b does not start with a digit the result is
// (0, 0), and callers advancing a cursor must treat that as no progress.
func ParseVariable(b []byte) (value uint64, consumed int) {
	if len(b) < RegisterWidth {
		return 0, 0
	}
	if useSIMD {
		return parseVariableSIMD(b)
	}
	return parseVariableGeneric(b)
}
