package simdatoi

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
)

var (
	ErrSyntax = errors.New("invalid syntax")
	ErrRange  = errors.New("value out of range") // the digit run does not fit in 64 bits
)

func syntaxError(b []byte) error {
	return fmt.Errorf("simdatoi: parsing %q: %w", b, ErrSyntax)
}

func rangeError(b []byte) error {
	return fmt.Errorf("simdatoi: parsing %q: %w", b, ErrRange)
}

// ParseUintPrefix parses the leading digit run of b, of any length, and
// reports how many bytes it spans. Unlike ParseVariable it accepts input
// shorter than RegisterWidth, continues past RegisterWidth digits and detects
// overflow. It returns ErrSyntax when b does not start with a digit, and
// ErrRange with math.MaxUint64 and the full run length when the value does
// not fit in 64 bits.
func ParseUintPrefix(b []byte) (uint64, int, error) {
	var v uint64
	var n int
	if len(b) >= RegisterWidth {
		v, n = ParseVariable(b)
	} else {
		// Zero bytes are not digits, so the run cannot extend into the padding.
		var padded register
		copy(padded[:], b)
		v, n = ParseVariable(padded[:])
	}
	if n == 0 {
		return 0, 0, syntaxError(b)
	}

	for ; n < len(b); n++ {
		d := b[n] - '0'
		if d > 9 {
			break
		}
		hi, lo := bits.Mul64(v, 10)
		lo, carry := bits.Add64(lo, uint64(d), 0)
		if hi|carry != 0 {
			for n < len(b) && b[n]-'0' <= 9 {
				n++
			}
			return math.MaxUint64, n, rangeError(b[:n])
		}
		v = lo
	}
	return v, n, nil
}

// ParseUint parses b, which must consist of ASCII digits only.
func ParseUint(b []byte) (uint64, error) {
	v, n, err := ParseUintPrefix(b)
	if err != nil {
		return v, err
	}
	if n != len(b) {
		return 0, syntaxError(b)
	}
	return v, nil
}
