package simdatoi

import (
	"bytes"
	"encoding/binary"
	randv2 "math/rand/v2"
)

// SampleTimestamp is a microsecond Unix timestamp, the kind of 16-digit field
// the kernels are aimed at.
const SampleTimestamp = "1585201087123789"

// SampleCorpus returns n deterministic numerals of 1 to RegisterWidth digits.
// Each numeral is followed by a space and enough padding that every kernel's
// load precondition holds on it; the numeral itself is numeral[:k] where k is
// the index of the first space.
func SampleCorpus(n int, seed uint64) [][]byte {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:], seed)
	rng := randv2.New(randv2.NewChaCha8(key))

	corpus := make([][]byte, n)
	for i := range corpus {
		digits := 1 + rng.IntN(RegisterWidth)
		b := make([]byte, 0, PaddedLength(digits+1))
		for range digits {
			b = append(b, byte('0'+rng.IntN(10)))
		}
		corpus[i] = AppendPadding(append(b, ' '))
	}
	return corpus
}

// Numeral returns the digits of a SampleCorpus entry.
func Numeral(entry []byte) []byte {
	if i := bytes.IndexByte(entry, ' '); i >= 0 {
		return entry[:i]
	}
	return entry
}
