package simdatoi

import (
	"encoding/binary"
	"math/bits"
)

const (
	zeros8 = 0x3030303030303030 // eight '0' characters
	high8  = 0x8080808080808080 // high bit of every byte
	low7   = 0x7f7f7f7f7f7f7f7f

	// digitBias pushes a 7-bit lane value of 10 or more into the lane's high bit.
	digitBias = 0x7676767676767676

	// gatherHighBits moves the high bit of byte i to bit 56+i when multiplied
	// with a word holding only those high bits; no two partial products overlap.
	gatherHighBits = 0x0002040810204081
)

// parseFixed8Generic is the three-stage SWAR reduction over one word. The
// big-endian load is the byte-reversed little-endian load, which puts b[0] in
// the top byte. Each stage masks the lower and upper lane groups apart and
// scales the upper group by a positional weight; combined with the shift the
// weights are 10, 100 and 10000.
func parseFixed8Generic(b []byte) uint64 {
	chunk := binary.BigEndian.Uint64(b) - zeros8

	lower := chunk & 0x000f000f000f000f
	upper := ((chunk & 0x0f000f000f000f00) >> 7) * 5
	chunk = lower + upper

	lower = chunk & 0x000000ff000000ff
	upper = ((chunk & 0x00ff000000ff0000) >> 14) * 25
	chunk = lower + upper

	lower = chunk & 0x000000000000ffff
	upper = ((chunk & 0x0000ffff00000000) >> 28) * 625
	return lower + upper
}

// subBaseline subtracts '0' from every byte lane of x independently; a lane
// below '0' wraps around instead of borrowing from its neighbour.
func subBaseline(x uint64) uint64 {
	return ((x | high8) - zeros8) ^ (^x & high8)
}

// digitBits returns one bit per byte lane of a baseline-subtracted word, set
// when the lane is in [0,9]. Lanes that wrapped below zero have their high bit
// set and fail the test alongside lanes of 10 and up.
func digitBits(x uint64) uint8 {
	over := (x & low7) + digitBias
	m := ^(over | x) & high8
	return uint8((m * gatherHighBits) >> 56)
}

// reduceForward runs the reduction network over a register whose lane 0 is
// the most significant digit. Stage one folds byte pairs with weights {10,1}
// into 16-bit lanes, stage two folds those with {100,1} into 32-bit lanes and
// stage three folds 32-bit pairs with {10000,1}. Lane values stay below the
// width of the next stage even for garbage input, so no lane carries.
func reduceForward(lo, hi uint64) uint64 {
	return reduceHalfForward(lo)*100000000 + reduceHalfForward(hi)
}

func reduceHalfForward(x uint64) uint64 {
	x = (x&0x00ff00ff00ff00ff)*10 + (x>>8)&0x00ff00ff00ff00ff
	x = (x&0x0000ffff0000ffff)*100 + (x>>16)&0x0000ffff0000ffff
	return (x&0x00000000ffffffff)*10000 + x>>32
}

// reduceReversed is the same network for a byte-reversed register, where
// lane 0 is the least significant digit and the weights sit on the upper lane
// of every pair.
func reduceReversed(lo, hi uint64) uint64 {
	return reduceHalfReversed(hi)*100000000 + reduceHalfReversed(lo)
}

func reduceHalfReversed(x uint64) uint64 {
	x = x&0x00ff00ff00ff00ff + ((x>>8)&0x00ff00ff00ff00ff)*10
	x = x&0x0000ffff0000ffff + ((x>>16)&0x0000ffff0000ffff)*100
	return x&0x00000000ffffffff + (x>>32)*10000
}

func parseFixed16Generic(b []byte) uint64 {
	lo := subBaseline(binary.LittleEndian.Uint64(b))
	hi := subBaseline(binary.LittleEndian.Uint64(b[8:RegisterWidth]))
	return reduceForward(lo, hi)
}

// parseFixed16Reversed loads the register most-significant character last,
// as the byte-swapping variant of the kernel does.
func parseFixed16Reversed(b []byte) uint64 {
	lo := subBaseline(binary.BigEndian.Uint64(b[8:RegisterWidth]))
	hi := subBaseline(binary.BigEndian.Uint64(b))
	return reduceReversed(lo, hi)
}

func parseVariableGeneric(b []byte) (uint64, int) {
	lo := subBaseline(binary.LittleEndian.Uint64(b))
	hi := subBaseline(binary.LittleEndian.Uint64(b[8:RegisterWidth]))

	mask := uint16(digitBits(lo)) | uint16(digitBits(hi))<<8
	n := bits.TrailingZeros16(^mask)

	lo, hi = shiftLanes(lo, hi, RegisterWidth-n)
	return reduceForward(lo, hi), n
}
