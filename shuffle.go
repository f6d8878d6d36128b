package simdatoi

import "encoding/binary"

// register models a 128-bit vector register as sixteen byte lanes.
// Lane 0 holds the first input character.
type register [RegisterWidth]byte

// zeroLane is a shuffle index that clears its output lane, as in PSHUFB/TBL.
const zeroLane = 0x80

// shiftTable holds RegisterWidth zeroing indices followed by the identity
// permutation. The RegisterWidth-byte window starting at RegisterWidth-s is the
// shuffle that moves every lane s positions up and zero-fills lanes [0,s), so
// the 17 shift patterns overlap in a single 32-byte table.
var shiftTable = [2 * RegisterWidth]byte{
	zeroLane, zeroLane, zeroLane, zeroLane, zeroLane, zeroLane, zeroLane, zeroLane,
	zeroLane, zeroLane, zeroLane, zeroLane, zeroLane, zeroLane, zeroLane, zeroLane,
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
}

// shiftWindow returns the shuffle indices for a shift of s lanes, 0 <= s <= RegisterWidth.
func shiftWindow(s int) *register {
	return (*register)(shiftTable[RegisterWidth-s:])
}

// shuffle returns r permuted by idx: out[i] = r[idx[i]&15], or 0 when the
// index has its high bit set.
func (r *register) shuffle(idx *register) (out register) {
	for i, j := range idx {
		out[i] = r[j&(RegisterWidth-1)] &^ byte(int8(j)>>7)
	}
	return out
}

// words packs the lanes into two little-endian words: lanes 0-7 in lo, 8-15 in hi.
func (r *register) words() (lo, hi uint64) {
	return binary.LittleEndian.Uint64(r[:8]), binary.LittleEndian.Uint64(r[8:])
}

// shiftLanes is the word-arithmetic form of the table shuffle: it moves the
// lanes of (lo, hi) s positions up, zero-filling the low lanes. Go defines
// shifts by at least the operand width as zero, so every s in [0,16] is
// handled without a branch.
func shiftLanes(lo, hi uint64, s int) (uint64, uint64) {
	k := uint(s) * 8
	hi = hi<<k | lo>>(64-k) | lo<<(k-64)
	lo <<= k
	return lo, hi
}
