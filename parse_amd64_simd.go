//go:build goexperiment.simd && amd64

package simdatoi

import (
	"math/bits"
	"simd/archsimd"
)

// useSIMD indicates whether the archsimd front end of ParseVariable is used.
// archsimd 128-bit ops on AMD64 require AVX.
var useSIMD = archsimd.X86.AVX()

// parseVariableSIMD finds the digit run with vector lane operations: one
// load, a lane-parallel baseline subtract, an unsigned range compare and a
// movemask. The aligned lanes then go through the shared shuffle and
// reduction network.
func parseVariableSIMD(b []byte) (uint64, int) {
	v := archsimd.LoadUint8x16Slice(b).Sub(archsimd.BroadcastUint8x16('0'))
	mask := uint16(v.LessEqual(archsimd.BroadcastUint8x16(9)).ToBits())
	n := bits.TrailingZeros16(^mask)

	var lanes register
	v.StoreSlice(lanes[:])
	lanes = lanes.shuffle(shiftWindow(RegisterWidth - n))
	return reduceForward(lanes.words()), n
}
