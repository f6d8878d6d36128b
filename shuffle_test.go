package simdatoi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShiftWindow(t *testing.T) {
	for s := 0; s <= RegisterWidth; s++ {
		w := shiftWindow(s)
		for i, idx := range w {
			if i < s {
				require.Equal(t, byte(zeroLane), idx, "shift %d lane %d", s, i)
			} else {
				require.Equal(t, byte(i-s), idx, "shift %d lane %d", s, i)
			}
		}
	}
}

func TestShuffle(t *testing.T) {
	var r register
	for i := range r {
		r[i] = byte(0xa0 + i)
	}

	reversed := register{15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0}
	out := r.shuffle(&reversed)
	for i := range out {
		require.Equal(t, r[15-i], out[i])
	}

	var zero register
	for i := range zero {
		zero[i] = zeroLane | byte(i)
	}
	require.Equal(t, register{}, r.shuffle(&zero))
}

func TestShiftLanesMatchesTable(t *testing.T) {
	var r register
	for i := range r {
		r[i] = byte(i + 1)
	}

	for s := 0; s <= RegisterWidth; s++ {
		shuffled := r.shuffle(shiftWindow(s))
		wantLo, wantHi := shuffled.words()

		lo, hi := r.words()
		lo, hi = shiftLanes(lo, hi, s)
		require.Equal(t, wantLo, lo, "shift %d", s)
		require.Equal(t, wantHi, hi, "shift %d", s)
	}
}
