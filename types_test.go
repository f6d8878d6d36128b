package simdatoi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKernelNames(t *testing.T) {
	for _, k := range Kernels() {
		parsed, err := ParseKernel(k.String())
		require.NoError(t, err)
		require.Equal(t, k, parsed)
	}

	_, err := ParseKernel("avx512")
	require.Error(t, err)
	require.Equal(t, "Kernel(42)", Kernel(42).String())
}

func TestKernelParse(t *testing.T) {
	input := AppendPadding([]byte(SampleTimestamp))
	numeral := input[:len(SampleTimestamp)]

	cases := []struct {
		kernel   Kernel
		value    uint64
		consumed int
	}{
		{KernelSimple, 1585201087123789, 16},
		{KernelStrconv, 1585201087123789, 16},
		{KernelFixed8, 15852010, 8},
		{KernelFixed16, 1585201087123789, 16},
		{KernelFixed16Pair, 1585201087123789, 16},
		{KernelVariable, 1585201087123789, 16},
	}

	for _, tc := range cases {
		t.Run(tc.kernel.String(), func(t *testing.T) {
			b := input
			if tc.kernel.Width() == 0 {
				b = numeral
			}
			v, n := tc.kernel.Parse(b)
			require.Equal(t, tc.value, v)
			require.Equal(t, tc.consumed, n)
		})
	}

	require.Panics(t, func() { Kernel(-1).Parse(input) })
}

func TestKernelWidth(t *testing.T) {
	require.Zero(t, KernelSimple.Width())
	require.Zero(t, KernelStrconv.Width())
	require.Equal(t, Fixed8Width, KernelFixed8.Width())
	require.Equal(t, RegisterWidth, KernelFixed16.Width())
	require.Equal(t, RegisterWidth, KernelFixed16Pair.Width())
	require.Equal(t, RegisterWidth, KernelVariable.Width())
}

func TestPlatform(t *testing.T) {
	if useSIMD {
		require.Equal(t, "archsimd", VariableKernel())
	} else {
		require.Equal(t, "generic", VariableKernel())
	}
	for _, f := range CPUFeatures() {
		require.Contains(t, []string{"ssse3", "sse4.1", "avx", "avx2", "asimd"}, f)
	}
}

func TestAppendPadding(t *testing.T) {
	b := AppendPadding([]byte("123"))
	require.Len(t, b, PaddedLength(3))

	v, n := ParseVariable(b)
	require.Equal(t, uint64(123), v)
	require.Equal(t, 3, n)

	// Every suffix of the unpadded data satisfies the load precondition.
	for i := range 3 {
		v, n = ParseVariable(b[i:])
		require.Equal(t, ParseSimple([]byte("123")[i:]), v)
		require.Equal(t, 3-i, n)
	}
}

func TestSampleCorpus(t *testing.T) {
	a := SampleCorpus(500, 5)
	require.Equal(t, a, SampleCorpus(500, 5))
	require.NotEqual(t, a, SampleCorpus(500, 6))

	for _, e := range a {
		n := Numeral(e)
		require.GreaterOrEqual(t, len(n), 1)
		require.LessOrEqual(t, len(n), RegisterWidth)
		require.GreaterOrEqual(t, len(e), RegisterWidth)

		v, consumed := ParseVariable(e)
		require.Equal(t, len(n), consumed)
		require.Equal(t, ParseSimple(n), v)
	}
}
