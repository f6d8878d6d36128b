package simdatoi

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseAll(t *testing.T) {
	corpus := SampleCorpus(3*batchChunk+17, 11)
	fields := make([][]byte, len(corpus))
	expected := make([]uint64, len(corpus))
	for i, e := range corpus {
		fields[i] = Numeral(e)
		expected[i] = ParseSimple(fields[i])
	}

	dst := make([]uint64, len(fields))
	require.NoError(t, ParseAll(context.Background(), dst, fields))
	require.Equal(t, expected, dst)
}

func TestParseAllEmpty(t *testing.T) {
	require.NoError(t, ParseAll(context.Background(), nil, nil))
}

func TestParseAllError(t *testing.T) {
	fields := make([][]byte, 2*batchChunk)
	for i := range fields {
		fields[i] = []byte(strconv.Itoa(i))
	}
	fields[batchChunk+5] = []byte("12x")

	err := ParseAll(context.Background(), make([]uint64, len(fields)), fields)
	require.ErrorIs(t, err, ErrSyntax)
	require.ErrorContains(t, err, "field "+strconv.Itoa(batchChunk+5))
}

func TestParseAllShortDst(t *testing.T) {
	err := ParseAll(context.Background(), make([]uint64, 1), [][]byte{[]byte("1"), []byte("2")})
	require.ErrorIs(t, err, ErrShortDst)
}

func TestParseAllCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fields := [][]byte{[]byte("1"), []byte("2")}
	err := ParseAll(ctx, make([]uint64, len(fields)), fields)
	require.ErrorIs(t, err, context.Canceled)
}
