package simdatoi

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// batchChunk is the number of fields one goroutine parses before checking
// for cancellation.
const batchChunk = 4096

var ErrShortDst = errors.New("destination shorter than input")

// ParseAll parses every field with ParseUint and stores the values in dst.
// Chunks of fields are parsed concurrently, at most GOMAXPROCS at a time. The
// first error stops the remaining chunks and is returned wrapped with the
// index of the failing field.
func ParseAll(ctx context.Context, dst []uint64, fields [][]byte) error {
	if len(dst) < len(fields) {
		return fmt.Errorf("simdatoi: %d fields into %d values: %w", len(fields), len(dst), ErrShortDst)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for start := 0; start < len(fields); start += batchChunk {
		end := min(start+batchChunk, len(fields))
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for i, f := range fields[start:end] {
				v, err := ParseUint(f)
				if err != nil {
					return fmt.Errorf("field %d: %w", start+i, err)
				}
				dst[start+i] = v
			}
			return nil
		})
	}

	return g.Wait()
}
