package simdatoi

import (
	"fmt"
	"io"
)

const (
	defaultReadBufSize = 32 * 1024
	maxReadBufSize     = 1024 * 1024
	maxEmptyReads      = 100
)

type readBuffer struct {
	buf        []byte
	start, end int
	eof        bool
}

func (rb *readBuffer) init() {
	if len(rb.buf) == 0 {
		rb.buf = make([]byte, defaultReadBufSize)
	}
}

func (rb *readBuffer) window() []byte {
	return rb.buf[rb.start:rb.end]
}

func (rb *readBuffer) advance(consumed int) {
	if consumed <= 0 {
		return
	}
	rb.start += consumed
	if rb.start >= rb.end {
		rb.start, rb.end = 0, 0
	}
}

func (rb *readBuffer) compact() {
	if rb.start == 0 || rb.start == rb.end {
		return
	}
	copy(rb.buf, rb.buf[rb.start:rb.end])
	rb.end -= rb.start
	rb.start = 0
}

func (rb *readBuffer) ensureWriteSpace() error {
	if rb.end < len(rb.buf) {
		return nil
	}
	if rb.start > 0 {
		rb.compact()
		if rb.end < len(rb.buf) {
			return nil
		}
	}

	// No space and cannot compact: grow.
	cur := len(rb.buf)
	if cur == 0 {
		cur = defaultReadBufSize
	}
	newLen := min(cur*2, maxReadBufSize)
	if newLen <= len(rb.buf) {
		return fmt.Errorf("simdatoi: digit run exceeds %d byte read buffer", maxReadBufSize)
	}

	nb := make([]byte, newLen)
	copy(nb, rb.window())
	rb.end = rb.end - rb.start
	rb.start = 0
	rb.buf = nb
	return nil
}

// readMore appends at least one byte from r to the buffer, or records EOF.
func (rb *readBuffer) readMore(r io.Reader) error {
	if err := rb.ensureWriteSpace(); err != nil {
		return err
	}
	for range maxEmptyReads {
		n, err := r.Read(rb.buf[rb.end:])
		rb.end += n
		if err == io.EOF {
			rb.eof = true
			return nil
		}
		if err != nil || n > 0 {
			return err
		}
	}
	return io.ErrNoProgress
}
