package simdatoi

import (
	"io"
)

// Scanner reads successive decimal digit runs from an io.Reader, skipping
// every byte in between. Runs may straddle reads; each is parsed once it is
// complete with ParseUintPrefix. A Scanner is not safe for concurrent use.
type Scanner struct {
	r   io.Reader
	rb  readBuffer
	val uint64
	err error
}

type ScannerOption func(s *Scanner)

// NewScanner returns a Scanner reading from r.
func NewScanner(r io.Reader, opts ...ScannerOption) *Scanner {
	s := &Scanner{r: r}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithBufferSize sets the initial read buffer size. The buffer still grows
// when a single digit run does not fit, up to 1 MiB; a larger initial size
// never grows, so it is also the longest run the Scanner accepts. A size of
// zero or less selects the default of 32 KiB.
func WithBufferSize(size int) ScannerOption {
	return func(s *Scanner) {
		if size <= 0 {
			size = defaultReadBufSize
		}
		s.rb = readBuffer{buf: make([]byte, size)}
	}
}

// Scan advances to the next digit run, which is then available through
// Uint64. It returns false at the end of the input or on the first error.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}
	s.rb.init()

	// Skip to the first digit.
	for {
		w := s.rb.window()
		i := indexDigit(w)
		if i >= 0 {
			s.rb.advance(i)
			break
		}
		s.rb.advance(len(w))
		if s.rb.eof {
			return false
		}
		if s.err = s.rb.readMore(s.r); s.err != nil {
			return false
		}
	}

	// The run is complete once a non-digit follows it or the input ends.
	// scanned counts the window bytes already known to be digits; it is
	// relative to the window start, which compacting and growing preserve.
	scanned := 0
	for {
		w := s.rb.window()
		end := scanned + skipDigits(w[scanned:])
		if end < len(w) || s.rb.eof {
			v, n, err := ParseUintPrefix(w[:end])
			s.rb.advance(n)
			s.val, s.err = v, err
			return err == nil
		}
		scanned = end
		if s.err = s.rb.readMore(s.r); s.err != nil {
			return false
		}
	}
}

// Uint64 returns the value of the run found by the last call to Scan.
func (s *Scanner) Uint64() uint64 {
	return s.val
}

// Err returns the first error encountered by the Scanner. Reaching the end of
// the input is not an error.
func (s *Scanner) Err() error {
	return s.err
}

func indexDigit(b []byte) int {
	for i, c := range b {
		if c-'0' <= 9 {
			return i
		}
	}
	return -1
}

func skipDigits(b []byte) int {
	for i, c := range b {
		if c-'0' > 9 {
			return i
		}
	}
	return len(b)
}
