package simdatoi

import (
	"bytes"
	"errors"
	"fmt"
)

var ErrFieldNotFound = errors.New("field not found")

// Field extracts the unsigned integer following key in a header line such as
// "=ybegin part=1 total=3 size=739811 name=file.bin", where key is " size=".
// The digits must end at the end of line or at a NUL, space, CR or LF byte.
func Field(line, key []byte) (uint64, error) {
	start := bytes.Index(line, key)
	if start == -1 {
		return 0, fmt.Errorf("simdatoi: field %q: %w", key, ErrFieldNotFound)
	}

	data := line[start+len(key):]
	v, n, err := ParseUintPrefix(data)
	switch {
	case errors.Is(err, ErrRange):
		return v, fieldError(key, data[:n], ErrRange)
	case err != nil:
		return 0, fieldError(key, data, ErrSyntax)
	case n < len(data) && !isFieldEnd(data[n]):
		return 0, fieldError(key, data, ErrSyntax)
	}
	return v, nil
}

func fieldError(key, value []byte, err error) error {
	return fmt.Errorf("simdatoi: field %q: parsing %q: %w", key, value, err)
}

func isFieldEnd(c byte) bool {
	return c == 0 || c == ' ' || c == '\r' || c == '\n'
}
