package maparray

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrNotInteger means the index token does not parse as a base-10 integer.
	ErrNotInteger = errors.New("index is not an integer")
	// ErrNotFound means the index does not resolve to a live element.
	ErrNotFound = errors.New("no element at index")
	// ErrOutOfRange means an insertion index is negative or past the end.
	ErrOutOfRange = errors.New("index out of insertion range")
)

// IndexError reports the offending index together with the array length it
// was resolved against (Len is -1 when the index never parsed and no length
// was involved). Err is one of the sentinel causes above.
type IndexError struct {
	Index any
	Len   int
	Err   error
	Msg   string
}

func indexErrf(ix any, length int, err error, format string, args ...any) error {
	return &IndexError{ix, length, err, fmt.Sprintf(format, args...)}
}

func (e *IndexError) Unwrap() error {
	return e.Err
}

func (e *IndexError) Error() string {
	s := "index " + fmtIndex(e.Index)
	if e.Len >= 0 {
		s += fmt.Sprintf(" (len %d)", e.Len)
	}
	if e.Err != nil {
		s = e.Err.Error() + ": " + s
	}
	if e.Msg != "" {
		s = e.Msg + ": " + s
	}
	return s
}

func fmtIndex(ix any) string {
	switch v := ix.(type) {
	case string:
		return strconv.Quote(v)
	case Token:
		return string(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
