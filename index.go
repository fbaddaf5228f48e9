package maparray

import (
	"math"
	"strconv"
)

// Token is the symbolic form of an index. It must spell a base-10 integer;
// Token("1"), "1" and 1 all address the same position.
type Token string

// normIndex converts any accepted index form into a position. A negative
// index is resolved by adding shift (the current length for access and
// removal, length+1 for insertion so the append point is addressable).
//
// normIndex does not bounds-check: a very negative index stays negative
// after the shift, and callers reject it either explicitly (Insert) or by
// map absence (everything else).
func normIndex(ix any, shift int) (int, error) {
	n, err := indexValue(ix)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		n += shift
	}
	return n, nil
}

// mustNormIndex is the raising variant, for call sites that have already
// guaranteed parseability or want a loud failure.
func mustNormIndex(ix any, shift int) int {
	return must(normIndex(ix, shift))
}

func indexValue(ix any) (int, error) {
	switch v := ix.(type) {
	case int:
		return v, nil
	case int8:
		return int(v), nil
	case int16:
		return int(v), nil
	case int32:
		return int(v), nil
	case int64:
		return int(v), nil
	case uint:
		return uintIndexValue(ix, uint64(v))
	case uint8:
		return int(v), nil
	case uint16:
		return int(v), nil
	case uint32:
		return int(v), nil
	case uint64:
		return uintIndexValue(ix, v)
	case Token:
		return parseIndex(ix, string(v))
	case string:
		return parseIndex(ix, v)
	default:
		return 0, indexErrf(ix, -1, ErrNotInteger, "unsupported index type %T", ix)
	}
}

func uintIndexValue(ix any, v uint64) (int, error) {
	if v > math.MaxInt {
		return 0, indexErrf(ix, -1, ErrOutOfRange, "index overflows int")
	}
	return int(v), nil
}

// parseIndex accepts exactly what strconv.Atoi accepts: an optional sign
// followed by digits, nothing else. Empty strings, fractions and trailing
// garbage all fail.
func parseIndex(ix any, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, indexErrf(ix, -1, ErrNotInteger, "")
	}
	return n, nil
}
