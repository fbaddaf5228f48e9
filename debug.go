package maparray

import (
	"fmt"
	"strconv"
	"strings"
)

// String renders the array as <Array [v0, v1, v2]> for logs and debugging.
// Not part of the functional contract.
func (a Array[T]) String() string {
	var buf strings.Builder
	buf.WriteString("<Array [")
	for i := 0; i < a.count; i++ {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(&buf, "%v", a.items[i])
	}
	buf.WriteString("]>")
	return buf.String()
}

// Dump renders the backing map as {0: v0, 1: v1} in key order.
func (a Array[T]) Dump() string {
	var buf strings.Builder
	buf.WriteByte('{')
	for i := 0; i < a.count; i++ {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(strconv.Itoa(i))
		buf.WriteString(": ")
		fmt.Fprintf(&buf, "%v", a.items[i])
	}
	buf.WriteByte('}')
	return buf.String()
}
