/*
Package maparray implements a dense, array-like collection on top of a
key-value mapping (in this case, an ordinary Go map keyed by position).

We implement:

1. Positional access (get, replace) with negative indices counting from
the end, the way dynamic languages do it.

2. Structural edits (insert, remove, append, prepend) that keep positions
packed into 0..N-1 by shifting the affected suffix.

3. Heterogeneous index forms: a plain integer, a Token, or a decimal
string all address the same position.

4. Value semantics: every edit returns a new Array and leaves the
receiver untouched, so instances can be shared freely without locks.

# Technical Details

**Keys.**
The backing map is keyed by validated ints. A position is live iff its
key is present, and the density invariant guarantees the keys are exactly
0..Len()-1, so bounds checking on reads is just a map lookup.

**Error styles.**
Every operation comes in two flavors: a tagged-result form (ok bool or
error return) and a fail-fast form (MustGet, MustInsert, ...) that panics
with the same *IndexError the tagged form would have reported. The Must
forms are thin wrappers over the tagged forms.

**Encoding.**
Arrays encode as plain msgpack arrays of their values in position order,
so they can be embedded in msgpack documents like any other value.
*/
package maparray
