package maparray

import (
	"github.com/vmihailenco/msgpack/v5"
)

var (
	_ msgpack.CustomEncoder = Array[int]{}
	_ msgpack.CustomDecoder = (*Array[int])(nil)
)

// EncodeMsgpack writes the array as a msgpack array of its values in
// position order.
func (a Array[T]) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(a.count); err != nil {
		return err
	}
	for i := 0; i < a.count; i++ {
		if err := enc.Encode(a.items[i]); err != nil {
			return err
		}
	}
	return nil
}

// DecodeMsgpack reads a msgpack array, replacing the receiver's contents.
// A msgpack nil decodes as the empty array.
func (a *Array[T]) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if n <= 0 {
		*a = Array[T]{}
		return nil
	}
	items := make(map[int]T, n)
	for i := 0; i < n; i++ {
		var v T
		if err := dec.Decode(&v); err != nil {
			return err
		}
		items[i] = v
	}
	*a = Array[T]{n, items}
	return nil
}

// Marshal encodes the array to msgpack bytes.
func Marshal[T any](a Array[T]) ([]byte, error) {
	return msgpack.Marshal(a)
}

// Unmarshal decodes msgpack bytes produced by Marshal.
func Unmarshal[T any](data []byte) (Array[T], error) {
	var a Array[T]
	if err := msgpack.Unmarshal(data, &a); err != nil {
		return Array[T]{}, err
	}
	return a, nil
}
