package metadict

import (
	"fmt"
	"math"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"
)

var (
	_ msgpack.CustomEncoder = (*Map)(nil)
	_ msgpack.CustomDecoder = (*Map)(nil)
)

// EncodeMsgpack writes the map as a msgpack map in insertion order.
func (m *Map) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeMapLen(len(m.keys)); err != nil {
		return err
	}

	for _, k := range m.keys {
		if err := enc.EncodeString(k); err != nil {
			return err
		}

		if err := enc.Encode(m.values[k]); err != nil {
			return fmt.Errorf("key %q: %w", k, err)
		}
	}

	return nil
}

// DecodeMsgpack reads a msgpack map into m, keeping key order. Integers
// decode as int64 (uint64 above math.MaxInt64), floats as float64.
func (m *Map) DecodeMsgpack(dec *msgpack.Decoder) error {
	out, err := decodeMsgpackMap(dec)
	if err != nil {
		return err
	}

	*m = *out

	return nil
}

func decodeMsgpackMap(dec *msgpack.Decoder) (*Map, error) {
	n, err := dec.DecodeMapLen()
	if err != nil {
		return nil, err
	}

	m := New()

	for i := 0; i < max(n, 0); i++ {
		key, err := dec.DecodeString()
		if err != nil {
			return nil, err
		}

		v, err := decodeMsgpackValue(dec)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}

		m.Set(key, v)
	}

	return m, nil
}

func decodeMsgpackValue(dec *msgpack.Decoder) (any, error) {
	c, err := dec.PeekCode()
	if err != nil {
		return nil, err
	}

	switch {
	case msgpcode.IsFixedMap(c) || c == msgpcode.Map16 || c == msgpcode.Map32:
		return decodeMsgpackMap(dec)

	case msgpcode.IsFixedArray(c) || c == msgpcode.Array16 || c == msgpcode.Array32:
		n, err := dec.DecodeArrayLen()
		if err != nil {
			return nil, err
		}

		items := make([]any, 0, max(n, 0))

		for i := 0; i < max(n, 0); i++ {
			item, err := decodeMsgpackValue(dec)
			if err != nil {
				return nil, err
			}

			items = append(items, item)
		}

		return items, nil
	}

	v, err := dec.DecodeInterfaceLoose()
	if err != nil {
		return nil, err
	}

	if u, ok := v.(uint64); ok && u <= math.MaxInt64 {
		return int64(u), nil
	}

	return v, nil
}
