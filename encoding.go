// FILE: lixenwraith/bitflags/encoding.go
package bitflags

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// MarshalText implements encoding.TextMarshaler using the String form
func (s Set[T, D]) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse
func (s *Set[T, D]) UnmarshalText(text []byte) error {
	v, err := Parse[T, D](string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// UnmarshalJSON accepts either the text form as a JSON string or the raw
// bits as a JSON number
func (s *Set[T, D]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		return s.UnmarshalText([]byte(text))
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("flag set must be a string or number: %w", err)
	}
	raw, err := parseLiteral(n.String(), reprOf[T]())
	if err != nil {
		return err
	}
	v, err := FromBits[T, D](T(raw))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// AppendBinary appends the bits big-endian, using the width of T
func (s Set[T, D]) AppendBinary(b []byte) ([]byte, error) {
	size := bitSize[T]() / 8
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], toUint64(s.bits))
	return append(b, buf[8-size:]...), nil
}

// MarshalBinary implements encoding.BinaryMarshaler
func (s Set[T, D]) MarshalBinary() ([]byte, error) {
	return s.AppendBinary(make([]byte, 0, bitSize[T]()/8))
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. The decoded bits
// must lie within the all-flags mask.
func (s *Set[T, D]) UnmarshalBinary(data []byte) error {
	size := bitSize[T]() / 8
	if len(data) != size {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidLength, len(data), size)
	}
	var buf [8]byte
	copy(buf[8-size:], data)
	v, err := FromBits[T, D](T(binary.BigEndian.Uint64(buf[:])))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Hash returns a 64-bit hash of the bits. Equal sets hash equally.
func (s Set[T, D]) Hash() uint64 {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], toUint64(s.bits))
	return xxhash.Sum64(buf[:])
}
