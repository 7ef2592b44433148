package models

import (
	"encoding/json"
	"fmt"
)

// Bytes is a byte sequence that crosses the wire as a JSON array of
// numbers ([1,2,255]) instead of Go's default base64 string. The server
// serializes every salt, key, and secret field this way, so the client
// must match it on both marshal and unmarshal.
type Bytes []byte

// MarshalJSON implements [json.Marshaler]. A nil slice is encoded as an
// empty array, never as null, because the server rejects null byte fields.
func (b Bytes) MarshalJSON() ([]byte, error) {
	out := make([]uint16, len(b))
	for i, v := range b {
		out[i] = uint16(v)
	}
	return json.Marshal(out)
}

// UnmarshalJSON implements [json.Unmarshaler]. Values outside 0..255 are
// rejected rather than truncated.
func (b *Bytes) UnmarshalJSON(data []byte) error {
	var raw []int
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("byte array: %w", err)
	}

	out := make([]byte, len(raw))
	for i, v := range raw {
		if v < 0 || v > 255 {
			return fmt.Errorf("byte array: value %d at index %d out of range", v, i)
		}
		out[i] = byte(v)
	}

	*b = out
	return nil
}
