package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Uint64 decodes from either a JSON number or a quoted decimal string. Node
// responses use both forms for heights and counters.
type Uint64 uint64

// UnmarshalJSON implements json.Unmarshaler.
func (u *Uint64) UnmarshalJSON(data []byte) error {
	raw := bytes.Trim(data, `"`)
	v, err := strconv.ParseUint(string(raw), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid unsigned integer %s: %w", data, err)
	}

	*u = Uint64(v)
	return nil
}

// MarshalJSON encodes u as a JSON number.
func (u Uint64) MarshalJSON() ([]byte, error) {
	return json.Marshal(uint64(u))
}
