package model

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// EpochMillis is a millisecond timestamp. It crosses JSON boundaries as a
// decimal string so that clients without native 64 bit integers do not lose precision.
type EpochMillis int64

func (e EpochMillis) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.FormatInt(int64(e), 10))
}

// UnmarshalJSON accepts both the string form and a plain JSON number
func (e *EpochMillis) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return err
	}
	*e = EpochMillis(value)
	return nil
}
