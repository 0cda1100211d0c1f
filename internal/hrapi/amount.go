package hrapi

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// FlexAmount decodes a monetary amount that the HR API serializes
// inconsistently as either a JSON number or a quoted string.
type FlexAmount float64

func (a *FlexAmount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*a = 0
			return nil
		}
		val, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		*a = FlexAmount(val)
		return nil
	}
	var val float64
	if err := json.Unmarshal(data, &val); err != nil {
		return err
	}
	*a = FlexAmount(val)
	return nil
}

func (a FlexAmount) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(a))
}

// Float64 returns the amount as a plain float64.
func (a FlexAmount) Float64() float64 {
	return float64(a)
}
