package schema

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// FlexNumber is a numeric field that the analytics service may send as a JSON
// number, a numeric string or null. A null or empty string decodes to zero.
// An absent field is never decoded and keeps Valid false.
// Anything that is not a finite number decodes with Valid set to false instead
// of failing the surrounding document.
type FlexNumber struct {
	Value float64
	Valid bool
}

// NewFlexNumber returns a valid FlexNumber holding v.
func NewFlexNumber(v float64) FlexNumber {
	return FlexNumber{Value: v, Valid: true}
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *FlexNumber) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)
	n.Value, n.Valid = 0, false

	if bytes.Equal(raw, []byte("null")) {
		n.Valid = true
		return nil
	}

	text := string(raw)
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil
		}
		text = strings.TrimSpace(s)
		if text == "" {
			n.Valid = true
			return nil
		}
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	n.Value, n.Valid = v, true
	return nil
}

// MarshalJSON implements json.Marshaler. Invalid values encode as null.
func (n FlexNumber) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// MarshalYAML implements yaml.Marshaler.
func (n FlexNumber) MarshalYAML() (any, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Value, nil
}

// Float64 returns the value, or zero when the number is invalid.
func (n FlexNumber) Float64() float64 {
	if !n.Valid {
		return 0
	}
	return n.Value
}
