package entities

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// FlexDecimal accepts JSON numbers, numeric strings and null. Upstream pricing and
// order payloads are not consistent about quoting numbers, so anything that does not
// parse is treated as absent instead of failing the whole document.
type FlexDecimal struct {
	Value decimal.Decimal
	Valid bool
}

func NewFlexDecimal(d decimal.Decimal) FlexDecimal {
	return FlexDecimal{Value: d, Valid: true}
}

func (f *FlexDecimal) UnmarshalJSON(b []byte) error {
	*f = FlexDecimal{}
	raw := bytes.TrimSpace(b)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	s := string(raw)
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil
		}
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	*f = FlexDecimal{Value: d, Valid: true}
	return nil
}

func (f FlexDecimal) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return []byte(f.Value.String()), nil
}

// Positive reports whether the value is present and > 0.
func (f FlexDecimal) Positive() bool {
	return f.Valid && f.Value.IsPositive()
}

// Or returns the value when present, def otherwise.
func (f FlexDecimal) Or(def decimal.Decimal) decimal.Decimal {
	if f.Valid {
		return f.Value
	}
	return def
}

// FlexString accepts JSON strings, numbers and booleans as text; null is empty.
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	raw := bytes.TrimSpace(b)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		*f = ""
		return nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		*f = FlexString(strings.TrimSpace(s))
		return nil
	}
	if raw[0] == '{' || raw[0] == '[' {
		*f = ""
		return nil
	}
	*f = FlexString(string(raw))
	return nil
}

func (f FlexString) String() string {
	return string(f)
}
