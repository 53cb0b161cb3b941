package entities

import (
	"encoding/json"
	"strings"
)

type Country struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	CurrencyCode string `json:"currency_code"`
}

// UnmarshalJSON accepts both `code` and `iso2` as the country code.
func (c *Country) UnmarshalJSON(b []byte) error {
	var raw struct {
		Code         string `json:"code"`
		ISO2         string `json:"iso2"`
		Name         string `json:"name"`
		CurrencyCode string `json:"currency_code"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	code := raw.Code
	if strings.TrimSpace(code) == "" {
		code = raw.ISO2
	}
	*c = Country{
		Code:         strings.ToUpper(strings.TrimSpace(code)),
		Name:         raw.Name,
		CurrencyCode: strings.ToUpper(strings.TrimSpace(raw.CurrencyCode)),
	}
	return nil
}

type Region struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	CountryCode string `json:"country_code,omitempty"`
}
