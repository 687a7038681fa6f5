// Package money wraps decimal amounts with the lenient JSON behaviour the
// persisted collections require: malformed values decode as zero instead of
// failing the whole read path.
package money

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type Amount struct {
	decimal.Decimal
}

func Zero() Amount {
	return Amount{}
}

func FromInt(n int64) Amount {
	return Amount{decimal.NewFromInt(n)}
}

func FromFloat(f float64) Amount {
	return Amount{decimal.NewFromFloat(f)}
}

// Parse converts a raw form value into an amount.
func Parse(s string) (Amount, error) {
	clean := strings.TrimSpace(s)
	if clean == "" {
		return Amount{}, fmt.Errorf("empty amount")
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing amount %q: %w", s, err)
	}

	return Amount{d}, nil
}

func (a Amount) Add(b Amount) Amount {
	return Amount{a.Decimal.Add(b.Decimal)}
}

func (a Amount) Sub(b Amount) Amount {
	return Amount{a.Decimal.Sub(b.Decimal)}
}

func (a Amount) GreaterThan(b Amount) bool {
	return a.Decimal.GreaterThan(b.Decimal)
}

func (a Amount) Equal(b Amount) bool {
	return a.Decimal.Equal(b.Decimal)
}

// MarshalJSON writes the amount as a bare JSON number, matching the stored
// collection format.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.String()), nil
}

// UnmarshalJSON accepts quoted or unquoted numbers. Anything unparsable
// (including null) decodes as zero.
func (a *Amount) UnmarshalJSON(data []byte) error {
	trimmed := bytes.Trim(bytes.TrimSpace(data), `"`)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		a.Decimal = decimal.Decimal{}
		return nil
	}

	d, err := decimal.NewFromString(string(trimmed))
	if err != nil {
		a.Decimal = decimal.Decimal{}
		return nil
	}

	a.Decimal = d

	return nil
}
