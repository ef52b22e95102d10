// Package money holds the structured monetary and mileage values used by
// vehicle listings, plus the display formatting the storefront expects.
// Older admin clients submitted prices as opaque strings like
// "R2,600 per month"; those are still accepted on input and parsed into
// structured amounts so that price sorting compares numbers, not strings.
package money

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is the symbol used when a listing does not carry one.
const DefaultCurrency = "R"

// DefaultMileageUnit is the unit mileage values are recorded in.
const DefaultMileageUnit = "km"

var errEmptyAmount = errors.New("amount is empty")

// ParseAmount extracts a decimal amount from a display string by stripping
// every character that is not a digit or a dot, e.g. "R2,600 per month"
// parses to 2600. Plain numeric strings parse unchanged.
func ParseAmount(s string) (decimal.Decimal, error) {
	var b strings.Builder

	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}

	if b.Len() == 0 {
		return decimal.Zero, errEmptyAmount
	}

	return decimal.NewFromString(b.String())
}

// ParseMileage extracts an integer mileage from a display string such as
// "81,000".
func ParseMileage(s string) (int, error) {
	var b strings.Builder

	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	if b.Len() == 0 {
		return 0, errors.New("mileage is empty")
	}

	return strconv.Atoi(b.String())
}

// FormatMonthly renders an amount as the storefront's monthly payment string,
// e.g. FormatMonthly(2600, "R") == "R2,600 per month".
func FormatMonthly(amount decimal.Decimal, currency string) string {
	if currency == "" {
		currency = DefaultCurrency
	}
	return currency + groupThousands(amount.StringFixed(0)) + " per month"
}

// FormatMileage renders a mileage as a thousands-separated string, e.g.
// FormatMileage(81000) == "81,000".
func FormatMileage(mileage int) string {
	return groupThousands(strconv.Itoa(mileage))
}

func groupThousands(digits string) string {
	neg := strings.HasPrefix(digits, "-")
	if neg {
		digits = digits[1:]
	}

	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// Amount is a monetary value that unmarshals from either a plain JSON number
// or a legacy display string.
type Amount struct {
	decimal.Decimal
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}

		d, err := ParseAmount(s)
		if err != nil {
			return err
		}

		a.Decimal = d
		return nil
	}

	return a.Decimal.UnmarshalJSON(data)
}

// Mileage is an odometer reading that unmarshals from either a plain JSON
// number or a thousands-separated display string.
type Mileage int

func (m *Mileage) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}

		v, err := ParseMileage(s)
		if err != nil {
			return err
		}

		*m = Mileage(v)
		return nil
	}

	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	*m = Mileage(v)
	return nil
}
