// Package document holds the pure calculation layer shared by every
// renderer: flexible decimal decoding, resolved totals and the display
// formats (currency, tax rate, dates) that both output formats must agree on.
package document

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Amount is a decimal that tolerates the shapes numeric fields arrive in
// from persistence: a JSON number, a decimal-as-text string, null, or
// garbage. Anything unparseable decodes to zero — a malformed figure must
// never abort a render.
type Amount struct {
	decimal.Decimal
}

// AmountFromFloat builds an Amount from a float64.
func AmountFromFloat(f float64) Amount {
	return Amount{decimal.NewFromFloat(f)}
}

// AmountFromInt builds an Amount from an int64.
func AmountFromInt(n int64) Amount {
	return Amount{decimal.NewFromInt(n)}
}

// AmountFromString parses a decimal-as-text value. Empty or unparseable
// input yields zero.
func AmountFromString(s string) Amount {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Amount{}
	}
	return Amount{d}
}

// UnmarshalJSON accepts numbers, quoted decimal strings, null and empty
// strings. It never returns an error: parse failures decode to zero.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		a.Decimal = decimal.Decimal{}
		return nil
	}
	s = strings.Trim(s, `"`)
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		a.Decimal = decimal.Decimal{}
		return nil
	}
	a.Decimal = d
	return nil
}

// MarshalJSON emits the amount as a plain JSON number.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.String()), nil
}

// FormatMoney renders an amount as sterling with exactly two decimals,
// e.g. "£25.50".
func FormatMoney(a Amount) string {
	return "£" + a.StringFixed(2)
}

// FormatRate renders a tax rate with two decimals and a percent suffix,
// e.g. "20.00%".
func FormatRate(a Amount) string {
	return a.StringFixed(2) + "%"
}

// FormatQuantity renders a quantity without a decimal tail when it is
// integral ("3" rather than "3.00").
func FormatQuantity(a Amount) string {
	if a.IsInteger() {
		return a.StringFixed(0)
	}
	return a.Decimal.String()
}

// FormatDate renders a timestamp in UK long form, e.g. "05 March 2024".
// Always the record's creation time, never the render-time clock.
func FormatDate(t time.Time) string {
	return t.Format("02 January 2006")
}
