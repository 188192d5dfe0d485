package workbook

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when no currency is configured.
const DefaultCurrency = "EUR"

// Money represents an exact monetary value in a given currency.
//
// The zero Money has no currency and a zero amount.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M returns value in currency cur, without validation.
func M[T float64 | int | int64 | decimal.Decimal](value T, cur string) Money {
	var v decimal.Decimal
	switch x := any(value).(type) {
	case decimal.Decimal:
		v = x
	case float64:
		v = decimal.NewFromFloat(x)
	case int:
		v = decimal.NewFromInt(int64(x))
	case int64:
		v = decimal.NewFromInt(x)
	}
	return Money{value: v, cur: strings.ToUpper(cur)}
}

// ParseMoney parses a decimal amount like "12.50" in currency cur.
func ParseMoney(amount, cur string) (Money, error) {
	if err := ValidateCurrency(cur); err != nil {
		return Money{}, err
	}
	v, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return Money{}, invalidf("amount %q is not a decimal number", amount)
	}
	m := M(v, cur)
	if err := validatePrecision(m); err != nil {
		return Money{}, err
	}
	return m, nil
}

// validatePrecision rejects amounts with more decimals than the currency
// fraction: they would not be written back as they are.
func validatePrecision(m Money) error {
	if !m.value.Equal(m.Round().value) {
		return invalidf("amount %s has more than %d decimal(s) in %s", m.value, m.currency().Fraction, m.cur)
	}
	return nil
}

// ValidateCurrency checks that code is a known ISO 4217 currency code.
func ValidateCurrency(code string) error {
	if money.GetCurrency(strings.ToUpper(code)) == nil {
		return invalidf("unknown currency %q", code)
	}
	return nil
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the amount formatted with the currency symbol and fraction.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(dec.IntPart())
}

func (m Money) Currency() string          { return m.cur }
func (m Money) Decimal() decimal.Decimal  { return m.value }
func (m Money) Equal(n Money) bool        { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool              { return m.value.IsZero() }
func (m Money) IsPositive() bool          { return m.value.IsPositive() }
func (m Money) IsNegative() bool          { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool     { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool  { return m.value.GreaterThan(n.value) }
func (m Money) SameCurrency(n Money) bool { return m.cur == n.cur }
func (m Money) Neg() Money                { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) AsFloat() float64          { return m.value.InexactFloat64() }
func (m Money) Round() Money {
	return Money{value: m.value.Round(int32(m.currency().Fraction)), cur: m.cur}
}
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// makes the "" currency totally weak.
func cur(a, b Money) string {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch " + a.cur + "!=" + b.cur)
	}
	return a.cur
}

// MarshalJSON writes {"currency":"EUR","amount":"12.5"}, the amount rounded
// to the currency fraction.
func (m Money) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("currency", m.cur)
	w.Append("amount", m.Round().value)
	return w.MarshalJSON()
}

// UnmarshalJSON reads the MarshalJSON format. The amount can be a JSON
// string or number.
func (m *Money) UnmarshalJSON(data []byte) error {
	var jm struct {
		Currency string          `json:"currency"`
		Amount   decimal.Decimal `json:"amount"`
	}
	if err := json.Unmarshal(data, &jm); err != nil {
		return err
	}
	if jm.Currency != "" {
		if err := ValidateCurrency(jm.Currency); err != nil {
			return fmt.Errorf("invalid money: %w", err)
		}
	}
	*m = M(jm.Amount, jm.Currency)
	return nil
}
