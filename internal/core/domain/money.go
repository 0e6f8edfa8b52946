package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of decimal places every amount carries.
const MoneyScale = 2

// Money is an exact decimal amount with at most MoneyScale decimal places.
// All arithmetic is exact; binary floats never enter the computation. The
// zero value is zero money and ready to use.
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney returns the zero amount.
func ZeroMoney() Money {
	return Money{}
}

// NewMoney wraps d as Money. Amounts with more than MoneyScale decimal
// places are rejected rather than rounded.
func NewMoney(d decimal.Decimal) (Money, error) {
	if !d.Equal(d.Round(MoneyScale)) {
		return Money{}, fmt.Errorf("amount %s has more than %d decimal places", d.String(), MoneyScale)
	}
	return Money{amount: d}, nil
}

// NewMoneyFromString parses a decimal string into Money with the same scale
// check as NewMoney.
func NewMoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return NewMoney(d)
}

// MustMoney parses s and panics on failure. For constants and tests.
func MustMoney(s string) Money {
	m, err := NewMoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

func (m Money) Neg() Money {
	return Money{amount: m.amount.Neg()}
}

func (m Money) Abs() Money {
	return Money{amount: m.amount.Abs()}
}

// Equal compares by exact decimal value.
func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// Decimal exposes the underlying exact value.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String renders the amount with exactly MoneyScale decimal places.
func (m Money) String() string {
	return m.amount.StringFixed(MoneyScale)
}

// MarshalJSON serializes the amount as a quoted decimal string, never a
// binary float.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

// UnmarshalJSON accepts either a quoted decimal string or a bare JSON
// number, enforcing the scale limit.
func (m *Money) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	parsed, err := NewMoney(d)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
