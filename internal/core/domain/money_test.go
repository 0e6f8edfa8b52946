package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/businessfin/bfp_backend/internal/core/domain"
)

func TestMoneyExactArithmetic(t *testing.T) {
	// 0.1 + 0.2 is the classic binary float trap; decimals must stay exact.
	a := domain.MustMoney("0.10")
	b := domain.MustMoney("0.20")
	assert.True(t, a.Add(b).Equal(domain.MustMoney("0.30")))

	sum := domain.ZeroMoney()
	for i := 0; i < 10; i++ {
		sum = sum.Add(domain.MustMoney("0.10"))
	}
	assert.True(t, sum.Equal(domain.MustMoney("1.00")))
	assert.Equal(t, "1.00", sum.String())
}

func TestMoneyScaleEnforcement(t *testing.T) {
	_, err := domain.NewMoneyFromString("10.001")
	require.Error(t, err)

	// Trailing zeros beyond the scale are still the same exact value.
	m, err := domain.NewMoneyFromString("10.1000")
	require.NoError(t, err)
	assert.Equal(t, "10.10", m.String())

	_, err = domain.NewMoney(decimal.RequireFromString("0.005"))
	require.Error(t, err)
}

func TestMoneySignsAndComparison(t *testing.T) {
	m := domain.MustMoney("5.00")
	assert.True(t, m.IsPositive())
	assert.True(t, m.Neg().IsNegative())
	assert.True(t, m.Sub(m).IsZero())
	assert.False(t, m.Equal(domain.MustMoney("5.01")))
	assert.True(t, domain.MustMoney("-3.25").Abs().Equal(domain.MustMoney("3.25")))
}

func TestMoneyJSONRoundTrip(t *testing.T) {
	m := domain.MustMoney("1234.56")
	data, err := json.Marshal(m)
	require.NoError(t, err)
	// Serialized as a decimal string, never a float.
	assert.Equal(t, `"1234.56"`, string(data))

	var back domain.Money
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, back.Equal(m))

	// Bare JSON numbers are accepted on input.
	require.NoError(t, json.Unmarshal([]byte(`200.00`), &back))
	assert.True(t, back.Equal(domain.MustMoney("200.00")))
}

func TestMoneyZeroValueIsZero(t *testing.T) {
	var m domain.Money
	assert.True(t, m.IsZero())
	assert.True(t, m.Add(domain.MustMoney("1.50")).Equal(domain.MustMoney("1.50")))
}
