//go:build unit

package money_test

import (
	"encoding/json"
	"testing"

	"internship-checkout/internal/domain/money"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmount_Paise(t *testing.T) {
	cases := []struct {
		rupees string
		paise  int64
	}{
		{"499", 49900},
		{"499.99", 49999},
		{"0.005", 1},
		{"0", 0},
		{"1999.5", 199950},
	}
	for _, c := range cases {
		t.Run(c.rupees, func(t *testing.T) {
			a, err := money.NewAmount(decimal.RequireFromString(c.rupees))
			require.NoError(t, err)
			assert.Equal(t, c.paise, a.Paise())
		})
	}
}

func TestAmount_Arithmetic(t *testing.T) {
	base := money.FromInt(499)

	assert.Equal(t, "399.00", base.ClampedSub(money.FromInt(100)).String())
	assert.True(t, base.ClampedSub(money.FromInt(600)).IsZero())
	assert.Equal(t, "49.90", base.Percent(decimal.NewFromInt(10)).String())
	assert.Equal(t, "100.00", base.Min(money.FromInt(100)).String())
	assert.True(t, money.FromPaise(49900).Equal(base))

	_, err := money.NewAmount(decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, money.ErrNegativeAmount)
	assert.True(t, money.FromInt(-5).IsZero())
}

func TestAmount_JSON(t *testing.T) {
	var a money.Amount
	require.NoError(t, json.Unmarshal([]byte(`249.5`), &a))
	assert.Equal(t, "249.50", a.String())

	b, err := json.Marshal(a)
	require.NoError(t, err)
	assert.Equal(t, "249.5", string(b))

	assert.Error(t, json.Unmarshal([]byte(`-3`), &a))
}
