package types

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCostInfinityAbsorbs(t *testing.T) {
	finite := NewCost(d("12.5"))

	assert.True(t, finite.Add(Infinite()).IsInfinite())
	assert.True(t, Infinite().Add(finite).IsInfinite())
	assert.True(t, Infinite().AddDecimal(d("1")).IsInfinite())
	assert.Equal(t, "25", finite.Add(finite).String())
}

func TestCostCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b Cost
		want int
	}{
		{"finite less", NewCost(d("1")), NewCost(d("2")), -1},
		{"finite equal", NewCost(d("2.0")), NewCost(d("2")), 0},
		{"finite below infinity", NewCost(d("1e9")), Infinite(), -1},
		{"infinity above finite", Infinite(), ZeroCost(), 1},
		{"infinities equal", Infinite(), Infinite(), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Cmp(tt.b))
		})
	}
}

func TestCostKeepsFullPrecision(t *testing.T) {
	c := NewCost(d("0.005")).AddDecimal(d("0.001"))

	assert.Equal(t, "0.006", c.String())
	assert.Equal(t, "0.01", c.StringFixed(2))
	assert.Equal(t, "inf", Infinite().StringFixed(2))
	assert.True(t, Infinite().Amount().IsZero())
}

func TestCostJSON(t *testing.T) {
	data, err := json.Marshal([]Cost{NewCost(d("22.5")), Infinite()})
	require.NoError(t, err)
	assert.JSONEq(t, `["22.5","inf"]`, string(data))

	var decoded []Cost
	require.NoError(t, json.Unmarshal([]byte(`[3, "4.25", "inf"]`), &decoded))
	require.Len(t, decoded, 3)
	assert.Equal(t, "3", decoded[0].String())
	assert.Equal(t, "4.25", decoded[1].String())
	assert.True(t, decoded[2].IsInfinite())

	var bad Cost
	assert.Error(t, json.Unmarshal([]byte(`"cheap"`), &bad))
}

func TestParseCurrency(t *testing.T) {
	c, err := ParseCurrency(" usd ")
	require.NoError(t, err)
	assert.Equal(t, CurrencyUSD, c)

	_, err = ParseCurrency("GBP")
	assert.Error(t, err)
}
