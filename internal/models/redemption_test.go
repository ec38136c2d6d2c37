package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmountJSONKeepsFixedScale(t *testing.T) {
	cases := map[string]string{
		"100.00": `"100.00"`,
		"100":    `"100.00"`,
		"250.5":  `"250.50"`,
		"0.01":   `"0.01"`,
	}
	for in, want := range cases {
		a := Amount{Decimal: decimal.RequireFromString(in)}
		got, err := json.Marshal(a)
		require.NoError(t, err)
		assert.Equal(t, want, string(got), "input=%s", in)
	}
}

func TestAmountJSONRoundTrip(t *testing.T) {
	var a Amount
	require.NoError(t, json.Unmarshal([]byte(`"19.90"`), &a))

	got, err := json.Marshal(a)
	require.NoError(t, err)
	assert.Equal(t, `"19.90"`, string(got))
}
