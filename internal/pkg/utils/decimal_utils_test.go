package utils

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatUnits(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		decimals uint8
		want     string
	}{
		{name: "one ether in wei", amount: "1000000000000000000", decimals: 18, want: "1.0000"},
		{name: "lamports", amount: "2500000000", decimals: 9, want: "2.5000"},
		{name: "yocto near", amount: "1000000000000000000000000", decimals: 24, want: "1.0000"},
		{name: "micro algos", amount: "5000000", decimals: 6, want: "5.0000"},
		{name: "zero", amount: "0", decimals: 18, want: "0.0000"},
		{name: "sub cent dust", amount: "123400000000000", decimals: 18, want: "0.0001"},
		{name: "no scaling", amount: "7", decimals: 0, want: "7.0000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, ok := new(big.Int).SetString(tt.amount, 10)
			require.True(t, ok)

			got, err := FormatUnits(amount, tt.decimals)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatUnitsRejectsBadInput(t *testing.T) {
	_, err := FormatUnits(nil, 18)
	assert.Error(t, err)

	_, err = FormatUnits(big.NewInt(-1), 18)
	assert.Error(t, err)
}

func TestFormatDecimalString(t *testing.T) {
	got, err := FormatDecimalString("120.5")
	require.NoError(t, err)
	assert.Equal(t, "120.5000", got)

	got, err = FormatDecimalString("0")
	require.NoError(t, err)
	assert.Equal(t, "0.0000", got)

	_, err = FormatDecimalString("not-a-number")
	assert.Error(t, err)

	_, err = FormatDecimalString("-3")
	assert.Error(t, err)
}
