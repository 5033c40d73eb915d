package utils

import (
	"fmt"
	"math/big"
)

// balancePlaces is the number of decimal places balances are rendered with.
// All chain APIs we serve format to exactly four places ("1.0000").
const balancePlaces = 4

// FormatUnits converts a raw integer amount into a decimal string, scaling it
// down by the given number of decimals and formatting to four decimal places.
// Example: amount=2500000000, decimals=9 => "2.5000".
func FormatUnits(amount *big.Int, decimals uint8) (string, error) {
	if amount == nil {
		return "", fmt.Errorf("nil amount")
	}
	if amount.Sign() < 0 {
		return "", fmt.Errorf("negative amount %s", amount)
	}

	value := new(big.Float).SetInt(amount)
	divisor := new(big.Float).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil))
	value.Quo(value, divisor)

	return value.Text('f', balancePlaces), nil
}

// FormatDecimalString reformats an already-decimal balance string (as returned
// by account APIs such as Horizon) to four decimal places.
func FormatDecimalString(s string) (string, error) {
	value, ok := new(big.Float).SetString(s)
	if !ok {
		return "", fmt.Errorf("invalid decimal string %q", s)
	}
	if value.Sign() < 0 {
		return "", fmt.Errorf("negative balance %q", s)
	}
	return value.Text('f', balancePlaces), nil
}
