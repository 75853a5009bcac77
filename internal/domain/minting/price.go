package minting

import (
	"fmt"
	"math/big"
	"strings"
)

// NativeDecimals is the decimal precision of the chain's native token.
const NativeDecimals = 18

// ParseUnits converts a human readable decimal amount ("0.003") into the
// smallest on-chain unit, exactly. The conversion happens on the decimal
// string with integer math only, so repeated multiplication never picks up
// floating point drift.
func ParseUnits(amount string, decimals int) (*big.Int, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return nil, fmt.Errorf("empty amount")
	}

	intPart, fracPart, _ := strings.Cut(amount, ".")
	if intPart == "" {
		intPart = "0"
	}

	if len(fracPart) > decimals {
		return nil, fmt.Errorf("amount %s exceeds %d decimals of precision", amount, decimals)
	}

	digits := intPart + fracPart + strings.Repeat("0", decimals-len(fracPart))
	value, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, fmt.Errorf("invalid decimal amount %s", amount)
	}

	return value, nil
}

// TotalCost returns the exact payment for quantity units at perUnit wei each.
func TotalCost(perUnit *big.Int, quantity int) *big.Int {
	return new(big.Int).Mul(perUnit, big.NewInt(int64(quantity)))
}
