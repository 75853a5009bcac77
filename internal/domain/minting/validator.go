package minting

import (
	"strconv"
	"strings"

	"github.com/defido-labs/backend/pkg/errorx"
)

// SanitizeQuantityInput mirrors what the mint popup does while the user
// types: drop every non-digit character and collapse leading zeros. An empty
// result means the input is still incomplete, which is not an error on its
// own.
func SanitizeQuantityInput(s string) string {
	var b strings.Builder
	for _, c := range s {
		if c >= '0' && c <= '9' {
			b.WriteRune(c)
		}
	}

	digits := b.String()
	if len(digits) > 1 && digits[0] == '0' {
		digits = strings.TrimLeft(digits, "0")
		if digits == "" {
			digits = "0"
		}
	}

	return digits
}

// ParseQuantity validates a submitted quantity against the mint bounds. An
// absent or non-numeric input counts as below minimum, the same way an empty
// popup field does.
func ParseQuantity(input string, min, max int) (int, error) {
	digits := SanitizeQuantityInput(input)
	if digits == "" {
		return 0, errorx.New(errorx.BelowMinimum, "Amount must be at least %d", min)
	}

	n, err := strconv.Atoi(digits)
	if err != nil || n < min {
		return 0, errorx.New(errorx.BelowMinimum, "Amount must be at least %d", min)
	}

	if n > max {
		return 0, errorx.New(errorx.AboveMaximum, "Max amount is %d", max)
	}

	return n, nil
}

// ClampQuantity backs the increment and decrement controls. It never fails,
// it only pulls the value back inside [min, max].
func ClampQuantity(n, min, max int) int {
	if n < min {
		return min
	}

	if n > max {
		return max
	}

	return n
}
