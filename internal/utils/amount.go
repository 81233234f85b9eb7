package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseAmount converts a decimal string like "150", "150.5" or "150.50" into
// a non-negative amount.
func ParseAmount(amountStr string) (float64, error) {
	amountStr = strings.TrimSpace(amountStr)
	if amountStr == "" {
		return 0, fmt.Errorf("amount cannot be empty")
	}

	amount, err := strconv.ParseFloat(amountStr, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount: %s", amountStr)
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, fmt.Errorf("invalid amount: %s", amountStr)
	}
	if amount < 0 {
		return 0, fmt.Errorf("amount cannot be negative: %s", amountStr)
	}
	return amount, nil
}

// FormatAmount renders a balance or amount with two decimal places.
func FormatAmount(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// ValidateAmountInput is a prompt validator for amount fields; an empty
// input is allowed and treated as zero.
func ValidateAmountInput(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	_, err := ParseAmount(s)
	return err
}
