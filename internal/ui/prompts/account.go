package prompts

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/passbook-cli/passbook/internal/constants"
	"github.com/passbook-cli/passbook/internal/ledger"
	"github.com/passbook-cli/passbook/internal/utils"
)

// PromptAccountNumber prompts for a positive integer account number.
func PromptAccountNumber(validator func(string) error) (int64, error) {
	input, err := PromptInput("Account number:", "", func(s string) error {
		if _, err := parseAccountNumber(s); err != nil {
			return err
		}
		if validator != nil {
			return validator(s)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return parseAccountNumber(input)
}

// PromptHolderName prompts for a name. The first name is required; the last
// name may stay empty.
func PromptHolderName(message string, required bool) (string, error) {
	return PromptInput(message, "", func(s string) error {
		s = strings.TrimSpace(s)
		if required && s == "" {
			return fmt.Errorf("name must be at least 1 character long")
		}
		if len(s) > constants.MaxNameLen {
			return fmt.Errorf("name too long (max %d characters)", constants.MaxNameLen)
		}
		return nil
	})
}

// PromptInitialBalance prompts for an opening balance; empty means zero.
func PromptInitialBalance() (float64, error) {
	input, err := PromptInput("Initial balance (default 0):", "", utils.ValidateAmountInput)
	if err != nil {
		return 0, err
	}
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, nil
	}
	return utils.ParseAmount(input)
}

// PromptTimeZone walks through the name/hours/minutes of a display timezone.
func PromptTimeZone() (*ledger.TimeZoneOffset, error) {
	name, err := PromptInput("Time zone name (e.g. IST):", "", func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("time zone name cannot be empty")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	hours, err := promptOffsetPart("Hour offset (-23 to 23):", 23)
	if err != nil {
		return nil, err
	}
	minutes, err := promptOffsetPart("Minute offset (-59 to 59):", 59)
	if err != nil {
		return nil, err
	}

	return ledger.NewTimeZone(name, hours, minutes)
}

func promptOffsetPart(message string, bound int) (int, error) {
	input, err := PromptInput(message, "0", func(s string) error {
		if strings.TrimSpace(s) == "" {
			return nil
		}
		v, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("must be an integer")
		}
		if v < -bound || v > bound {
			return fmt.Errorf("must be between %d and %d", -bound, bound)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, nil
	}
	return strconv.Atoi(input)
}

func parseAccountNumber(s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("account number must be an integer")
	}
	if n <= 0 {
		return 0, fmt.Errorf("account number must be positive")
	}
	return n, nil
}
