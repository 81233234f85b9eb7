package ledger

import (
	"errors"
	"fmt"
)

var (
	ErrValidation          = errors.New("validation failed")
	ErrTransactionCode     = errors.New("invalid transaction code")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// AbortError reports a withdrawal rejected for insufficient funds. The
// attached receipt consumed a sequence number even though no balance changed.
type AbortError struct {
	Receipt *TransactionID
}

func (e *AbortError) Error() string {
	return fmt.Sprintf("insufficient balance: %s", e.Receipt)
}

func (e *AbortError) Unwrap() error { return ErrInsufficientBalance }
