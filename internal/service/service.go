package service

import (
	"fmt"

	"github.com/passbook-cli/passbook/internal/ledger"
	"github.com/passbook-cli/passbook/internal/store"
)

type Service struct {
	Account     *AccountService
	Transaction *TransactionService
}

func NewService(repo store.Repository) *Service {
	return &Service{
		Account:     NewAccountService(repo),
		Transaction: NewTransactionService(repo),
	}
}

// loadLedger rebuilds the core ledger from the persisted state row, resuming
// the monotonic sequence counter and the shared display timezone and
// interest rate.
func loadLedger(repo store.Repository) (*ledger.Ledger, error) {
	state, err := repo.GetLedgerState()
	if err != nil {
		return nil, err
	}

	l := ledger.NewWithIssuer(ledger.NewIssuerAt(state.NextSequence))
	if state.TZName != "" {
		tz, err := ledger.NewTimeZone(state.TZName, state.TZHours, state.TZMinutes)
		if err != nil {
			return nil, fmt.Errorf("corrupt timezone in ledger state: %w", err)
		}
		l.SetTimeZone(tz)
	}
	if err := l.SetInterestRate(state.InterestRate); err != nil {
		return nil, fmt.Errorf("corrupt interest rate in ledger state: %w", err)
	}
	return l, nil
}

// saveLedger writes the counter and shared settings back. Sequence values
// consumed by a failed operation are persisted too; the counter never rolls
// back.
func saveLedger(repo store.Repository, l *ledger.Ledger) error {
	state := store.LedgerState{
		NextSequence: l.Issuer().NextSequence(),
		InterestRate: l.InterestRate(),
	}
	if tz := l.TimeZone(); tz != nil {
		state.TZName = tz.Name()
		state.TZHours = tz.Hours()
		state.TZMinutes = tz.Minutes()
	}
	return repo.SaveLedgerState(state)
}

func receiptRow(id *ledger.TransactionID) store.Receipt {
	return store.Receipt{
		Sequence:      id.Sequence(),
		Code:          id.Code().Letter(),
		AccountNumber: id.AccountNumber(),
		UTCTime:       id.UTCTime().Unix(),
		Confirmation:  id.ConfirmationCode(),
	}
}
