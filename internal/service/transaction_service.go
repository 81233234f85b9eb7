package service

import (
	"errors"
	"fmt"

	"github.com/passbook-cli/passbook/internal/ledger"
	"github.com/passbook-cli/passbook/internal/store"
)

type TransactionService struct {
	repo store.Repository
}

func NewTransactionService(repo store.Repository) *TransactionService {
	return &TransactionService{repo: repo}
}

// Deposit credits the account and returns the receipt.
func (ts *TransactionService) Deposit(number int64, amount float64) (*ledger.TransactionID, error) {
	return ts.mutate(number, func(acc *ledger.Account) (*ledger.TransactionID, error) {
		return acc.Deposit(amount)
	})
}

// Withdraw debits the account and returns the receipt. An overdraw returns
// an AbortError; its abort receipt is logged and the consumed sequence
// number persisted before the error propagates.
func (ts *TransactionService) Withdraw(number int64, amount float64) (*ledger.TransactionID, error) {
	return ts.mutate(number, func(acc *ledger.Account) (*ledger.TransactionID, error) {
		return acc.Withdraw(amount)
	})
}

// PayMonthlyInterest credits one month of interest at the shared rate.
func (ts *TransactionService) PayMonthlyInterest(number int64) (*ledger.TransactionID, error) {
	return ts.mutate(number, func(acc *ledger.Account) (*ledger.TransactionID, error) {
		return acc.PayMonthlyInterest()
	})
}

// PayMonthlyInterestAll applies interest to every account, in account order.
func (ts *TransactionService) PayMonthlyInterestAll() ([]*ledger.TransactionID, error) {
	accounts, err := ts.repo.GetAllAccounts()
	if err != nil {
		return nil, err
	}

	receipts := make([]*ledger.TransactionID, 0, len(accounts))
	for _, acc := range accounts {
		receipt, err := ts.PayMonthlyInterest(acc.Number)
		if err != nil {
			return receipts, fmt.Errorf("interest for account %d: %w", acc.Number, err)
		}
		receipts = append(receipts, receipt)
	}
	return receipts, nil
}

// ParseConfirmation reconstructs a receipt from its confirmation code using
// the shared display timezone. A successful reconstruction consumes a
// sequence number, which is persisted.
func (ts *TransactionService) ParseConfirmation(confirmation string) (*ledger.TransactionID, error) {
	l, err := loadLedger(ts.repo)
	if err != nil {
		return nil, err
	}

	id, err := l.ParseConfirmationCode(confirmation)
	if err != nil {
		return nil, err
	}
	err = ts.repo.ExecTx(func(r store.Repository) error {
		return saveLedger(r, l)
	})
	if err != nil {
		return nil, err
	}
	return id, nil
}

// History returns logged receipts, newest first. A zero account number means
// every account.
func (ts *TransactionService) History(accountNumber int64, limit int) ([]*store.Receipt, error) {
	if accountNumber == 0 {
		return ts.repo.GetAllReceipts(limit)
	}
	return ts.repo.GetReceiptsByAccount(accountNumber, limit)
}

func (ts *TransactionService) mutate(number int64, op func(*ledger.Account) (*ledger.TransactionID, error)) (*ledger.TransactionID, error) {
	row, err := ts.repo.GetAccount(number)
	if err != nil {
		return nil, err
	}
	l, err := loadLedger(ts.repo)
	if err != nil {
		return nil, err
	}

	acc, err := l.OpenAccount(row.Number, row.FirstName, row.LastName, l.TimeZone(), row.Balance)
	if err != nil {
		return nil, fmt.Errorf("failed to rehydrate account %d: %w", number, err)
	}

	receipt, opErr := op(acc)
	if opErr != nil {
		var abort *ledger.AbortError
		if !errors.As(opErr, &abort) {
			// Validation failure: nothing was minted, nothing to persist.
			return nil, opErr
		}
		// The abort minted a real receipt and consumed a sequence number.
		receipt = abort.Receipt
	}

	// Receipt, balance and counter must land together: a receipt row without
	// the advanced counter would re-mint its sequence on the next run.
	err = ts.repo.ExecTx(func(r store.Repository) error {
		if err := r.AppendReceipt(receiptRow(receipt)); err != nil {
			return err
		}
		if err := r.UpdateBalance(number, acc.Balance()); err != nil {
			return err
		}
		return saveLedger(r, l)
	})
	if err != nil {
		return nil, err
	}

	if opErr != nil {
		return nil, opErr
	}
	return receipt, nil
}
