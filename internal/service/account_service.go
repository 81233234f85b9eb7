package service

import (
	"fmt"

	"github.com/passbook-cli/passbook/internal/ledger"
	"github.com/passbook-cli/passbook/internal/store"
)

type AccountService struct {
	repo store.Repository
}

func NewAccountService(repo store.Repository) *AccountService {
	return &AccountService{repo: repo}
}

// OpenAccount validates the new account through the core ledger and persists
// it. A non-nil tz becomes the display timezone shared by every account; a
// nil tz keeps whatever timezone the ledger currently uses.
func (as *AccountService) OpenAccount(number int64, firstName, lastName string, tz *ledger.TimeZoneOffset, balance float64) (*store.Account, error) {
	exists, err := as.repo.AccountExists(number)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: account number %d", store.ErrAccountExists, number)
	}

	l, err := loadLedger(as.repo)
	if err != nil {
		return nil, err
	}
	if tz == nil {
		tz = l.TimeZone()
	}

	acc, err := l.OpenAccount(number, firstName, lastName, tz, balance)
	if err != nil {
		return nil, err
	}

	row := store.Account{
		Number:    acc.Number(),
		FirstName: acc.FirstName(),
		LastName:  acc.LastName(),
		Balance:   acc.Balance(),
	}
	err = as.repo.ExecTx(func(r store.Repository) error {
		if err := r.CreateAccount(row); err != nil {
			return err
		}
		return saveLedger(r, l)
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (as *AccountService) GetAccount(number int64) (*store.Account, error) {
	return as.repo.GetAccount(number)
}

func (as *AccountService) GetAllAccounts() ([]*store.Account, error) {
	return as.repo.GetAllAccounts()
}

// DisplayTimeZone reports the shared display timezone; nil means UTC.
func (as *AccountService) DisplayTimeZone() (*ledger.TimeZoneOffset, error) {
	l, err := loadLedger(as.repo)
	if err != nil {
		return nil, err
	}
	return l.TimeZone(), nil
}
