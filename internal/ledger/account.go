package ledger

import (
	"fmt"
	"math"
	"strings"
)

// Account holds identity and a non-negative balance. Every mutating operation
// returns a TransactionID receipt minted by the owning ledger's issuer; the
// account number never changes after opening.
type Account struct {
	ledger    *Ledger
	number    int64
	firstName string
	lastName  string
	balance   float64
}

// OpenAccount validates identity and balance and returns a new account bound
// to the ledger. The tz argument (nil for UTC) becomes the display timezone
// for every account on the ledger, not just this one.
func (l *Ledger) OpenAccount(number int64, firstName, lastName string, tz *TimeZoneOffset, balance float64) (*Account, error) {
	firstName = strings.TrimSpace(firstName)
	if firstName == "" {
		return nil, fmt.Errorf("%w: first name must be at least 1 character long", ErrValidation)
	}
	if !validAmount(balance) {
		return nil, fmt.Errorf("%w: balance must be a non-negative real number", ErrValidation)
	}
	l.SetTimeZone(tz)
	return &Account{
		ledger:    l,
		number:    number,
		firstName: firstName,
		lastName:  strings.TrimSpace(lastName),
		balance:   balance,
	}, nil
}

func (a *Account) Number() int64 { return a.number }

func (a *Account) FirstName() string { return a.firstName }

func (a *Account) LastName() string { return a.lastName }

func (a *Account) FullName() string {
	return strings.TrimSpace(a.firstName + " " + a.lastName)
}

func (a *Account) Balance() float64 { return a.balance }

// Deposit adds a non-negative amount to the balance and returns the receipt.
func (a *Account) Deposit(amount float64) (*TransactionID, error) {
	if !validAmount(amount) {
		return nil, fmt.Errorf("%w: deposit amount must be a non-negative real number", ErrValidation)
	}
	a.balance += amount
	return a.ledger.issue(CodeDeposit, a.number)
}

// Withdraw removes a non-negative amount from the balance. A withdrawal that
// would overdraw fails with an AbortError carrying a freshly minted
// abort-excess receipt; the balance is untouched but the receipt still
// consumed a sequence number.
func (a *Account) Withdraw(amount float64) (*TransactionID, error) {
	if !validAmount(amount) {
		return nil, fmt.Errorf("%w: withdrawal amount must be a non-negative real number", ErrValidation)
	}
	if a.balance-amount < 0 {
		receipt, err := a.ledger.issue(CodeAbortExcess, a.number)
		if err != nil {
			return nil, err
		}
		return nil, &AbortError{Receipt: receipt}
	}
	a.balance -= amount
	return a.ledger.issue(CodeWithdraw, a.number)
}

// PayMonthlyInterest credits one month of interest at the ledger-wide rate
// and returns the receipt.
func (a *Account) PayMonthlyInterest() (*TransactionID, error) {
	a.balance += a.balance * (a.ledger.InterestRate() / 100)
	return a.ledger.issue(CodeInterest, a.number)
}

func (a *Account) String() string {
	return fmt.Sprintf("Account(name=%s, balance=%v)", a.FullName(), a.balance)
}

func validAmount(v float64) bool {
	return v >= 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}
