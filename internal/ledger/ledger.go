package ledger

import (
	"fmt"
	"math"
	"sync"
	"time"
)

// DefaultInterestRate is the monthly interest percentage applied to every
// account unless the ledger is configured otherwise.
const DefaultInterestRate = 0.5

// Ledger owns the identifier issuer and the settings all of its accounts
// share: the display timezone and the monthly interest rate. Both are common
// to every account on the ledger — opening any account resets the display
// timezone for all of them, matching the model this reimplements. The shared
// state lives here as explicit injected state instead of package globals.
type Ledger struct {
	issuer *Issuer

	mu           sync.Mutex
	tz           *TimeZoneOffset // nil means UTC
	interestRate float64
}

// New returns a ledger with a fresh issuer, UTC display timezone and the
// default interest rate.
func New() *Ledger { return NewWithIssuer(NewIssuer()) }

// NewWithIssuer returns a ledger minting receipts through the given issuer.
func NewWithIssuer(issuer *Issuer) *Ledger {
	return &Ledger{issuer: issuer, interestRate: DefaultInterestRate}
}

func (l *Ledger) Issuer() *Issuer { return l.issuer }

// TimeZone returns the display timezone shared by all accounts; nil means UTC.
func (l *Ledger) TimeZone() *TimeZoneOffset {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.tz
}

// SetTimeZone sets the display timezone for every account on the ledger.
func (l *Ledger) SetTimeZone(tz *TimeZoneOffset) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.tz = tz
}

// InterestRate returns the monthly interest percentage shared by all accounts.
func (l *Ledger) InterestRate() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.interestRate
}

// SetInterestRate sets the monthly interest percentage for every account.
func (l *Ledger) SetInterestRate(rate float64) error {
	if rate < 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return fmt.Errorf("%w: interest rate must be a non-negative real number", ErrValidation)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.interestRate = rate
	return nil
}

// ParseConfirmationCode reconstructs a receipt from its confirmation string
// using the ledger's current display timezone. The reconstruction consumes a
// sequence number like any other mint.
func (l *Ledger) ParseConfirmationCode(confirmation string) (*TransactionID, error) {
	return l.issuer.Parse(confirmation, l.TimeZone())
}

// issue mints an operation receipt stamped "now". Receipts carry the UTC
// display timezone regardless of the ledger setting; only the parse path
// attaches the shared display timezone.
func (l *Ledger) issue(code TransactionCode, accountNumber int64) (*TransactionID, error) {
	return l.issuer.Issue(code, accountNumber, time.Time{}, nil)
}
