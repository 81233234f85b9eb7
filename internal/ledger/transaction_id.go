package ledger

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
	"time"
)

// TransactionCode identifies the kind of operation a receipt was issued for.
type TransactionCode int

const (
	CodeDeposit TransactionCode = iota
	CodeWithdraw
	CodeInterest
	CodeAbortExcess
)

const codeLetters = "DWIX"

const (
	// CompactTimeLayout is the 14-digit timestamp embedded in confirmation codes.
	CompactTimeLayout = "20060102150405"

	displayTimeLayout = "2006-01-02 15:04:05"
	isoTimeLayout     = "2006-01-02T15:04:05"
)

func (c TransactionCode) valid() bool {
	return c >= CodeDeposit && c <= CodeAbortExcess
}

// Letter returns the single-letter wire form of the code.
func (c TransactionCode) Letter() string {
	if !c.valid() {
		return "?"
	}
	return string(codeLetters[c])
}

func (c TransactionCode) String() string {
	switch c {
	case CodeDeposit:
		return "deposit"
	case CodeWithdraw:
		return "withdrawal"
	case CodeInterest:
		return "interest"
	case CodeAbortExcess:
		return "abort-excess"
	default:
		return "unknown"
	}
}

// ParseTransactionCode maps a confirmation-code letter back to its code.
func ParseTransactionCode(letter string) (TransactionCode, error) {
	if len(letter) != 1 {
		return 0, fmt.Errorf("%w: %q", ErrTransactionCode, letter)
	}
	idx := strings.Index(codeLetters, letter)
	if idx < 0 {
		return 0, fmt.Errorf("%w: %q", ErrTransactionCode, letter)
	}
	return TransactionCode(idx), nil
}

// TransactionID is the receipt issued for every mutating account operation.
// It is immutable once minted; the confirmation code is its canonical
// serialization and the stable interchange format for callers.
type TransactionID struct {
	code          TransactionCode
	accountNumber int64
	utcTime       time.Time
	tz            *TimeZoneOffset // nil means UTC
	sequence      int64
}

func (t *TransactionID) Code() TransactionCode { return t.code }

func (t *TransactionID) AccountNumber() int64 { return t.accountNumber }

// UTCTime returns the instant the receipt was minted for, always in UTC.
func (t *TransactionID) UTCTime() time.Time { return t.utcTime }

// TimeZone returns the display timezone; nil means UTC.
func (t *TransactionID) TimeZone() *TimeZoneOffset { return t.tz }

func (t *TransactionID) Sequence() int64 { return t.sequence }

// ConfirmationCode renders the canonical receipt string
// {letter}-{account}-{YYYYMMDDHHMMSS}-{sequence}. The embedded timestamp is
// always the UTC instant, whatever the display timezone.
func (t *TransactionID) ConfirmationCode() string {
	return fmt.Sprintf("%s-%d-%s-%d",
		t.code.Letter(), t.accountNumber, t.utcTime.Format(CompactTimeLayout), t.sequence)
}

// DisplayTime renders the instant shifted into the receipt's display timezone.
func (t *TransactionID) DisplayTime() string {
	if t.tz == nil {
		return t.utcTime.Format(displayTimeLayout) + "(UTC)"
	}
	local := t.utcTime.In(t.tz.Location())
	return fmt.Sprintf("%s(%s)", local.Format(displayTimeLayout), t.tz.Name())
}

// UTCTimeISO renders the UTC instant in ISO-8601 form.
func (t *TransactionID) UTCTimeISO() string {
	return t.utcTime.Format(isoTimeLayout)
}

func (t *TransactionID) String() string {
	return fmt.Sprintf("TransactionID(%s)", t.ConfirmationCode())
}

// Issuer mints TransactionIDs from a single monotonic sequence counter shared
// by every receipt it produces, regardless of account. Each mint consumes
// exactly one sequence value — parse reconstructions and abort receipts
// included — and the counter is never decremented, reset, or rolled back.
type Issuer struct {
	seq atomic.Int64
}

// NewIssuer returns an issuer whose first issued sequence number is 0.
func NewIssuer() *Issuer { return NewIssuerAt(0) }

// NewIssuerAt returns an issuer whose next issued sequence number is next.
// It lets a caller resume a previously persisted sequence.
func NewIssuerAt(next int64) *Issuer {
	iss := &Issuer{}
	iss.seq.Store(next - 1)
	return iss
}

// NextSequence reports the sequence number the next mint will receive.
func (i *Issuer) NextSequence() int64 { return i.seq.Load() + 1 }

// Issue mints a new identifier. A zero at means "now"; a nil tz means UTC.
// The instant is truncated to whole seconds, the resolution the confirmation
// code can carry.
func (i *Issuer) Issue(code TransactionCode, accountNumber int64, at time.Time, tz *TimeZoneOffset) (*TransactionID, error) {
	if !code.valid() {
		return nil, fmt.Errorf("%w: %d is not one of the recognized codes", ErrTransactionCode, int(code))
	}
	if at.IsZero() {
		at = time.Now()
	}
	return &TransactionID{
		code:          code,
		accountNumber: accountNumber,
		utcTime:       at.UTC().Truncate(time.Second),
		tz:            tz,
		sequence:      i.seq.Add(1),
	}, nil
}

// Parse reconstructs an identifier from a previously issued confirmation
// code, splitting it into exactly 4 hyphen-separated fields. Reconstruction
// goes through the normal mint path, so it consumes a live sequence number
// before the parsed one is restored on the result.
func (i *Issuer) Parse(confirmation string, tz *TimeZoneOffset) (*TransactionID, error) {
	parts := strings.Split(confirmation, "-")
	if len(parts) != 4 {
		return nil, fmt.Errorf("%w: expected 4 fields, got %d in %q", ErrTransactionCode, len(parts), confirmation)
	}
	code, err := ParseTransactionCode(parts[0])
	if err != nil {
		return nil, err
	}
	accountNumber, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad account number %q", ErrTransactionCode, parts[1])
	}
	utc, err := time.ParseInLocation(CompactTimeLayout, parts[2], time.UTC)
	if err != nil {
		return nil, fmt.Errorf("%w: bad timestamp %q", ErrTransactionCode, parts[2])
	}
	sequence, err := strconv.ParseInt(parts[3], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad sequence number %q", ErrTransactionCode, parts[3])
	}

	id, err := i.Issue(code, accountNumber, utc, tz)
	if err != nil {
		return nil, err
	}
	id.sequence = sequence
	return id, nil
}
