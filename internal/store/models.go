package store

// Account is the persisted row for one passbook account.
type Account struct {
	Number    int64
	FirstName string
	LastName  string
	Balance   float64
}

// Receipt is one issued transaction identifier, aborted withdrawals included.
// Sequence is globally unique; Confirmation is the canonical receipt string.
type Receipt struct {
	Sequence      int64
	Code          string
	AccountNumber int64
	UTCTime       int64
	Confirmation  string
}

// LedgerState is the single row holding the monotonic sequence counter and
// the settings shared by every account. An empty TZName means UTC.
type LedgerState struct {
	NextSequence int64
	TZName       string
	TZHours      int
	TZMinutes    int
	InterestRate float64
}
