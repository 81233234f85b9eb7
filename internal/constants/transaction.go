package constants

const (
	// MaxNameLen bounds account holder names at the CLI boundary.
	MaxNameLen = 100

	// DefaultHistoryLimit is how many receipts the history command shows
	// when no limit flag is given.
	DefaultHistoryLimit = 20
)
