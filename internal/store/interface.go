package store

type Repository interface {
	// Account Operations
	CreateAccount(acc Account) error
	GetAccount(number int64) (*Account, error)
	GetAllAccounts() ([]*Account, error)
	AccountExists(number int64) (bool, error)
	UpdateBalance(number int64, balance float64) error

	// Receipt Operations
	AppendReceipt(r Receipt) error
	GetReceiptsByAccount(accountNumber int64, limit int) ([]*Receipt, error)
	GetAllReceipts(limit int) ([]*Receipt, error)

	// Ledger State Operations
	GetLedgerState() (*LedgerState, error)
	SaveLedgerState(s LedgerState) error

	// ExecTx runs fn against a repository bound to a single transaction.
	ExecTx(fn func(Repository) error) error

	Close() error
}
