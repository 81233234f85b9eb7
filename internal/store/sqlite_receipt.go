package store

import (
	"database/sql"
	"fmt"
)

func (s *Store) AppendReceipt(r Receipt) error {
	_, err := s.db.Exec(`
		INSERT INTO receipts (sequence, code, account_number, utc_time, confirmation)
		VALUES (?, ?, ?, ?, ?);
	`, r.Sequence, r.Code, r.AccountNumber, r.UTCTime, r.Confirmation)
	if err != nil {
		return fmt.Errorf("failed to insert receipt : %w", err)
	}
	return nil
}

// GetReceiptsByAccount returns an account's receipts, newest first.
func (s *Store) GetReceiptsByAccount(accountNumber int64, limit int) ([]*Receipt, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := s.db.Query(`
		SELECT sequence, code, account_number, utc_time, confirmation
		FROM receipts
		WHERE account_number = ?
		ORDER BY sequence DESC
		LIMIT ?
	`, accountNumber, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query receipts: %w", err)
	}
	defer rows.Close()

	return scanReceipts(rows)
}

func scanReceipts(rows *sql.Rows) ([]*Receipt, error) {
	var receipts []*Receipt
	for rows.Next() {
		r := &Receipt{}
		if err := rows.Scan(&r.Sequence, &r.Code, &r.AccountNumber, &r.UTCTime, &r.Confirmation); err != nil {
			return nil, fmt.Errorf("failed to scan receipt: %w", err)
		}
		receipts = append(receipts, r)
	}
	return receipts, rows.Err()
}

// GetAllReceipts returns recent receipts across every account, newest first.
func (s *Store) GetAllReceipts(limit int) ([]*Receipt, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := s.db.Query(`
		SELECT sequence, code, account_number, utc_time, confirmation
		FROM receipts
		ORDER BY sequence DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query receipts: %w", err)
	}
	defer rows.Close()

	return scanReceipts(rows)
}
