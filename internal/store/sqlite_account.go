package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

func (s *Store) CreateAccount(acc Account) error {
	_, err := s.db.Exec(`
		INSERT INTO accounts (number, first_name, last_name, balance)
		VALUES (?, ?, ?, ?);
	`, acc.Number, acc.FirstName, acc.LastName, acc.Balance)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return fmt.Errorf("%w: account number %d", ErrAccountExists, acc.Number)
		}
		return fmt.Errorf("failed to insert account : %w", err)
	}
	return nil
}

func (s *Store) GetAccount(number int64) (*Account, error) {
	row := s.db.QueryRow(`
		SELECT number, first_name, last_name, balance
		FROM accounts
		WHERE number = ?
	`, number)

	acc := &Account{}
	err := row.Scan(&acc.Number, &acc.FirstName, &acc.LastName, &acc.Balance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: account %d", ErrRecordNotFound, number)
		}
		return nil, fmt.Errorf("failed to query account %d: %w", number, err)
	}
	return acc, nil
}

func (s *Store) GetAllAccounts() ([]*Account, error) {
	rows, err := s.db.Query(`
		SELECT number, first_name, last_name, balance
		FROM accounts
		ORDER BY number
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*Account
	for rows.Next() {
		acc := &Account{}
		if err := rows.Scan(&acc.Number, &acc.FirstName, &acc.LastName, &acc.Balance); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, acc)
	}

	return accounts, rows.Err()
}

func (s *Store) AccountExists(number int64) (bool, error) {
	var exists bool
	row := s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM accounts WHERE number = ?)", number)
	if err := row.Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check account existence: %w", err)
	}
	return exists, nil
}

func (s *Store) UpdateBalance(number int64, balance float64) error {
	result, err := s.db.Exec(`
		UPDATE accounts
		SET balance = ?
		WHERE number = ?
	`, balance, number)
	if err != nil {
		return fmt.Errorf("failed to update balance: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: account %d", ErrRecordNotFound, number)
	}
	return nil
}
