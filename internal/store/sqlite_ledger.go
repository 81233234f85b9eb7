package store

import (
	"database/sql"
	"errors"
	"fmt"
)

// The ledger_state table holds a single row (id = 1) seeded by the initial
// migration. It carries the sequence counter forward between invocations and
// the display timezone and interest rate shared by every account.

func (s *Store) GetLedgerState() (*LedgerState, error) {
	row := s.db.QueryRow(`
		SELECT next_sequence, tz_name, tz_hours, tz_minutes, interest_rate
		FROM ledger_state
		WHERE id = 1
	`)

	state := &LedgerState{}
	err := row.Scan(&state.NextSequence, &state.TZName, &state.TZHours, &state.TZMinutes, &state.InterestRate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: ledger state", ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query ledger state: %w", err)
	}
	return state, nil
}

func (s *Store) SaveLedgerState(state LedgerState) error {
	_, err := s.db.Exec(`
		UPDATE ledger_state
		SET next_sequence = ?, tz_name = ?, tz_hours = ?, tz_minutes = ?, interest_rate = ?
		WHERE id = 1
	`, state.NextSequence, state.TZName, state.TZHours, state.TZMinutes, state.InterestRate)
	if err != nil {
		return fmt.Errorf("failed to save ledger state: %w", err)
	}
	return nil
}
