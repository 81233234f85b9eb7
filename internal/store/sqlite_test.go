package store

import (
	"errors"
	"testing"

	"github.com/passbook-cli/passbook/migrations"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(":memory:", migrations.FS)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAccountLifecycle(t *testing.T) {
	s := newTestStore(t)

	acc := Account{Number: 140568, FirstName: "Ada", LastName: "Lovelace", Balance: 100.5}
	if err := s.CreateAccount(acc); err != nil {
		t.Fatal(err)
	}

	if err := s.CreateAccount(acc); !errors.Is(err, ErrAccountExists) {
		t.Fatalf("duplicate create err=%v, want ErrAccountExists", err)
	}

	got, err := s.GetAccount(140568)
	if err != nil {
		t.Fatal(err)
	}
	if *got != acc {
		t.Errorf("GetAccount = %+v, want %+v", *got, acc)
	}

	exists, err := s.AccountExists(140568)
	if err != nil || !exists {
		t.Errorf("AccountExists = %v, %v, want true", exists, err)
	}
	exists, err = s.AccountExists(999)
	if err != nil || exists {
		t.Errorf("AccountExists(999) = %v, %v, want false", exists, err)
	}

	if err := s.UpdateBalance(140568, 75.25); err != nil {
		t.Fatal(err)
	}
	got, err = s.GetAccount(140568)
	if err != nil {
		t.Fatal(err)
	}
	if got.Balance != 75.25 {
		t.Errorf("Balance = %v, want 75.25", got.Balance)
	}

	if err := s.UpdateBalance(999, 10); !errors.Is(err, ErrRecordNotFound) {
		t.Errorf("UpdateBalance(999) err=%v, want ErrRecordNotFound", err)
	}
	if _, err := s.GetAccount(999); !errors.Is(err, ErrRecordNotFound) {
		t.Errorf("GetAccount(999) err=%v, want ErrRecordNotFound", err)
	}

	all, err := s.GetAllAccounts()
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 1 {
		t.Errorf("GetAllAccounts len=%d, want 1", len(all))
	}
}

func TestReceiptLog(t *testing.T) {
	s := newTestStore(t)

	receipts := []Receipt{
		{Sequence: 0, Code: "D", AccountNumber: 1, UTCTime: 1700000000, Confirmation: "D-1-20231114221320-0"},
		{Sequence: 1, Code: "X", AccountNumber: 1, UTCTime: 1700000060, Confirmation: "X-1-20231114221420-1"},
		{Sequence: 2, Code: "W", AccountNumber: 2, UTCTime: 1700000120, Confirmation: "W-2-20231114221520-2"},
	}
	for _, r := range receipts {
		if err := s.AppendReceipt(r); err != nil {
			t.Fatal(err)
		}
	}

	all, err := s.GetAllReceipts(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Fatalf("GetAllReceipts len=%d, want 3", len(all))
	}
	// Newest first.
	if all[0].Sequence != 2 || all[2].Sequence != 0 {
		t.Errorf("receipts not ordered newest first: %d..%d", all[0].Sequence, all[2].Sequence)
	}

	byAccount, err := s.GetReceiptsByAccount(1, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(byAccount) != 2 {
		t.Fatalf("GetReceiptsByAccount(1) len=%d, want 2", len(byAccount))
	}
	if byAccount[0].Code != "X" {
		t.Errorf("newest receipt code = %q, want X", byAccount[0].Code)
	}

	limited, err := s.GetAllReceipts(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(limited) != 1 || limited[0].Sequence != 2 {
		t.Errorf("limited receipts = %+v, want just sequence 2", limited)
	}
}

func TestLedgerStateRoundTrip(t *testing.T) {
	s := newTestStore(t)

	state, err := s.GetLedgerState()
	if err != nil {
		t.Fatal(err)
	}
	// The initial migration seeds the defaults.
	if state.NextSequence != 0 || state.TZName != "" || state.InterestRate != 0.5 {
		t.Errorf("initial state = %+v, want next=0 tz=UTC rate=0.5", state)
	}

	saved := LedgerState{NextSequence: 42, TZName: "IST", TZHours: 5, TZMinutes: 30, InterestRate: 1.25}
	if err := s.SaveLedgerState(saved); err != nil {
		t.Fatal(err)
	}

	got, err := s.GetLedgerState()
	if err != nil {
		t.Fatal(err)
	}
	if *got != saved {
		t.Errorf("GetLedgerState = %+v, want %+v", *got, saved)
	}
}

func TestExecTxRollsBack(t *testing.T) {
	s := newTestStore(t)

	err := s.ExecTx(func(repo Repository) error {
		if err := repo.CreateAccount(Account{Number: 1, FirstName: "Ada"}); err != nil {
			return err
		}
		return errors.New("boom")
	})
	if err == nil {
		t.Fatal("ExecTx should propagate the callback error")
	}

	exists, err := s.AccountExists(1)
	if err != nil {
		t.Fatal(err)
	}
	if exists {
		t.Error("account survived a rolled-back transaction")
	}
}
