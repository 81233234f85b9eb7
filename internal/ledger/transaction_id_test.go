package ledger

import (
	"errors"
	"testing"
	"time"
)

var testInstant = time.Date(2026, 8, 25, 14, 30, 45, 0, time.UTC)

func TestIssueConfirmationCode(t *testing.T) {
	iss := NewIssuer()
	id, err := iss.Issue(CodeDeposit, 140568, testInstant, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := "D-140568-20260825143045-0"
	if got := id.ConfirmationCode(); got != want {
		t.Errorf("ConfirmationCode() = %q, want %q", got, want)
	}
	if got := id.String(); got != "TransactionID("+want+")" {
		t.Errorf("String() = %q", got)
	}
}

func TestCodeLetters(t *testing.T) {
	tests := []struct {
		code   TransactionCode
		letter string
	}{
		{CodeDeposit, "D"},
		{CodeWithdraw, "W"},
		{CodeInterest, "I"},
		{CodeAbortExcess, "X"},
	}
	for _, tt := range tests {
		if got := tt.code.Letter(); got != tt.letter {
			t.Errorf("%v.Letter() = %q, want %q", tt.code, got, tt.letter)
		}
		parsed, err := ParseTransactionCode(tt.letter)
		if err != nil {
			t.Fatalf("ParseTransactionCode(%q): %v", tt.letter, err)
		}
		if parsed != tt.code {
			t.Errorf("ParseTransactionCode(%q) = %v, want %v", tt.letter, parsed, tt.code)
		}
	}
}

func TestIssueRejectsUnknownCode(t *testing.T) {
	iss := NewIssuer()
	if _, err := iss.Issue(TransactionCode(9), 1, testInstant, nil); !errors.Is(err, ErrTransactionCode) {
		t.Fatalf("want ErrTransactionCode, got %v", err)
	}
	// A rejected mint must not burn a sequence number.
	if next := iss.NextSequence(); next != 0 {
		t.Errorf("NextSequence() = %d after rejected issue, want 0", next)
	}
}

func TestSequenceStrictlyIncreasing(t *testing.T) {
	iss := NewIssuer()
	var last int64 = -1
	for n := 0; n < 50; n++ {
		id, err := iss.Issue(TransactionCode(n%4), int64(100+n%3), testInstant, nil)
		if err != nil {
			t.Fatal(err)
		}
		if id.Sequence() <= last {
			t.Fatalf("sequence %d not greater than previous %d", id.Sequence(), last)
		}
		last = id.Sequence()
	}
	if last != 49 {
		t.Errorf("last sequence = %d, want 49", last)
	}
}

func TestIssuerResume(t *testing.T) {
	iss := NewIssuerAt(120)
	id, err := iss.Issue(CodeWithdraw, 7, testInstant, nil)
	if err != nil {
		t.Fatal(err)
	}
	if id.Sequence() != 120 {
		t.Errorf("Sequence() = %d, want 120", id.Sequence())
	}
	if iss.NextSequence() != 121 {
		t.Errorf("NextSequence() = %d, want 121", iss.NextSequence())
	}
}

func TestParseRoundTrip(t *testing.T) {
	iss := NewIssuer()
	orig, err := iss.Issue(CodeInterest, 4521, testInstant, nil)
	if err != nil {
		t.Fatal(err)
	}

	id, err := iss.Parse(orig.ConfirmationCode(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if id.Code() != CodeInterest {
		t.Errorf("Code() = %v, want interest", id.Code())
	}
	if id.AccountNumber() != 4521 {
		t.Errorf("AccountNumber() = %d, want 4521", id.AccountNumber())
	}
	if !id.UTCTime().Equal(testInstant) {
		t.Errorf("UTCTime() = %v, want %v", id.UTCTime(), testInstant)
	}
	// The reconstruction keeps the sequence embedded in the string, not a
	// freshly drawn one, but it still consumed a live counter value.
	if id.Sequence() != orig.Sequence() {
		t.Errorf("Sequence() = %d, want %d", id.Sequence(), orig.Sequence())
	}
	if next := iss.NextSequence(); next != 2 {
		t.Errorf("NextSequence() = %d after issue+parse, want 2", next)
	}
}

func TestParseRejectsMalformedInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unknown letter", "Z-100-20260825143045-3"},
		{"lowercase letter", "d-100-20260825143045-3"},
		{"too few fields", "D-100-20260825143045"},
		{"too many fields", "D-100-20260825143045-3-9"},
		{"empty string", ""},
		{"bad account", "D-abc-20260825143045-3"},
		{"bad timestamp", "D-100-2026x825143045-3"},
		{"short timestamp", "D-100-20260825-3"},
		{"bad sequence", "D-100-20260825143045-x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			iss := NewIssuer()
			if _, err := iss.Parse(tt.input, nil); !errors.Is(err, ErrTransactionCode) {
				t.Fatalf("Parse(%q) err=%v, want ErrTransactionCode", tt.input, err)
			}
			// Failed parses never reach the mint path.
			if next := iss.NextSequence(); next != 0 {
				t.Errorf("NextSequence() = %d after failed parse, want 0", next)
			}
		})
	}
}

func TestDisplayTime(t *testing.T) {
	iss := NewIssuer()

	utcID, err := iss.Issue(CodeDeposit, 1, testInstant, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := utcID.DisplayTime(), "2026-08-25 14:30:45(UTC)"; got != want {
		t.Errorf("DisplayTime() = %q, want %q", got, want)
	}

	ist, err := NewTimeZone("IST", 5, 30)
	if err != nil {
		t.Fatal(err)
	}
	istID, err := iss.Issue(CodeDeposit, 1, testInstant, ist)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := istID.DisplayTime(), "2026-08-25 20:00:45(IST)"; got != want {
		t.Errorf("DisplayTime() = %q, want %q", got, want)
	}

	mst, err := NewTimeZone("MST", -7, 0)
	if err != nil {
		t.Fatal(err)
	}
	mstID, err := iss.Issue(CodeDeposit, 1, testInstant, mst)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := mstID.DisplayTime(), "2026-08-25 07:30:45(MST)"; got != want {
		t.Errorf("DisplayTime() = %q, want %q", got, want)
	}
}

func TestUTCTimeISO(t *testing.T) {
	iss := NewIssuer()
	id, err := iss.Issue(CodeWithdraw, 1, testInstant, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := id.UTCTimeISO(), "2026-08-25T14:30:45"; got != want {
		t.Errorf("UTCTimeISO() = %q, want %q", got, want)
	}
}

func TestIssueDefaultsToNow(t *testing.T) {
	iss := NewIssuer()
	before := time.Now().UTC().Truncate(time.Second)
	id, err := iss.Issue(CodeDeposit, 1, time.Time{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	after := time.Now().UTC()
	if id.UTCTime().Before(before) || id.UTCTime().After(after) {
		t.Errorf("UTCTime() = %v outside [%v, %v]", id.UTCTime(), before, after)
	}
}
