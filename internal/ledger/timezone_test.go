package ledger

import (
	"errors"
	"testing"
	"time"
)

func TestNewTimeZoneValidation(t *testing.T) {
	tests := []struct {
		name    string
		tzName  string
		hours   int
		minutes int
		wantErr bool
	}{
		{"plain offset", "MST", -7, 0, false},
		{"half hour offset", "IST", 5, 30, false},
		{"negative minutes", "NPL", -5, -45, false},
		{"boundary hours", "MAX", 23, 59, false},
		{"empty name", "", 1, 0, true},
		{"blank name", "   ", 1, 0, true},
		{"hours too high", "BAD", 24, 0, true},
		{"hours too low", "BAD", -24, 0, true},
		{"minutes too high", "BAD", 0, 60, true},
		{"minutes too low", "BAD", 0, -60, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tz, err := NewTimeZone(tt.tzName, tt.hours, tt.minutes)
			if tt.wantErr {
				if !errors.Is(err, ErrValidation) {
					t.Fatalf("NewTimeZone(%q, %d, %d) err=%v, want ErrValidation", tt.tzName, tt.hours, tt.minutes, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewTimeZone(%q, %d, %d) unexpected err: %v", tt.tzName, tt.hours, tt.minutes, err)
			}
			if tz.Hours() != tt.hours || tz.Minutes() != tt.minutes {
				t.Errorf("got hours=%d minutes=%d, want %d/%d", tz.Hours(), tz.Minutes(), tt.hours, tt.minutes)
			}
		})
	}
}

func TestTimeZoneOffsetDuration(t *testing.T) {
	tests := []struct {
		name    string
		hours   int
		minutes int
		want    time.Duration
	}{
		{"positive", 5, 30, 5*time.Hour + 30*time.Minute},
		{"negative", -7, 0, -7 * time.Hour},
		{"mixed negative", -5, -45, -(5*time.Hour + 45*time.Minute)},
		{"zero", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tz, err := NewTimeZone("X", tt.hours, tt.minutes)
			if err != nil {
				t.Fatal(err)
			}
			if got := tz.Offset(); got != tt.want {
				t.Errorf("Offset() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTimeZoneString(t *testing.T) {
	tz, err := NewTimeZone("IST", 5, 30)
	if err != nil {
		t.Fatal(err)
	}
	want := "TimeZone(name=IST, hours=5, minutes=30)"
	if got := tz.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
