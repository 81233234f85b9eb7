package utils

import "testing"

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{"integer", "150", 150, false},
		{"one decimal", "150.5", 150.5, false},
		{"two decimals", "150.50", 150.5, false},
		{"zero", "0", 0, false},
		{"whitespace", "  42.25  ", 42.25, false},
		{"empty", "", 0, true},
		{"negative", "-5", 0, true},
		{"not a number", "abc", 0, true},
		{"double dot", "1.2.3", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseAmount(%q) = %v, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAmount(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseAmount(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatAmount(t *testing.T) {
	if got := FormatAmount(1234.5); got != "1234.50" {
		t.Errorf("FormatAmount(1234.5) = %q, want 1234.50", got)
	}
	if got := FormatAmount(0); got != "0.00" {
		t.Errorf("FormatAmount(0) = %q, want 0.00", got)
	}
}
