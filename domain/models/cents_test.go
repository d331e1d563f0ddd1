package models

import (
	"errors"
	"testing"
)

func TestParseCents(t *testing.T) {
	tests := []struct {
		text string
		want Cents
	}{
		{"0", 0},
		{"2", 200},
		{"30", 3000},
		{".0", 0},
		{".02", 2},
		{".1", 10},
		{".2", 20},
		{"0.0", 0},
		{"0.00", 0},
		{"1.00", 100},
		{"1.02", 102},
		{"3.1", 310},
		{"30.2", 3020},
		{"40.02", 4002},
		{"40.12", 4012},
		{"40.20", 4020},
		{"50.99", 5099},
		{"007", 700},
		{"184467440737095516.15", MaxCents},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := ParseCents(tt.text)
			if err != nil {
				t.Fatalf("Expected %q to parse, but got error: %v", tt.text, err)
			}
			if got != tt.want {
				t.Errorf("Expected %q to parse to %d cents, but got %d", tt.text, tt.want, got)
			}
		})
	}
}

func TestParseCents_Invalid(t *testing.T) {
	tests := []string{
		"",
		"-2",
		"+2",
		"2a",
		"wef",
		"-0.0",
		"-1.0",
		"1.",
		".",
		"2.002",
		".002",
		"1.1.2",
		".1.2",
		".1a",
		"a.2",
		"..2",
		" 1",
		"1 ",
		// One past MaxCents no longer parses as a uint64 integer part.
		"18446744073709551616",
	}

	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			_, err := ParseCents(text)
			var invalidErr *InvalidAmountError
			if !errors.As(err, &invalidErr) {
				t.Fatalf("Expected %q to fail as an invalid amount, but got %v", text, err)
			}
			if invalidErr.Text != text {
				t.Errorf("Expected error to carry text %q, but got %q", text, invalidErr.Text)
			}
		})
	}
}

func TestParseCents_Overflow(t *testing.T) {
	tests := []string{
		// MaxCents in minor units cannot be scaled by 100.
		"18446744073709551615",
		"18446744073709551615.1",
		"18446744073709551614.9",
		// Scaling fits but the final addition does not.
		"184467440737095516.16",
		"184467440737095517.0",
	}

	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			_, err := ParseCents(text)
			var overflowErr *AmountOverflowError
			if !errors.As(err, &overflowErr) {
				t.Fatalf("Expected %q to overflow, but got %v", text, err)
			}
			if overflowErr.Text != text {
				t.Errorf("Expected error to carry text %q, but got %q", text, overflowErr.Text)
			}
		})
	}
}

func TestCentsString(t *testing.T) {
	tests := []struct {
		cents Cents
		want  string
	}{
		{0, "0.00"},
		{9, "0.09"},
		{10, "0.10"},
		{12, "0.12"},
		{99, "0.99"},
		{100, "1.00"},
		{109, "1.09"},
		{199, "1.99"},
		{4023, "40.23"},
		{5000, "50.00"},
		{MaxCents, "184467440737095516.15"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.cents.String(); got != tt.want {
				t.Errorf("Expected %d cents to format as %q, but got %q", tt.cents, tt.want, got)
			}
		})
	}
}

func TestCentsString_RoundTrip(t *testing.T) {
	values := []Cents{0, 1, 9, 10, 99, 100, 101, 2020, 4023, MaxCents - 1, MaxCents}

	for _, value := range values {
		got, err := ParseCents(value.String())
		if err != nil {
			t.Fatalf("Expected %q to parse, but got error: %v", value.String(), err)
		}
		if got != value {
			t.Errorf("Expected %q to round-trip to %d cents, but got %d", value.String(), value, got)
		}
	}
}

func TestCentsAdd(t *testing.T) {
	if sum, ok := Cents(2000).Add(Cents(2000)); !ok || sum != 4000 {
		t.Errorf("Expected 2000+2000 to be 4000, but got %d (ok=%v)", sum, ok)
	}
	if sum, ok := Cents(0).Add(MaxCents); !ok || sum != MaxCents {
		t.Errorf("Expected 0+max to be max, but got %d (ok=%v)", sum, ok)
	}
	if _, ok := MaxCents.Add(1); ok {
		t.Error("Expected max+1 to overflow, but it succeeded")
	}
	if _, ok := (MaxCents - 1).Add(200); ok {
		t.Error("Expected max-1+200 to overflow, but it succeeded")
	}
}

func TestCentsSub(t *testing.T) {
	if diff, ok := Cents(4000).Sub(Cents(2000)); !ok || diff != 2000 {
		t.Errorf("Expected 4000-2000 to be 2000, but got %d (ok=%v)", diff, ok)
	}
	if diff, ok := MaxCents.Sub(MaxCents); !ok || diff != 0 {
		t.Errorf("Expected max-max to be 0, but got %d (ok=%v)", diff, ok)
	}
	if _, ok := Cents(2).Sub(10); ok {
		t.Error("Expected 2-10 to underflow, but it succeeded")
	}
}
