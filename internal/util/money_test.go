package util

import (
	"testing"
)

func TestParseAmountCent_Valid(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"10.50", 1050},
		{"10.5", 1050},
		{"0.01", 1},
		{"0", 0},
		{"-12.34", -1234},
		{"99999999.99", 9999999999},
	}
	for _, tt := range tests {
		got, err := ParseAmountCent(tt.in)
		if err != nil {
			t.Errorf("ParseAmountCent(%q) error = %v, want nil", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseAmountCent(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseAmountCent_TooPrecise(t *testing.T) {
	for _, in := range []string{"1.234", "0.001", "-5.999"} {
		if _, err := ParseAmountCent(in); err == nil {
			t.Errorf("ParseAmountCent(%q) error = nil, want error", in)
		}
	}
}

func TestParseAmountCent_TooLarge(t *testing.T) {
	for _, in := range []string{"100000000", "100000000.00", "-100000000"} {
		if _, err := ParseAmountCent(in); err == nil {
			t.Errorf("ParseAmountCent(%q) error = nil, want error", in)
		}
	}
}

func TestParseAmountCent_NotANumber(t *testing.T) {
	for _, in := range []string{"", "abc", "10,50", "1.2.3"} {
		if _, err := ParseAmountCent(in); err == nil {
			t.Errorf("ParseAmountCent(%q) error = nil, want error", in)
		}
	}
}

func TestFormatCent(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0.00"},
		{1, "0.01"},
		{1050, "10.50"},
		{-1234, "-12.34"},
	}
	for _, tt := range tests {
		if got := FormatCent(tt.in); got != tt.want {
			t.Errorf("FormatCent(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
