package token

import "testing"

func TestIsNumber(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"0", true},
		{"42", true},
		{"-3", true},
		{"+3", true},
		{"1.5", true},
		{"-0.25", true},
		{".5", true},
		{"5.", true},
		{"1e10", true},
		{"1.5E-3", true},
		{"-2e+7", true},
		{"", false},
		{"-", false},
		{".", false},
		{"+.", false},
		{"1e", false},
		{"1e+", false},
		{"1,5", false},
		{"1.2.3", false},
		{"inf", false},
		{"nan", false},
		{"NaN", false},
		{"0x10", false},
		{"abc", false},
		{"12abc", false},
		{"1e308", true},
		{"-1.7e308", true},
		{"1e400", false},
		{"-1e400", false},
		{"1e-400", true},
	}
	for _, tt := range tests {
		if got := IsNumber(tt.in); got != tt.want {
			t.Errorf("IsNumber(%q) = %t, want %t", tt.in, got, tt.want)
		}
	}
}

func TestIsInteger(t *testing.T) {
	for _, s := range []string{"0", "-7", "+12"} {
		if !IsInteger(s) {
			t.Errorf("IsInteger(%q) = false", s)
		}
	}
	for _, s := range []string{"", "-", "1.0", "1e3", "x"} {
		if IsInteger(s) {
			t.Errorf("IsInteger(%q) = true", s)
		}
	}
}
