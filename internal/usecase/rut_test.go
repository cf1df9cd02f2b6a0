package usecase

import "testing"

func TestComputeRutCheckDigit(t *testing.T) {
	tests := []struct {
		run  string
		want string
	}{
		{"12345678", "5"},
		{"1", "9"},
		{"6", "K"},
		{"31", "0"},
		{"55555555", "5"},
	}
	for _, tt := range tests {
		if got := ComputeRutCheckDigit(tt.run); got != tt.want {
			t.Errorf("ComputeRutCheckDigit(%q) = %q, want %q", tt.run, got, tt.want)
		}
	}
}

func TestValidateRut(t *testing.T) {
	tests := []struct {
		rut   string
		valid bool
	}{
		{"12345678-5", true},
		{"1-9", true},
		{"6-K", true},
		{"6-k", true},
		{"31-0", true},
		{"12345678-9", false},
		{"6-1", false},
		{"", false},
		{"12345678", false},
		{"123456789-5", false},
		{"12.345.678-5", false},
		{"abc-5", false},
		{"-5", false},
	}
	for _, tt := range tests {
		if got := ValidateRut(tt.rut); got != tt.valid {
			t.Errorf("ValidateRut(%q) = %v, want %v", tt.rut, got, tt.valid)
		}
	}
}
