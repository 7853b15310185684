package scaffold

import (
	"errors"
	"testing"
)

func TestParseDuneLang(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"", "1.2", false},
		{"1.2", "1.2", false},
		{" 2.9 ", "2.9", false},
		{"3.11", "3.11", false},
		{"v3.0", "3.0", false},
		{"3", "3.0", false},
		{"0.9", "", true},
		{"4.0", "", true},
		{"3.1.2", "", true},
		{"3.1-beta", "", true},
		{"latest", "", true},
	}

	for _, tt := range tests {
		got, err := ParseDuneLang(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidDuneLang) {
				t.Errorf("ParseDuneLang(%q) error = %v, want ErrInvalidDuneLang", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDuneLang(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDuneLang(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
