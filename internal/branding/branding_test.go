package branding

import "testing"

func TestEmbeddedValues(t *testing.T) {
	if got := CLIName(); got != "daykit" {
		t.Errorf("CLIName() = %q, want %q", got, "daykit")
	}
	if got := HomeDir(); got != ".daykit" {
		t.Errorf("HomeDir() = %q, want %q", got, ".daykit")
	}
	if Description() == "" {
		t.Error("Description() should not be empty")
	}
}

func TestEnvVar(t *testing.T) {
	tests := []struct {
		suffix string
		want   string
	}{
		{"home", "DAYKIT_HOME"},
		{"DUNE_LANG", "DAYKIT_DUNE_LANG"},
	}
	for _, tt := range tests {
		if got := EnvVar(tt.suffix); got != tt.want {
			t.Errorf("EnvVar(%q) = %q, want %q", tt.suffix, got, tt.want)
		}
	}
}
