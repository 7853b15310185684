package config

import (
	"path/filepath"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		wantValid bool
		wantKW    string
	}{
		{"empty", "", true, ""},
		{"full", "dune_lang: \"3.11\"\nquiet: true\n", true, ""},
		{"quiet as string", "quiet: \"false\"\n", true, ""},
		{"bad pattern", "dune_lang: three\n", false, "pattern"},
		{"unknown key", "editor: vim\n", false, "additionalProperties"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Validate([]byte(tt.yaml))
			if err != nil {
				t.Fatalf("Validate() error: %v", err)
			}
			if result.Valid != tt.wantValid {
				t.Fatalf("Valid = %v, want %v (issues: %v)", result.Valid, tt.wantValid, result.Issues)
			}
			if tt.wantKW == "" {
				return
			}
			found := false
			for _, issue := range result.Issues {
				if issue.Keyword == tt.wantKW {
					found = true
				}
				if issue.Message == "" {
					t.Errorf("issue %+v has empty message", issue)
				}
			}
			if !found {
				t.Errorf("expected an issue with keyword %q, got %v", tt.wantKW, result.Issues)
			}
		})
	}
}

func TestValidateMalformedYAML(t *testing.T) {
	if _, err := Validate([]byte("dune_lang: [unterminated")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestValidateFileMissing(t *testing.T) {
	result, err := ValidateFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("ValidateFile() error: %v", err)
	}
	if !result.Valid {
		t.Error("a missing config file should be valid")
	}
}

func TestValidationIssueString(t *testing.T) {
	i := ValidationIssue{Path: "/dune_lang", Message: "does not match pattern"}
	if got := i.String(); got != "/dune_lang: does not match pattern" {
		t.Errorf("String() = %q", got)
	}
	i.Path = ""
	if got := i.String(); got != "does not match pattern" {
		t.Errorf("String() = %q", got)
	}
}
