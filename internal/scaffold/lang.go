package scaffold

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// DefaultDuneLang is the dune language version written to dune-project.
const DefaultDuneLang = "1.2"

// ErrInvalidDuneLang is returned for dune language versions outside the
// supported range or not of the form MAJOR.MINOR.
var ErrInvalidDuneLang = errors.New("invalid dune language version")

var supportedDuneLang = mustConstraint(">= 1.0, < 4.0")

func mustConstraint(c string) *semver.Constraints {
	sc, err := semver.NewConstraint(c)
	if err != nil {
		panic(err)
	}
	return sc
}

// ParseDuneLang validates a dune language version and returns it in its
// canonical MAJOR.MINOR form. An empty string yields DefaultDuneLang.
func ParseDuneLang(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultDuneLang, nil
	}
	// dune only knows MAJOR.MINOR; a patch or prerelease is a typo.
	if strings.Count(s, ".") > 1 || strings.ContainsAny(s, "-+") {
		return "", fmt.Errorf("%w: %q must be MAJOR.MINOR", ErrInvalidDuneLang, s)
	}
	v, err := semver.NewVersion(strings.TrimPrefix(s, "v"))
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidDuneLang, s, err)
	}
	if !supportedDuneLang.Check(v) {
		return "", fmt.Errorf("%w: %q is outside %s", ErrInvalidDuneLang, s, supportedDuneLang)
	}
	return fmt.Sprintf("%d.%d", v.Major(), v.Minor()), nil
}
