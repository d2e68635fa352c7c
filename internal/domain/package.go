package domain

import (
	"fmt"
	"strings"
)

type PackageSpec struct {
	Name           string
	MinimumVersion string
}

// Requirement renders the package as a pip requirement string, e.g. "pandas>=1.5.0".
func (p PackageSpec) Requirement() string {
	if p.MinimumVersion == "" {
		return p.Name
	}
	return p.Name + ">=" + p.MinimumVersion
}

func (p PackageSpec) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("package name is required")
	}
	if strings.ContainsAny(p.Name, " <>=!~;") {
		return fmt.Errorf("invalid package name %q", p.Name)
	}

	return nil
}

type InstallOutcome struct {
	Package   PackageSpec
	Succeeded bool
}

func FailedOutcomes(outcomes []InstallOutcome) []InstallOutcome {
	failed := make([]InstallOutcome, 0)
	for _, outcome := range outcomes {
		if !outcome.Succeeded {
			failed = append(failed, outcome)
		}
	}
	return failed
}
