package domain

import (
	"errors"
	"fmt"
	"strings"
)

type ExtensionSpec struct {
	Package string
	// ActivateModule is run as "python -m <ActivateModule> <ActivateArgs...>".
	ActivateModule string
	ActivateArgs   []string
}

type Manifest struct {
	MinimumRuntime Version
	Packages       []PackageSpec
	VerifyModules  []string
	Extension      ExtensionSpec
}

func (m Manifest) Validate() error {
	if len(m.Packages) == 0 {
		return errors.New("manifest has no packages")
	}

	seen := make(map[string]struct{}, len(m.Packages))
	for _, pkg := range m.Packages {
		if err := pkg.Validate(); err != nil {
			return err
		}
		key := strings.ToLower(pkg.Name)
		if _, ok := seen[key]; ok {
			return fmt.Errorf("duplicate package %q", pkg.Name)
		}
		seen[key] = struct{}{}
	}

	for _, module := range m.VerifyModules {
		if strings.TrimSpace(module) == "" || strings.ContainsAny(module, " ;\"'") {
			return fmt.Errorf("invalid verify module %q", module)
		}
	}

	if m.Extension.Package != "" && m.Extension.ActivateModule == "" {
		return fmt.Errorf("extension %q has no activation module", m.Extension.Package)
	}

	return nil
}
