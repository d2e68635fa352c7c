package toml

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/bnema/sentiment-setup/internal/domain"
	toml "github.com/pelletier/go-toml/v2"
)

//go:embed manifest.toml
var defaultManifest []byte

// Default returns the manifest compiled into the binary.
func Default() (domain.Manifest, error) {
	return Decode(defaultManifest)
}

func Decode(data []byte) (domain.Manifest, error) {
	var file fileSchema
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&file); err != nil {
		return domain.Manifest{}, fmt.Errorf("decode manifest: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return domain.Manifest{}, err
	}
	file.applyDefaults()

	manifest, err := fromSchema(file)
	if err != nil {
		return domain.Manifest{}, err
	}
	if err := manifest.Validate(); err != nil {
		return domain.Manifest{}, fmt.Errorf("validate manifest: %w", err)
	}

	return manifest, nil
}

func fromSchema(file fileSchema) (domain.Manifest, error) {
	minimum, err := domain.ParseVersion(file.MinimumRuntime)
	if err != nil {
		return domain.Manifest{}, fmt.Errorf("manifest minimum_runtime: %w", err)
	}

	packages := make([]domain.PackageSpec, 0, len(file.Packages))
	for _, pkg := range file.Packages {
		packages = append(packages, domain.PackageSpec{
			Name:           pkg.Name,
			MinimumVersion: pkg.MinimumVersion,
		})
	}

	return domain.Manifest{
		MinimumRuntime: minimum,
		Packages:       packages,
		VerifyModules:  append([]string(nil), file.Verify.Modules...),
		Extension: domain.ExtensionSpec{
			Package:        file.Extension.Package,
			ActivateModule: file.Extension.ActivateModule,
			ActivateArgs:   append([]string(nil), file.Extension.ActivateArgs...),
		},
	}, nil
}
