package domain

import (
	"bytes"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Version
	}{
		{name: "full", raw: "3.11.4", want: Version{Major: 3, Minor: 11, Patch: 4}},
		{name: "major minor only", raw: "3.8", want: Version{Major: 3, Minor: 8}},
		{name: "python banner", raw: "Python 3.12.1\n", want: Version{Major: 3, Minor: 12, Patch: 1}},
		{name: "release candidate suffix", raw: "3.13.0rc1", want: Version{Major: 3, Minor: 13}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseVersion(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseVersionRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"", "   ", "python", "x.8"} {
		_, err := ParseVersion(raw)
		assert.Error(t, err, raw)
	}
}

func TestVersionLess(t *testing.T) {
	minimum := Version{Major: 3, Minor: 8}

	assert.True(t, Version{Major: 3, Minor: 7, Patch: 17}.Less(minimum))
	assert.True(t, Version{Major: 2, Minor: 99}.Less(minimum))
	assert.False(t, Version{Major: 3, Minor: 8}.Less(minimum))
	assert.False(t, Version{Major: 3, Minor: 12, Patch: 1}.Less(minimum))
	assert.False(t, Version{Major: 4}.Less(minimum))
	assert.Equal(t, "3.8", minimum.MajorMinor())
	assert.Equal(t, "3.8.0", minimum.String())
}

func TestPackageSpecRequirement(t *testing.T) {
	assert.Equal(t, "pandas>=1.5.0", PackageSpec{Name: "pandas", MinimumVersion: "1.5.0"}.Requirement())
	assert.Equal(t, "requests", PackageSpec{Name: "requests"}.Requirement())
}

func TestManifestValidate(t *testing.T) {
	valid := Manifest{
		MinimumRuntime: Version{Major: 3, Minor: 8},
		Packages:       []PackageSpec{{Name: "pandas", MinimumVersion: "1.5.0"}},
		VerifyModules:  []string{"pandas"},
	}
	require.NoError(t, valid.Validate())

	duplicate := valid
	duplicate.Packages = append([]PackageSpec{}, valid.Packages...)
	duplicate.Packages = append(duplicate.Packages, PackageSpec{Name: "Pandas"})
	assert.ErrorContains(t, duplicate.Validate(), "duplicate package")

	injected := valid
	injected.VerifyModules = []string{"os; import shutil"}
	assert.ErrorContains(t, injected.Validate(), "invalid verify module")

	empty := Manifest{}
	assert.ErrorContains(t, empty.Validate(), "no packages")
}

func TestIsAffirmative(t *testing.T) {
	for _, answer := range []string{"y", "Y", "yes", "YES", " Yes \n"} {
		assert.True(t, IsAffirmative(answer), answer)
	}
	for _, answer := range []string{"", "n", "no", "yep", "sure", "\n"} {
		assert.False(t, IsAffirmative(answer), answer)
	}
}

func TestConfigEntryStringMasksSensitiveValues(t *testing.T) {
	entry := ConfigEntry{Key: APIKeyName, Value: "sk-secret", Sensitive: true}
	assert.Equal(t, "OPENAI_API_KEY=********", entry.String())
	assert.NotContains(t, entry.String(), "sk-secret")

	plain := ConfigEntry{Key: "LOG_LEVEL", Value: "INFO"}
	assert.Equal(t, "LOG_LEVEL=INFO", plain.String())
}

func TestNewConfigFileUsesPlaceholderForEmptyKey(t *testing.T) {
	entries := NewConfigFile("").Entries()
	require.NotEmpty(t, entries)
	assert.Equal(t, APIKeyName, entries[0].Key)
	assert.Equal(t, APIKeyPlaceholder, entries[0].Value)
	assert.True(t, entries[0].Sensitive)
}

func TestConfigFileRenderIsDeterministic(t *testing.T) {
	first := NewConfigFile("sk-test123").Render()
	second := NewConfigFile("sk-test123").Render()
	assert.True(t, bytes.Equal(first, second))
	assert.Contains(t, string(first), "OPENAI_API_KEY=sk-test123\n")
	assert.Contains(t, string(first), "# Cache Configuration (Optional)\n")
}

func TestConfigFileRenderParsesAsDotenv(t *testing.T) {
	file := NewConfigFile("sk-test123")

	v := viper.New()
	v.SetConfigType("dotenv")
	require.NoError(t, v.ReadConfig(bytes.NewReader(file.Render())))

	entries := file.Entries()
	assert.Len(t, entries, 17)
	for _, entry := range entries {
		assert.Equal(t, entry.Value, v.GetString(entry.Key), entry.Key)
	}
	assert.InDelta(t, 0.7, v.GetFloat64("SENTIMENT_CONFIDENCE_THRESHOLD"), 1e-9)
	assert.True(t, v.GetBool("CACHE_ENABLED"))
	assert.Equal(t, 300, v.GetInt("CACHE_TTL_SECONDS"))
}

func TestFailedOutcomes(t *testing.T) {
	outcomes := []InstallOutcome{
		{Package: PackageSpec{Name: "pandas"}, Succeeded: true},
		{Package: PackageSpec{Name: "seaborn"}, Succeeded: false},
	}

	failed := FailedOutcomes(outcomes)
	require.Len(t, failed, 1)
	assert.Equal(t, "seaborn", failed[0].Package.Name)
	assert.Empty(t, FailedOutcomes(nil))
}
