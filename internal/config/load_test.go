package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const fullConfig = `
name = "foo"
description = "Foo does things"
homepage = "https://foo.dev"
license = "MIT"
repository = "termapps/foo"
exclude = ["debian"]

[aur]
conflicts = ["foo-git"]

[aur_bin]
name = "foo-binary"

[homebrew]
repository = "termapps/homebrew-tap"

[scoop]
name = "foo-cli"
repository = "termapps/scoop-bucket"

[nix]
path = "pkgs/%n/flake.nix"
lockfile = false

[npm]
name = "@termapps/foo"
`

func writeFile(t *testing.T, dir string, name string, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadFullConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, DefaultConfigFile, fullConfig)

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, "foo", cfg.Name)
	require.Equal(t, "Foo does things", cfg.Description)
	require.Equal(t, "https://foo.dev", cfg.Homepage)
	require.Equal(t, "MIT", cfg.License)
	require.Equal(t, "termapps/foo", cfg.Repository)
	require.Equal(t, "foo", cfg.RepositoryName())
	require.Equal(t, []string{"debian"}, cfg.Exclude)

	require.NotNil(t, cfg.Aur)
	require.Nil(t, cfg.Aur.Name)
	require.Equal(t, []string{"foo-git"}, cfg.Aur.Conflicts)
	require.NotNil(t, cfg.AurBin)
	require.Equal(t, "foo-binary", *cfg.AurBin.Name)
	require.Equal(t, "termapps/homebrew-tap", cfg.Homebrew.Repository)
	require.Equal(t, "foo-cli", *cfg.Scoop.Name)
	require.Equal(t, "pkgs/%n/flake.nix", *cfg.Nix.Path)
	require.False(t, *cfg.Nix.Lockfile)
	require.Nil(t, cfg.Nix.Repository)
	require.Nil(t, cfg.Debian)
	require.Equal(t, "@termapps/foo", *cfg.NPM.Name)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), DefaultConfigFile))
	require.Error(t, err)
	require.Contains(t, err.Error(), "missing config file")
	require.False(t, errors.Is(err, ErrConfigValidation))
}

func TestParseConfigSyntaxError(t *testing.T) {
	_, err := ParseConfig([]byte("name = "), "publisher.toml", nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid config publisher.toml")
	require.False(t, errors.Is(err, ErrConfigValidation))
}

func TestParseConfigRejectsUnknownKeys(t *testing.T) {
	data := []byte(`
name = "foo"
repository = "termapps/foo"

[homebrew]
repository = "termapps/homebrew-tap"
tap = "oops"
`)
	_, err := ParseConfig(data, "publisher.toml", nil)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrConfigValidation))
	require.Contains(t, err.Error(), "unrecognized keys")
}

func TestLoadUsesCargoDefaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, CargoFile, `
[package]
name = "foo"
version = "0.1.0"
description = "From cargo"
license = "Apache-2.0"
repository = "https://github.com/termapps/foo.git"
edition.workspace = true
`)
	path := writeFile(t, dir, DefaultConfigFile, `
description = "From publisher.toml"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "foo", cfg.Name)
	require.Equal(t, "From publisher.toml", cfg.Description)
	require.Equal(t, "Apache-2.0", cfg.License)
	require.Equal(t, "termapps/foo", cfg.Repository)
	require.Empty(t, cfg.Homepage)
}

func TestLoadInvalidCargo(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, CargoFile, "[package\n")
	path := writeFile(t, dir, DefaultConfigFile, fullConfig)

	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid build metadata")
}

func TestLoadEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, DefaultConfigFile, fullConfig)
	t.Setenv("PUBLISHER_DESCRIPTION", "From env")
	t.Setenv("PUBLISHER_HOMEBREW_REPOSITORY", "termapps/homebrew-other")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "From env", cfg.Description)
	require.Equal(t, "termapps/homebrew-other", cfg.Homebrew.Repository)
}

func TestLoadEnvProvidesMissingName(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, DefaultConfigFile, `repository = "termapps/foo"`)
	t.Setenv("PUBLISHER_NAME", "foo")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "foo", cfg.Name)
}

func TestGitHubRepository(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "https://github.com/termapps/foo", want: "termapps/foo"},
		{input: "https://github.com/termapps/foo/", want: "termapps/foo"},
		{input: "https://github.com/termapps/foo.git", want: "termapps/foo"},
		{input: "git@github.com:termapps/foo.git", want: "termapps/foo"},
		{input: "ssh://git@github.com/termapps/foo", want: "termapps/foo"},
		{input: "https://gitlab.com/termapps/foo", want: "https://gitlab.com/termapps/foo"},
		{input: "termapps/foo", want: "termapps/foo"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, GitHubRepository(tt.input), tt.input)
	}
}
