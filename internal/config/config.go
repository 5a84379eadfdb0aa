// Package config loads publisher.toml and the build metadata it defaults from.
package config

// DefaultConfigFile is the configuration file read from the working directory.
const DefaultConfigFile = "publisher.toml"

// AppConfig is the publishing configuration shared by every repository.
type AppConfig struct {
	Name        string   `toml:"name" mapstructure:"name"`
	Description string   `toml:"description" mapstructure:"description"`
	Homepage    string   `toml:"homepage" mapstructure:"homepage"`
	License     string   `toml:"license" mapstructure:"license"`
	Repository  string   `toml:"repository" mapstructure:"repository"`
	Exclude     []string `toml:"exclude" mapstructure:"exclude"`

	Aur      *AurConfig      `toml:"aur" mapstructure:"aur"`
	AurBin   *AurBinConfig   `toml:"aur_bin" mapstructure:"aur_bin"`
	Homebrew *HomebrewConfig `toml:"homebrew" mapstructure:"homebrew"`
	Scoop    *ScoopConfig    `toml:"scoop" mapstructure:"scoop"`
	Nix      *NixConfig      `toml:"nix" mapstructure:"nix"`
	Debian   *DebianConfig   `toml:"debian" mapstructure:"debian"`
	NPM      *NPMConfig      `toml:"npm" mapstructure:"npm"`
}

// AurConfig configures the AUR source package.
type AurConfig struct {
	Name      *string  `toml:"name" mapstructure:"name"`
	Conflicts []string `toml:"conflicts" mapstructure:"conflicts"`
}

// AurBinConfig configures the AUR binary package.
type AurBinConfig struct {
	Name      *string  `toml:"name" mapstructure:"name"`
	Conflicts []string `toml:"conflicts" mapstructure:"conflicts"`
}

// HomebrewConfig configures the Homebrew tap.
type HomebrewConfig struct {
	Name       *string `toml:"name" mapstructure:"name"`
	Repository string  `toml:"repository" mapstructure:"repository"`
}

// ScoopConfig configures the Scoop bucket.
type ScoopConfig struct {
	Name       *string `toml:"name" mapstructure:"name"`
	Repository string  `toml:"repository" mapstructure:"repository"`
}

// NixConfig configures the Nix flake repository. Path is the flake file
// inside the repository, with %n expanded to the package name.
type NixConfig struct {
	Name       *string `toml:"name" mapstructure:"name"`
	Repository *string `toml:"repository" mapstructure:"repository"`
	Path       *string `toml:"path" mapstructure:"path"`
	Lockfile   *bool   `toml:"lockfile" mapstructure:"lockfile"`
}

// DebianConfig configures the Debian package.
type DebianConfig struct {
	Name *string `toml:"name" mapstructure:"name"`
}

// NPMConfig configures the npm packages.
type NPMConfig struct {
	Name *string `toml:"name" mapstructure:"name"`
}

// RepositoryName returns the repository part of owner/repo.
func (c *AppConfig) RepositoryName() string {
	_, name, found := cutRepository(c.Repository)
	if !found {
		return c.Repository
	}
	return name
}
