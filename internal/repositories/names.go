package repositories

import (
	"github.com/termapps/publisher/internal/config"
	"github.com/termapps/publisher/internal/manifest"
)

func nameOr(override *string, fallback string) string {
	if override != nil && *override != "" {
		return *override
	}
	return fallback
}

// AurName is the AUR source package name.
func AurName(cfg *config.AppConfig) string {
	if cfg.Aur == nil {
		return cfg.Name
	}
	return nameOr(cfg.Aur.Name, cfg.Name)
}

// AurBinName is the AUR binary package name, "<name>-bin" by default.
func AurBinName(cfg *config.AppConfig) string {
	fallback := cfg.Name + "-bin"
	if cfg.AurBin == nil {
		return fallback
	}
	return nameOr(cfg.AurBin.Name, fallback)
}

// HomebrewName is the formula name.
func HomebrewName(cfg *config.AppConfig) string {
	if cfg.Homebrew == nil {
		return cfg.Name
	}
	return nameOr(cfg.Homebrew.Name, cfg.Name)
}

// ScoopName is the Scoop app name.
func ScoopName(cfg *config.AppConfig) string {
	if cfg.Scoop == nil {
		return cfg.Name
	}
	return nameOr(cfg.Scoop.Name, cfg.Name)
}

// NixName is the flake package name.
func NixName(cfg *config.AppConfig) string {
	if cfg.Nix == nil {
		return cfg.Name
	}
	return nameOr(cfg.Nix.Name, cfg.Name)
}

// NixRepository is the repository holding the flake, the tool's own
// repository by default.
func NixRepository(cfg *config.AppConfig) string {
	if cfg.Nix == nil {
		return cfg.Repository
	}
	return nameOr(cfg.Nix.Repository, cfg.Repository)
}

// NixPath is the flake location inside NixRepository.
func NixPath(cfg *config.AppConfig) string {
	path := ""
	if cfg.Nix != nil && cfg.Nix.Path != nil {
		path = *cfg.Nix.Path
	}
	return manifest.FlakePath(path, NixName(cfg))
}

// NixLockfile reports whether flake.lock is regenerated, true by default.
func NixLockfile(cfg *config.AppConfig) bool {
	if cfg.Nix == nil || cfg.Nix.Lockfile == nil {
		return true
	}
	return *cfg.Nix.Lockfile
}

// DebianName is the Debian package name.
func DebianName(cfg *config.AppConfig) string {
	if cfg.Debian == nil {
		return cfg.Name
	}
	return nameOr(cfg.Debian.Name, cfg.Name)
}

// NPMName is the main npm package name.
func NPMName(cfg *config.AppConfig) string {
	if cfg.NPM == nil {
		return cfg.Name
	}
	return nameOr(cfg.NPM.Name, cfg.Name)
}
