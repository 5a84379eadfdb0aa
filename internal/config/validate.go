package config

import (
	"fmt"
	"strings"

	"github.com/termapps/publisher/internal/messages"
)

// Validate ensures the config is complete and consistent.
func (c *AppConfig) Validate(path string) error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf(messages.ConfigNameRequiredFmt, path)
	}
	if strings.TrimSpace(c.Repository) == "" {
		return fmt.Errorf(messages.ConfigRepositoryRequiredFmt, path)
	}
	if !isRepository(c.Repository) {
		return fmt.Errorf(messages.ConfigRepositoryInvalidFmt, path, c.Repository)
	}

	if c.Homebrew != nil {
		if c.Homebrew.Repository == "" {
			return fmt.Errorf(messages.ConfigHomebrewRepoFmt, path)
		}
		if !isRepository(c.Homebrew.Repository) {
			return fmt.Errorf(messages.ConfigRepositoryInvalidFmt, path, c.Homebrew.Repository)
		}
	}
	if c.Scoop != nil {
		if c.Scoop.Repository == "" {
			return fmt.Errorf(messages.ConfigScoopRepoFmt, path)
		}
		if !isRepository(c.Scoop.Repository) {
			return fmt.Errorf(messages.ConfigRepositoryInvalidFmt, path, c.Scoop.Repository)
		}
	}
	if c.Nix != nil && c.Nix.Repository != nil && !isRepository(*c.Nix.Repository) {
		return fmt.Errorf(messages.ConfigRepositoryInvalidFmt, path, *c.Nix.Repository)
	}
	return nil
}

func isRepository(value string) bool {
	_, _, ok := cutRepository(value)
	return ok
}

// cutRepository splits owner/repo. ok is false unless both parts are non-empty
// and there is exactly one separator.
func cutRepository(value string) (owner string, name string, ok bool) {
	owner, name, found := strings.Cut(value, "/")
	if !found || owner == "" || name == "" || strings.Contains(name, "/") {
		return "", "", false
	}
	return owner, name, true
}
