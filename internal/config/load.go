package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/termapps/publisher/internal/messages"
)

// ErrConfigValidation is a sentinel that wraps config validation failures
// (as opposed to TOML syntax, filesystem, or other loading errors).
// Callers can use errors.Is(err, ErrConfigValidation) to distinguish
// validation problems from other Load failure modes.
var ErrConfigValidation = errors.New("config validation failed")

// EnvPrefix namespaces environment overrides (PUBLISHER_DESCRIPTION, ...).
const EnvPrefix = "PUBLISHER"

// envKeys are bound explicitly so overrides apply even when the file omits them.
var envKeys = []string{"name", "description", "homepage", "license", "repository", "exclude"}

// Load reads the config file at path, layering Cargo.toml defaults found next
// to it underneath and PUBLISHER_* environment overrides on top.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigMissingFileFmt, path, err)
	}
	defaults, err := LoadCargoDefaults(filepath.Join(filepath.Dir(path), CargoFile))
	if err != nil {
		return nil, err
	}
	return ParseConfig(data, path, defaults)
}

// ParseConfig parses and validates config TOML data from a source identifier.
// defaults seeds top-level keys the file does not set.
func ParseConfig(data []byte, source string, defaults map[string]string) (*AppConfig, error) {
	var syntax map[string]any
	if err := toml.Unmarshal(data, &syntax); err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidConfigFmt, source, err)
	}
	if err := decodeStrict(data); err != nil {
		return nil, fmt.Errorf("%w: "+messages.ConfigUnrecognizedKeyFmt+" "+messages.ConfigValidationGuidance, ErrConfigValidation, source, err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range envKeys {
		_ = v.BindEnv(key)
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidConfigFmt, source, err)
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidConfigFmt, source, err)
	}
	if err := cfg.Validate(source); err != nil {
		return nil, fmt.Errorf("%w: %w "+messages.ConfigValidationGuidance, ErrConfigValidation, err)
	}
	return &cfg, nil
}

// decodeStrict re-decodes the TOML data with strict unknown-field rejection.
// Viper silently ignores keys that do not map onto AppConfig.
func decodeStrict(data []byte) error {
	var cfg AppConfig
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	return decoder.Decode(&cfg)
}

// CargoFile is the Rust build manifest used for metadata defaults.
const CargoFile = "Cargo.toml"

var cargoKeys = []string{"name", "description", "homepage", "license", "repository"}

// LoadCargoDefaults reads [package] metadata from the Cargo manifest at path.
// A missing manifest yields no defaults. Only plain string values are used;
// workspace-inherited fields are skipped.
func LoadCargoDefaults(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidCargoFmt, path, err)
	}

	var manifest struct {
		Package map[string]any `toml:"package"`
	}
	if err := toml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidCargoFmt, path, err)
	}

	defaults := make(map[string]string)
	for _, key := range cargoKeys {
		if value, ok := manifest.Package[key].(string); ok && value != "" {
			defaults[key] = value
		}
	}
	if repo, ok := defaults["repository"]; ok {
		defaults["repository"] = GitHubRepository(repo)
	}
	return defaults, nil
}

// GitHubRepository reduces a GitHub URL to owner/repo. Other values are
// returned unchanged.
func GitHubRepository(url string) string {
	trimmed := strings.TrimSpace(url)
	for _, prefix := range []string{"https://github.com/", "http://github.com/", "git@github.com:", "ssh://git@github.com/"} {
		if rest, ok := strings.CutPrefix(trimmed, prefix); ok {
			rest = strings.TrimSuffix(rest, "/")
			return strings.TrimSuffix(rest, ".git")
		}
	}
	return trimmed
}
