// Package version validates release versions passed to publish.
package version

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/termapps/publisher/internal/messages"
)

// Normalize validates raw as a strict semantic version and returns it without
// a leading "v". Release assets are tagged v<version>, so the prefix is added
// back when URLs are built.
func Normalize(raw string) (string, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(raw), "v")
	parsed, err := semver.StrictNewVersion(trimmed)
	if err != nil {
		return "", fmt.Errorf(messages.PublishVersionFmt, raw, err)
	}
	return parsed.String(), nil
}
