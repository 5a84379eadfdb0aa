package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"

	"github.com/termapps/publisher/internal/messages"
)

// DefaultWorkdirName is the directory under the system temp dir that holds
// per-repository workspaces when --workdir is not given.
const DefaultWorkdirName = "publisher"

// ResolveWorkdir returns the absolute workspace root for flag, expanding a
// leading "~". An empty flag selects $TMPDIR/publisher.
func ResolveWorkdir(flag string) (string, error) {
	if flag == "" {
		return filepath.Join(os.TempDir(), DefaultWorkdirName), nil
	}
	expanded, err := homedir.Expand(flag)
	if err != nil {
		return "", fmt.Errorf(messages.ConfigWorkdirFmt, flag, err)
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf(messages.ConfigWorkdirFmt, flag, err)
	}
	return abs, nil
}
