package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/require"
)

func TestResolveWorkdirDefault(t *testing.T) {
	dir, err := ResolveWorkdir("")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(os.TempDir(), DefaultWorkdirName), dir)
}

func TestResolveWorkdirExpandsHome(t *testing.T) {
	home, err := homedir.Dir()
	require.NoError(t, err)

	dir, err := ResolveWorkdir("~/publisher-work")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, "publisher-work"), dir)
}

func TestResolveWorkdirRelative(t *testing.T) {
	dir, err := ResolveWorkdir("work")
	require.NoError(t, err)
	require.True(t, filepath.IsAbs(dir))
	require.Equal(t, "work", filepath.Base(dir))
}
