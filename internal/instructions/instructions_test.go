package instructions

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/termapps/publisher/internal/config"
	"github.com/termapps/publisher/internal/repositories"
)

func testConfig() *config.AppConfig {
	return &config.AppConfig{
		Name:       "foo",
		Repository: "termapps/foo",
		Homebrew:   &config.HomebrewConfig{Repository: "termapps/homebrew-tap"},
	}
}

func build(t *testing.T, kinds ...repositories.Kind) []repositories.Repository {
	t.Helper()
	repos, err := repositories.Build(kinds, nil)
	require.NoError(t, err)
	return repos
}

func TestRender(t *testing.T) {
	got, err := Render(testConfig(), build(t, repositories.KindAur, repositories.KindHomebrew), DefaultOptions())
	require.NoError(t, err)

	want := strings.Join([]string{
		"<!-- publisher install start -->",
		"## Install",
		"",
		"`foo` is available on Linux, macOS & Windows",
		"",
		"#### With [AUR](https://aur.archlinux.org)",
		"",
		"```",
		"yay -S foo",
		"```",
		"",
		"#### With [Homebrew](https://brew.sh)",
		"",
		"```",
		"brew install termapps/tap/foo",
		"```",
		"",
		"#### Direct",
		"",
		"Pre-built binary executables are available at [releases page](https://github.com/termapps/foo/releases).",
		"",
		"Download, unarchive the binary, and then put the executable in `$PATH`.",
		"",
		"",
	}, "\n")
	require.Equal(t, want, got)
}

func TestRenderPropagatesBackendError(t *testing.T) {
	_, err := Render(testConfig(), build(t, repositories.KindScoop), DefaultOptions())
	require.ErrorContains(t, err, "no configuration found for scoop")
}

func TestSplice(t *testing.T) {
	opts := Options{StartMarker: "<!-- s -->", EndMarker: "<!-- e -->"}

	tests := []struct {
		name    string
		content string
		want    string
		wantErr string
	}{
		{
			name:    "replaces between markers",
			content: "top\n<!-- s -->\nold\n<!-- e -->\nbottom\n",
			want:    "top\nNEW\n<!-- e -->\nbottom\n",
		},
		{
			name:    "adjacent markers",
			content: "<!-- s --><!-- e -->",
			want:    "NEW\n<!-- e -->",
		},
		{
			name:    "missing start",
			content: "<!-- e -->",
			wantErr: `start marker "<!-- s -->" not found in README.md`,
		},
		{
			name:    "missing end",
			content: "<!-- s -->",
			wantErr: `end marker "<!-- e -->" not found in README.md`,
		},
		{
			name:    "end before start",
			content: "<!-- e --><!-- s -->",
			wantErr: `end marker "<!-- e -->" appears before start marker in README.md`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Splice(tt.content, "NEW\n", opts, "README.md")
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestWriteFileIsRepeatable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "README.md")
	require.NoError(t, os.WriteFile(path, []byte("# foo\n\n<!-- publisher install start -->\n<!-- publisher install end -->\n"), 0o600))

	repos := build(t, repositories.KindNPM)
	require.NoError(t, WriteFile(path, testConfig(), repos, DefaultOptions()))
	first, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(first), "npm install -g foo")
	require.True(t, strings.HasSuffix(string(first), "`$PATH`.\n\n<!-- publisher install end -->\n"))

	require.NoError(t, WriteFile(path, testConfig(), repos, DefaultOptions()))
	second, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, string(first), string(second))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestWriteFileMissing(t *testing.T) {
	err := WriteFile(filepath.Join(t.TempDir(), "nope.md"), testConfig(), nil, DefaultOptions())
	require.ErrorContains(t, err, "read ")
}
