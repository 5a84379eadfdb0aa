package repositories

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllKindsOrder(t *testing.T) {
	require.Equal(t, []Kind{KindAur, KindAurBin, KindHomebrew, KindScoop, KindNix, KindDebian, KindNPM}, AllKinds())
	for _, kind := range AllKinds() {
		repo, err := New(kind)
		require.NoError(t, err)
		require.Equal(t, kind, repo.Kind())
		require.NotEmpty(t, repo.Name())
	}
}

func TestDisplayNames(t *testing.T) {
	repos, err := Build(nil, nil)
	require.NoError(t, err)
	var names []string
	for _, repo := range repos {
		names = append(names, repo.Name())
	}
	require.Equal(t, []string{"AUR", "AUR (bin)", "Homebrew", "Scoop", "Nix", "Debian", "NPM"}, names)
}

func TestParseKind(t *testing.T) {
	kind, err := ParseKind(" AUR-bin ")
	require.NoError(t, err)
	require.Equal(t, KindAurBin, kind)

	_, err = ParseKind("snap")
	require.ErrorContains(t, err, `unknown repository "snap"`)
	require.ErrorContains(t, err, "aur, aur-bin, homebrew")

	_, err = New(Kind("snap"))
	require.Error(t, err)
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name     string
		selected []Kind
		exclude  []string
		want     []Kind
		wantErr  string
	}{
		{name: "all", want: AllKinds()},
		{name: "exclude", exclude: []string{"debian", "npm"}, want: []Kind{KindAur, KindAurBin, KindHomebrew, KindScoop, KindNix}},
		{name: "selection keeps order", selected: []Kind{KindNix, KindAur}, want: []Kind{KindNix, KindAur}},
		{name: "selection dedupes", selected: []Kind{KindNix, KindNix, KindAur}, want: []Kind{KindNix, KindAur}},
		{name: "selection bypasses exclude", selected: []Kind{KindDebian}, exclude: []string{"debian"}, want: []Kind{KindDebian}},
		{name: "unknown exclude", exclude: []string{"snap"}, wantErr: "unknown repository"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repos, err := Build(tt.selected, tt.exclude)
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, KindsOf(repos))
		})
	}
}

func TestSelectedButExcluded(t *testing.T) {
	got := SelectedButExcluded([]Kind{KindDebian, KindAur, KindDebian}, []string{"debian", "snap"})
	require.Equal(t, []Kind{KindDebian}, got)
	require.Empty(t, SelectedButExcluded(nil, []string{"debian"}))
}
