package manifest

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/termapps/publisher/internal/release"
	"github.com/termapps/publisher/internal/targets"
)

func testPackage(name string) Package {
	checksums := release.Checksums{}
	for i, target := range append(targets.All(), targets.Source) {
		checksums[target] = strings.Repeat(string(rune('a'+i)), 64)
	}
	return Package{
		Name:           name,
		Binary:         "foo",
		Version:        "1.2.3",
		Description:    `Foo "does" things`,
		Homepage:       "https://foo.dev",
		License:        "MIT",
		Repository:     "termapps/foo",
		RepositoryName: "foo",
		Checksums:      checksums,
	}
}

func TestPKGBUILD(t *testing.T) {
	p := testPackage("foo")
	p.Conflicts = []string{"foo-bin", "foo-git"}
	lines := PKGBUILD(p)

	require.Equal(t, "pkgname=foo", lines[0])
	require.Contains(t, lines, `pkgdesc="Foo \"does\" things"`)
	require.Contains(t, lines, `conflicts=("foo-bin" "foo-git")`)
	require.Contains(t, lines, "source=($pkgname-$pkgver.zip::https://github.com/termapps/foo/archive/refs/tags/v$pkgver.zip)")
	require.Contains(t, lines, `sha256sums=("`+p.Checksums[targets.Source]+`")`)
	require.Contains(t, lines, `    cd "$srcdir/foo-$pkgver"`)
	require.Equal(t, "}", lines[len(lines)-1])
}

func TestSRCINFO(t *testing.T) {
	p := testPackage("foo")
	lines := SRCINFO(p)
	require.NotContains(t, strings.Join(lines, "\n"), "conflicts")

	p.Conflicts = []string{"foo-bin"}
	lines = SRCINFO(p)
	require.Contains(t, lines, "\tconflicts = foo-bin")
	require.Contains(t, lines, "\tsource = foo-1.2.3.zip::https://github.com/termapps/foo/archive/refs/tags/v1.2.3.zip")
	require.Equal(t, "pkgname = foo", lines[len(lines)-1])
}

func TestBinPackage(t *testing.T) {
	p := testPackage("foo-bin")
	p.Conflicts = []string{"foo"}

	pkgbuild := BinPKGBUILD(p)
	require.Equal(t, "pkgname=foo-bin", pkgbuild[0])
	require.Contains(t, pkgbuild, `conflicts=("foo")`)
	require.Contains(t, pkgbuild, "source_x86_64=($pkgname-$pkgver.zip::https://github.com/termapps/foo/releases/download/v$pkgver/foo-v$pkgver-x86_64-unknown-linux-gnu.zip)")
	require.Contains(t, pkgbuild, `sha256sums_i686=("`+p.Checksums[targets.I686UnknownLinuxGnu]+`")`)

	srcinfo := BinSRCINFO(p)
	require.Contains(t, srcinfo, "\tsource_i686 = foo-bin-1.2.3.zip::https://github.com/termapps/foo/releases/download/v1.2.3/foo-v1.2.3-i686-unknown-linux-gnu.zip")
	require.Contains(t, srcinfo, "\tsha256sums_x86_64 = "+p.Checksums[targets.X86_64UnknownLinuxGnu])
}

func TestFormula(t *testing.T) {
	p := testPackage("foo-cli")
	lines := Formula(p)

	require.Equal(t, "Formula/foo-cli.rb", FormulaPath("foo-cli"))
	require.Equal(t, "class FooCli < Formula", lines[0])
	require.Contains(t, lines, `      url "https://github.com/termapps/foo/releases/download/v#{version}/foo-v#{version}-aarch64-apple-darwin.zip"`)
	require.Contains(t, lines, `    sha256 "`+p.Checksums[targets.X86_64UnknownLinuxGnu]+`"`)
	require.Contains(t, lines, `    bin.install "foo"`)
	require.Equal(t, "end", lines[len(lines)-1])
}

func TestScoopManifest(t *testing.T) {
	p := testPackage("foo")
	lines, err := ScoopManifest(p)
	require.NoError(t, err)
	require.Equal(t, "{", lines[0])

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.Join(lines, "\n")), &decoded))
	require.Equal(t, "1.2.3", decoded["version"])
	arch := decoded["architecture"].(map[string]any)
	bit64 := arch["64bit"].(map[string]any)
	require.Equal(t, "https://github.com/termapps/foo/releases/download/v1.2.3/foo-v1.2.3-x86_64-pc-windows-msvc.zip", bit64["url"])
	require.Equal(t, p.Checksums[targets.X86_64PcWindowsMsvc], bit64["hash"])
	require.Equal(t, []any{"foo.exe"}, decoded["bin"])
}

func TestFlake(t *testing.T) {
	require.Equal(t, DefaultFlakePath, FlakePath("", "foo"))
	require.Equal(t, "pkgs/foo/flake.nix", FlakePath("pkgs/%n/flake.nix", "foo"))
	require.Len(t, FlakeTargets(), 4)

	p := testPackage("foo")
	lines := Flake(p)
	joined := strings.Join(lines, "\n")
	require.Contains(t, joined, "        x86_64-linux = {\n          target = \"x86_64-unknown-linux-gnu\";")
	require.Contains(t, joined, `sha256 = "`+p.Checksums[targets.I686UnknownLinuxGnu]+`";`)
	require.Contains(t, joined, `name = "foo-${version}";`)
	require.Equal(t, "}", lines[len(lines)-1])
}

func TestNPMPlatforms(t *testing.T) {
	var suffixes, keys []string
	for _, platform := range NPMPlatforms() {
		suffixes = append(suffixes, platform.Suffix())
		keys = append(keys, platform.Key())
	}
	require.Equal(t, []string{
		"darwin-arm64", "darwin-x64", "linux-x64-glibc", "linux-ia32-glibc",
		"linux-x64-musl", "windows-x64", "windows-ia32",
	}, suffixes)
	require.Contains(t, keys, "win32-x64")
	require.Len(t, NPMPlatformTargets(), len(targets.All()))
}

func TestNPMPackages(t *testing.T) {
	p := testPackage("@termapps/foo")

	mainLines, err := NPMMainPackageJSON(p)
	require.NoError(t, err)
	var main map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.Join(mainLines, "\n")), &main))
	require.Equal(t, "@termapps/foo", main["name"])
	require.Equal(t, map[string]any{"foo": "cli.js"}, main["bin"])
	optional := main["optionalDependencies"].(map[string]any)
	require.Len(t, optional, 7)
	require.Equal(t, "1.2.3", optional["@termapps/foo-linux-x64-musl"])

	platform := NPMPlatforms()[2]
	platformLines, err := NPMPlatformPackageJSON(p, platform)
	require.NoError(t, err)
	var pkg map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.Join(platformLines, "\n")), &pkg))
	require.Equal(t, "@termapps/foo-linux-x64-glibc", pkg["name"])
	require.Equal(t, []any{"glibc"}, pkg["libc"])

	darwinLines, err := NPMPlatformPackageJSON(p, NPMPlatforms()[0])
	require.NoError(t, err)
	require.NotContains(t, strings.Join(darwinLines, "\n"), "libc")

	constants := strings.Join(NPMConstantsJS(p), "\n")
	require.Contains(t, constants, `"win32-ia32": "@termapps/foo-windows-ia32",`)
	require.Contains(t, constants, `const BINARY_DISTRIBUTION_VERSION = "1.2.3";`)
}

func TestNPMTemplates(t *testing.T) {
	for _, name := range NPMTemplateFiles {
		lines, err := NPMTemplate(name)
		require.NoError(t, err, name)
		require.NotEmpty(t, lines)
	}
	_, err := NPMTemplate("missing.js")
	require.Error(t, err)
}
