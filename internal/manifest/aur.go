package manifest

import (
	"fmt"
	"strings"

	"github.com/termapps/publisher/internal/targets"
)

// PKGBUILD renders the build script of the AUR source package.
func PKGBUILD(p Package) []string {
	return []string{
		"pkgname=" + p.Name,
		"pkgver=" + p.Version,
		"pkgrel=0",
		"pkgdesc=" + quote(p.Description),
		"arch=('x86_64' 'i686')",
		"url=" + quote(p.Homepage),
		"license=(" + quote(p.License) + ")",
		"makedepends=('cargo')",
		"provides=(" + quote(p.Binary) + ")",
		"conflicts=(" + pkgbuildList(p.Conflicts) + ")",
		fmt.Sprintf("source=($pkgname-$pkgver.zip::https://github.com/%s/archive/refs/tags/v$pkgver.zip)", p.Repository),
		"sha256sums=(" + quote(p.checksum(targets.Source)) + ")",
		"",
		"build() {",
		fmt.Sprintf("    cd \"$srcdir/%s-$pkgver\"", p.RepositoryName),
		"    cargo build --release --locked",
		"}",
		"",
		"package() {",
		fmt.Sprintf("    cd \"$srcdir/%s-$pkgver\"", p.RepositoryName),
		fmt.Sprintf("    install -Dm755 \"target/release/%s\" \"$pkgdir/usr/bin/%s\"", p.Binary, p.Binary),
		fmt.Sprintf("    install -Dm644 \"LICENSE\" \"$pkgdir/usr/share/licenses/%s/LICENSE\"", p.Binary),
		"}",
	}
}

// SRCINFO renders the .SRCINFO metadata of the AUR source package.
func SRCINFO(p Package) []string {
	lines := []string{
		"pkgbase = " + p.Name,
		"\tpkgver = " + p.Version,
		"\tpkgrel = 0",
		"\tpkgdesc = " + p.Description,
		"\turl = " + p.Homepage,
		"\tarch = x86_64",
		"\tarch = i686",
		"\tlicense = " + p.License,
		"\tmakedepends = cargo",
		"\tprovides = " + p.Binary,
	}
	lines = append(lines, srcinfoConflicts(p.Conflicts)...)
	return append(lines,
		fmt.Sprintf("\tsource = %s-%s.zip::https://github.com/%s/archive/refs/tags/v%s.zip", p.Name, p.Version, p.Repository, p.Version),
		"\tsha256sums = "+p.checksum(targets.Source),
		"",
		"pkgname = "+p.Name,
	)
}

// BinPKGBUILD renders the build script of the AUR binary package.
func BinPKGBUILD(p Package) []string {
	binURL := func(target targets.Target) string {
		return fmt.Sprintf("https://github.com/%s/releases/download/v$pkgver/%s-v$pkgver-%s.zip", p.Repository, p.Binary, target)
	}
	return []string{
		"pkgname=" + p.Name,
		"pkgver=" + p.Version,
		"pkgrel=0",
		"pkgdesc=" + quote(p.Description),
		"arch=('x86_64' 'i686')",
		"url=" + quote(p.Homepage),
		"license=(" + quote(p.License) + ")",
		"provides=(" + quote(p.Binary) + ")",
		"conflicts=(" + pkgbuildList(p.Conflicts) + ")",
		"source_x86_64=($pkgname-$pkgver.zip::" + binURL(targets.X86_64UnknownLinuxGnu) + ")",
		"source_i686=($pkgname-$pkgver.zip::" + binURL(targets.I686UnknownLinuxGnu) + ")",
		"sha256sums_x86_64=(" + quote(p.checksum(targets.X86_64UnknownLinuxGnu)) + ")",
		"sha256sums_i686=(" + quote(p.checksum(targets.I686UnknownLinuxGnu)) + ")",
		"",
		"package() {",
		"    cd \"$srcdir\"",
		fmt.Sprintf("    install -Dm755 \"%s\" \"$pkgdir/usr/bin/%s\"", p.Binary, p.Binary),
		fmt.Sprintf("    install -Dm644 \"LICENSE\" \"$pkgdir/usr/share/licenses/%s/LICENSE\"", p.Binary),
		"}",
	}
}

// BinSRCINFO renders the .SRCINFO metadata of the AUR binary package.
func BinSRCINFO(p Package) []string {
	lines := []string{
		"pkgbase = " + p.Name,
		"\tpkgver = " + p.Version,
		"\tpkgrel = 0",
		"\tpkgdesc = " + p.Description,
		"\turl = " + p.Homepage,
		"\tarch = x86_64",
		"\tarch = i686",
		"\tlicense = " + p.License,
		"\tprovides = " + p.Binary,
	}
	lines = append(lines, srcinfoConflicts(p.Conflicts)...)
	return append(lines,
		fmt.Sprintf("\tsource_x86_64 = %s-%s.zip::%s", p.Name, p.Version, p.assetURL(targets.X86_64UnknownLinuxGnu)),
		"\tsha256sums_x86_64 = "+p.checksum(targets.X86_64UnknownLinuxGnu),
		fmt.Sprintf("\tsource_i686 = %s-%s.zip::%s", p.Name, p.Version, p.assetURL(targets.I686UnknownLinuxGnu)),
		"\tsha256sums_i686 = "+p.checksum(targets.I686UnknownLinuxGnu),
		"",
		"pkgname = "+p.Name,
	)
}

func pkgbuildList(values []string) string {
	quoted := make([]string, 0, len(values))
	for _, value := range values {
		quoted = append(quoted, quote(value))
	}
	return strings.Join(quoted, " ")
}

func srcinfoConflicts(conflicts []string) []string {
	lines := make([]string, 0, len(conflicts))
	for _, conflict := range conflicts {
		lines = append(lines, "\tconflicts = "+conflict)
	}
	return lines
}
