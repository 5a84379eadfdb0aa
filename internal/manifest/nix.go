package manifest

import (
	"fmt"
	"strings"

	"github.com/termapps/publisher/internal/targets"
)

// DefaultFlakePath is used when no path is configured.
const DefaultFlakePath = "flake.nix"

// FlakePath expands %n in path to name. An empty path selects DefaultFlakePath.
func FlakePath(path string, name string) string {
	if path == "" {
		return DefaultFlakePath
	}
	return strings.ReplaceAll(path, "%n", name)
}

var flakeSystems = []struct {
	system string
	target targets.Target
}{
	{system: "aarch64-darwin", target: targets.Aarch64AppleDarwin},
	{system: "x86_64-darwin", target: targets.X86_64AppleDarwin},
	{system: "x86_64-linux", target: targets.X86_64UnknownLinuxGnu},
	{system: "i686-linux", target: targets.I686UnknownLinuxGnu},
}

// FlakeTargets lists the release targets a flake references.
func FlakeTargets() []targets.Target {
	out := make([]targets.Target, 0, len(flakeSystems))
	for _, s := range flakeSystems {
		out = append(out, s.target)
	}
	return out
}

// Flake renders a flake packaging the prebuilt binaries for each system.
func Flake(p Package) []string {
	lines := []string{
		"{",
		fmt.Sprintf("  description = %s;", quote(p.Description)),
		"",
		"  inputs = {",
		"    nixpkgs.url = \"github:NixOS/nixpkgs\";",
		"    flake-utils.url = \"github:numtide/flake-utils\";",
		"  };",
		"",
		"  outputs = { self, nixpkgs, flake-utils }:",
		"    with flake-utils.lib;",
		"    with nixpkgs.lib;",
		"",
		"    let",
		"      systems = {",
	}
	for _, s := range flakeSystems {
		lines = append(lines,
			fmt.Sprintf("        %s = {", s.system),
			fmt.Sprintf("          target = %s;", quote(s.target.String())),
			fmt.Sprintf("          sha256 = %s;", quote(p.checksum(s.target))),
			"        };",
		)
	}
	return append(lines,
		"      };",
		"    in eachSystem (mapAttrsToList (n: v: n) systems) (system: {",
		"      packages.default = with import nixpkgs { inherit system; };",
		"",
		"        stdenv.mkDerivation rec {",
		fmt.Sprintf("          name = \"%s-${version}\";", p.Name),
		fmt.Sprintf("          version = %s;", quote(p.Version)),
		"",
		"          nativeBuildInputs = [ unzip ];",
		"",
		"          src = pkgs.fetchurl {",
		fmt.Sprintf("            url = \"https://github.com/%s/releases/download/v${version}/%s-v${version}-${systems.${system}.target}.zip\";", p.Repository, p.Binary),
		"            inherit (systems.${system}) sha256;",
		"          };",
		"",
		"          sourceRoot = \".\";",
		"",
		"          installPhase = ''",
		fmt.Sprintf("            install -Dm755 %s $out/bin/%s", p.Binary, p.Binary),
		fmt.Sprintf("            install -Dm755 LICENSE $out/share/licenses/%s/LICENSE", p.Binary),
		"          '';",
		"",
		"          meta = {",
		fmt.Sprintf("            description = %s;", quote(p.Description)),
		fmt.Sprintf("            homepage = %s;", quote(p.Homepage)),
		"            platforms = [ system ];",
		"          };",
		"        };",
		"    });",
		"}",
	)
}
