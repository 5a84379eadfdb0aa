package manifest

import (
	"fmt"

	"github.com/ettle/strcase"

	"github.com/termapps/publisher/internal/targets"
)

// FormulaPath is the location of the formula inside a tap.
func FormulaPath(name string) string {
	return "Formula/" + name + ".rb"
}

// FormulaClass is the Ruby class name Homebrew expects for name.
func FormulaClass(name string) string {
	return strcase.ToPascal(name)
}

// Formula renders a Homebrew formula installing the prebuilt binaries.
func Formula(p Package) []string {
	url := func(target targets.Target) string {
		return fmt.Sprintf("\"https://github.com/%s/releases/download/v#{version}/%s-v#{version}-%s.zip\"", p.Repository, p.Binary, target)
	}
	return []string{
		fmt.Sprintf("class %s < Formula", FormulaClass(p.Name)),
		"  version " + quote(p.Version),
		"  desc " + quote(p.Description),
		"  homepage " + quote(p.Homepage),
		"  license " + quote(p.License),
		"",
		"  if OS.mac?",
		"    if Hardware::CPU.arm?",
		"      url " + url(targets.Aarch64AppleDarwin),
		"      sha256 " + quote(p.checksum(targets.Aarch64AppleDarwin)),
		"    else",
		"      url " + url(targets.X86_64AppleDarwin),
		"      sha256 " + quote(p.checksum(targets.X86_64AppleDarwin)),
		"    end",
		"  elsif OS.linux?",
		"    url " + url(targets.X86_64UnknownLinuxGnu),
		"    sha256 " + quote(p.checksum(targets.X86_64UnknownLinuxGnu)),
		"  end",
		"",
		"  def install",
		"    bin.install " + quote(p.Binary),
		"  end",
		"",
		"  test do",
		fmt.Sprintf("    system \"#{bin}/%s --version\"", p.Binary),
		"  end",
		"end",
	}
}
