// Package targets enumerates the build target triples used in release asset names.
package targets

// Target identifies a platform build of the released tool, or the upstream
// source archive.
type Target int

const (
	Aarch64AppleDarwin Target = iota
	X86_64AppleDarwin
	X86_64UnknownLinuxGnu
	I686UnknownLinuxGnu
	X86_64UnknownLinuxMusl
	X86_64PcWindowsMsvc
	I686PcWindowsMsvc
	// Source names the source archive rather than a platform build.
	Source
)

// String renders the target triple exactly as it appears in release asset names.
// Source renders as the empty string.
func (t Target) String() string {
	switch t {
	case Aarch64AppleDarwin:
		return "aarch64-apple-darwin"
	case X86_64AppleDarwin:
		return "x86_64-apple-darwin"
	case X86_64UnknownLinuxGnu:
		return "x86_64-unknown-linux-gnu"
	case I686UnknownLinuxGnu:
		return "i686-unknown-linux-gnu"
	case X86_64UnknownLinuxMusl:
		return "x86_64-unknown-linux-musl"
	case X86_64PcWindowsMsvc:
		return "x86_64-pc-windows-msvc"
	case I686PcWindowsMsvc:
		return "i686-pc-windows-msvc"
	default:
		return ""
	}
}

// Suffix returns the asset name suffix for t: "-<triple>", or "" for Source.
func (t Target) Suffix() string {
	if t == Source {
		return ""
	}
	return "-" + t.String()
}

// All returns every platform target in a stable order. Source is not included.
func All() []Target {
	return []Target{
		Aarch64AppleDarwin,
		X86_64AppleDarwin,
		X86_64UnknownLinuxGnu,
		I686UnknownLinuxGnu,
		X86_64UnknownLinuxMusl,
		X86_64PcWindowsMsvc,
		I686PcWindowsMsvc,
	}
}
