package manifest

import (
	"embed"
	"fmt"
	"path"
	"strings"

	"github.com/termapps/publisher/internal/targets"
)

//go:embed templates/npm/*.js
var npmTemplates embed.FS

// NPMPlatform describes one binary distribution package.
type NPMPlatform struct {
	Target targets.Target
	OS     string
	CPU    string
	Libc   string
}

// Suffix is appended to the package name, e.g. "linux-x64-glibc".
func (p NPMPlatform) Suffix() string {
	suffix := p.packageOS() + "-" + p.CPU
	if p.Libc != "" {
		suffix += "-" + p.Libc
	}
	return suffix
}

// Key is the lookup key the install shim computes from process.platform,
// process.arch, and the detected libc.
func (p NPMPlatform) Key() string {
	key := p.OS + "-" + p.CPU
	if p.Libc != "" {
		key += "-" + p.Libc
	}
	return key
}

func (p NPMPlatform) packageOS() string {
	if p.OS == "win32" {
		return "windows"
	}
	return p.OS
}

// NPMPlatforms lists the binary distribution packages in publish order.
func NPMPlatforms() []NPMPlatform {
	return []NPMPlatform{
		{Target: targets.Aarch64AppleDarwin, OS: "darwin", CPU: "arm64"},
		{Target: targets.X86_64AppleDarwin, OS: "darwin", CPU: "x64"},
		{Target: targets.X86_64UnknownLinuxGnu, OS: "linux", CPU: "x64", Libc: "glibc"},
		{Target: targets.I686UnknownLinuxGnu, OS: "linux", CPU: "ia32", Libc: "glibc"},
		{Target: targets.X86_64UnknownLinuxMusl, OS: "linux", CPU: "x64", Libc: "musl"},
		{Target: targets.X86_64PcWindowsMsvc, OS: "win32", CPU: "x64"},
		{Target: targets.I686PcWindowsMsvc, OS: "win32", CPU: "ia32"},
	}
}

// NPMPlatformTargets lists the release targets the npm packages ship.
func NPMPlatformTargets() []targets.Target {
	platforms := NPMPlatforms()
	out := make([]targets.Target, 0, len(platforms))
	for _, platform := range platforms {
		out = append(out, platform.Target)
	}
	return out
}

// NPMMainDir is the workspace subdirectory holding the main package.
const NPMMainDir = "main"

// NPMTemplateFiles are the shim scripts copied into the main package.
var NPMTemplateFiles = []string{"install.js", "binary.js", "cli.js"}

type npmRepository struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

type npmPublishConfig struct {
	Access string `json:"access"`
}

type npmMainPackage struct {
	Name                 string            `json:"name"`
	Version              string            `json:"version"`
	Description          string            `json:"description"`
	Homepage             string            `json:"homepage"`
	License              string            `json:"license"`
	Repository           npmRepository     `json:"repository"`
	Bin                  map[string]string `json:"bin"`
	Scripts              map[string]string `json:"scripts"`
	Dependencies         map[string]string `json:"dependencies"`
	OptionalDependencies map[string]string `json:"optionalDependencies"`
	PublishConfig        npmPublishConfig  `json:"publishConfig"`
}

type npmPlatformPackage struct {
	Name          string           `json:"name"`
	Version       string           `json:"version"`
	Description   string           `json:"description"`
	Homepage      string           `json:"homepage"`
	License       string           `json:"license"`
	Repository    npmRepository    `json:"repository"`
	OS            []string         `json:"os"`
	CPU           []string         `json:"cpu"`
	Libc          []string         `json:"libc,omitempty"`
	PublishConfig npmPublishConfig `json:"publishConfig"`
}

func (p Package) npmRepository() npmRepository {
	return npmRepository{Type: "git", URL: fmt.Sprintf("git+https://github.com/%s.git", p.Repository)}
}

// NPMPlatformName is the package name of one binary distribution package.
func NPMPlatformName(name string, platform NPMPlatform) string {
	return name + "-" + platform.Suffix()
}

// NPMMainPackageJSON renders the main package manifest. The main package
// depends on every platform package optionally and installs the matching one.
func NPMMainPackageJSON(p Package) ([]string, error) {
	optional := make(map[string]string)
	for _, platform := range NPMPlatforms() {
		optional[NPMPlatformName(p.Name, platform)] = p.Version
	}
	return jsonLines(npmMainPackage{
		Name:                 p.Name,
		Version:              p.Version,
		Description:          p.Description,
		Homepage:             p.Homepage,
		License:              p.License,
		Repository:           p.npmRepository(),
		Bin:                  map[string]string{p.Binary: "cli.js"},
		Scripts:              map[string]string{"postinstall": "node ./install.js"},
		Dependencies:         map[string]string{"detect-libc": "^2.0.4"},
		OptionalDependencies: optional,
		PublishConfig:        npmPublishConfig{Access: "public"},
	})
}

// NPMPlatformPackageJSON renders the manifest of one binary distribution package.
func NPMPlatformPackageJSON(p Package, platform NPMPlatform) ([]string, error) {
	pkg := npmPlatformPackage{
		Name:          NPMPlatformName(p.Name, platform),
		Version:       p.Version,
		Description:   p.Description,
		Homepage:      p.Homepage,
		License:       p.License,
		Repository:    p.npmRepository(),
		OS:            []string{platform.OS},
		CPU:           []string{platform.CPU},
		PublishConfig: npmPublishConfig{Access: "public"},
	}
	if platform.Libc != "" {
		pkg.Libc = []string{platform.Libc}
	}
	return jsonLines(pkg)
}

// NPMConstantsJS renders the lookup table the install shim reads.
func NPMConstantsJS(p Package) []string {
	lines := []string{"const BINARY_DISTRIBUTION_PACKAGES = {"}
	for _, platform := range NPMPlatforms() {
		lines = append(lines, fmt.Sprintf("  %q: %q,", platform.Key(), NPMPlatformName(p.Name, platform)))
	}
	return append(lines,
		"};",
		"",
		fmt.Sprintf("const BINARY_DISTRIBUTION_VERSION = %s;", quote(p.Version)),
		"",
		fmt.Sprintf("const BINARY_NAME = [\"win32\", \"cygwin\"].includes(process.platform) ? %s : %s;", quote(p.Binary+".exe"), quote(p.Binary)),
		"",
		"module.exports = {",
		"  BINARY_DISTRIBUTION_PACKAGES,",
		"  BINARY_DISTRIBUTION_VERSION,",
		"  BINARY_NAME,",
		"};",
	)
}

// NPMTemplate returns the lines of an embedded shim script.
func NPMTemplate(name string) ([]string, error) {
	data, err := npmTemplates.ReadFile(path.Join("templates", "npm", name))
	if err != nil {
		return nil, err
	}
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n"), nil
}
