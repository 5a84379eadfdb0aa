// Package release resolves checksums and downloads assets published on the
// release host for a tagged version of the tool.
package release

import (
	"fmt"

	"github.com/termapps/publisher/internal/targets"
)

// DefaultHost is the release host for GitHub repositories.
const DefaultHost = "https://github.com"

// Checksums maps each target to the hex SHA-256 digest of its release asset.
type Checksums map[targets.Target]string

func assetBase(host, repo, name, version string, target targets.Target) string {
	return fmt.Sprintf("%s/%s/releases/download/v%s/%s-v%s%s", host, repo, version, name, version, target.Suffix())
}

// ChecksumURL returns the URL of the checksum file for target.
func ChecksumURL(host, repo, name, version string, target targets.Target) string {
	return assetBase(host, repo, name, version, target) + "_sha256sum.txt"
}

// AssetURL returns the URL of the zipped release asset for target.
func AssetURL(host, repo, name, version string, target targets.Target) string {
	return assetBase(host, repo, name, version, target) + ".zip"
}

// Asset identifies one zipped release asset.
type Asset struct {
	Repository string
	Name       string
	Version    string
	Target     targets.Target
}

// URL returns the asset's download URL on host.
func (a Asset) URL(host string) string {
	return AssetURL(host, a.Repository, a.Name, a.Version, a.Target)
}
