// Package manifest renders the files published to each package repository.
// Renderers are pure: they turn resolved package data into file lines.
package manifest

import (
	"strconv"

	"github.com/termapps/publisher/internal/release"
	"github.com/termapps/publisher/internal/targets"
)

// Package is the resolved data a renderer needs. Name is the package name in
// the target repository, Binary the executable shipped in the release assets,
// and Repository the owner/repo hosting the releases.
type Package struct {
	Name           string
	Binary         string
	Version        string
	Description    string
	Homepage       string
	License        string
	Repository     string
	RepositoryName string
	Conflicts      []string
	Checksums      release.Checksums
}

func (p Package) assetURL(target targets.Target) string {
	return release.AssetURL(release.DefaultHost, p.Repository, p.Binary, p.Version, target)
}

func (p Package) checksum(target targets.Target) string {
	return p.Checksums[target]
}

func quote(s string) string {
	return strconv.Quote(s)
}
