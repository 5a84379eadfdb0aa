package manifest

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/termapps/publisher/internal/targets"
)

type scoopManifest struct {
	Version      string            `json:"version"`
	Description  string            `json:"description"`
	Homepage     string            `json:"homepage"`
	License      string            `json:"license"`
	Architecture scoopArchitecture `json:"architecture"`
	Bin          []string          `json:"bin"`
}

type scoopArchitecture struct {
	Bit64 scoopAsset `json:"64bit"`
	Bit32 scoopAsset `json:"32bit"`
}

type scoopAsset struct {
	URL  string `json:"url"`
	Hash string `json:"hash"`
}

// ScoopPath is the location of the manifest inside a bucket.
func ScoopPath(name string) string {
	return name + ".json"
}

// ScoopManifest renders a Scoop app manifest for the Windows binaries.
func ScoopManifest(p Package) ([]string, error) {
	return jsonLines(scoopManifest{
		Version:     p.Version,
		Description: p.Description,
		Homepage:    p.Homepage,
		License:     p.License,
		Architecture: scoopArchitecture{
			Bit64: scoopAsset{URL: p.assetURL(targets.X86_64PcWindowsMsvc), Hash: p.checksum(targets.X86_64PcWindowsMsvc)},
			Bit32: scoopAsset{URL: p.assetURL(targets.I686PcWindowsMsvc), Hash: p.checksum(targets.I686PcWindowsMsvc)},
		},
		Bin: []string{p.Binary + ".exe"},
	})
}

// jsonLines encodes v with two-space indentation and splits it into lines.
func jsonLines(v any) ([]string, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return nil, err
	}
	return strings.Split(strings.TrimRight(buf.String(), "\n"), "\n"), nil
}
