package release

import (
	"archive/zip"
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/termapps/publisher/internal/messages"
)

// Downloader fetches release assets and verifies them against resolved checksums.
type Downloader struct {
	Client *http.Client
	Host   string
}

// FetchAsset downloads asset from the release host, verifies it against
// expected, and extracts it into dest.
func (d *Downloader) FetchAsset(ctx context.Context, asset Asset, expected string, dest string) error {
	host := d.Host
	if host == "" {
		host = DefaultHost
	}
	return d.FetchZip(ctx, asset.URL(strings.TrimSuffix(host, "/")), expected, dest)
}

// FetchZip downloads the zip archive at url, verifies its SHA-256 digest
// against expected, and extracts it into dest.
func (d *Downloader) FetchZip(ctx context.Context, url string, expected string, dest string) error {
	data, err := d.fetch(ctx, url)
	if err != nil {
		return err
	}

	sum := sha256.Sum256(data)
	actual := hex.EncodeToString(sum[:])
	if !strings.EqualFold(actual, expected) {
		return fmt.Errorf(messages.ReleaseMismatchFmt, url, expected, actual)
	}

	if err := Unzip(data, dest); err != nil {
		return fmt.Errorf(messages.ReleaseArchiveFmt, url, err)
	}
	return nil
}

func (d *Downloader) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf(messages.ReleaseRequestFmt, url, err)
	}
	req.Header.Set("User-Agent", "publisher")

	client := d.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf(messages.ReleaseFetchFmt, url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf(messages.ReleaseStatusFmt, url, resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf(messages.ReleaseFetchFmt, url, err)
	}
	return data, nil
}

// Unzip extracts the archive in data into dest, rejecting entries that would
// land outside dest.
func Unzip(data []byte, dest string) error {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return err
	}
	root, err := filepath.Abs(dest)
	if err != nil {
		return err
	}

	for _, file := range reader.File {
		target := filepath.Join(root, filepath.FromSlash(file.Name))
		if target != root && !strings.HasPrefix(target, root+string(os.PathSeparator)) {
			return fmt.Errorf(messages.ReleaseArchiveEntryFmt, file.Name, dest)
		}
		if file.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return err
			}
			continue
		}
		if err := extractFile(file, target); err != nil {
			return err
		}
	}
	return nil
}

func extractFile(file *zip.File, target string) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	src, err := file.Open()
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()

	mode := file.Mode().Perm()
	if mode == 0 {
		mode = 0o644
	}
	dst, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil { //nolint:gosec // release assets are checksum-verified before extraction
		_ = dst.Close()
		return err
	}
	return dst.Close()
}
