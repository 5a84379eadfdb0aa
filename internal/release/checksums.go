package release

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"

	"github.com/termapps/publisher/internal/messages"
	"github.com/termapps/publisher/internal/targets"
)

// ErrChecksum wraps every checksum resolution failure.
var ErrChecksum = errors.New("checksum resolution failed")

var sha256Pattern = regexp.MustCompile(`^[0-9a-fA-F]{64}$`)

// maxChecksumBody bounds how much of a checksum response is read.
const maxChecksumBody = 4 << 10

// Resolver fetches published checksum files.
type Resolver struct {
	Client *http.Client
	Host   string
}

// Resolve fetches the checksum of each target's release asset for version.
// It fails as a whole when any target cannot be resolved; no partial map is returned.
func (r *Resolver) Resolve(ctx context.Context, name, version, repo string, want []targets.Target) (Checksums, error) {
	checksums := make(Checksums, len(want))
	for _, target := range want {
		if _, ok := checksums[target]; ok {
			continue
		}
		sum, err := r.fetch(ctx, ChecksumURL(r.host(), repo, name, version, target))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrChecksum, err)
		}
		checksums[target] = sum
	}
	return checksums, nil
}

func (r *Resolver) host() string {
	if r.Host == "" {
		return DefaultHost
	}
	return strings.TrimSuffix(r.Host, "/")
}

func (r *Resolver) client() *http.Client {
	if r.Client == nil {
		return http.DefaultClient
	}
	return r.Client
}

func (r *Resolver) fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf(messages.ReleaseRequestFmt, url, err)
	}
	req.Header.Set("User-Agent", "publisher")

	resp, err := r.client().Do(req)
	if err != nil {
		return "", fmt.Errorf(messages.ReleaseFetchFmt, url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf(messages.ReleaseStatusFmt, url, resp.Status)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxChecksumBody))
	if err != nil {
		return "", fmt.Errorf(messages.ReleaseFetchFmt, url, err)
	}
	return ParseChecksum(url, string(body))
}

// ParseChecksum extracts the digest from a checksum file body. The body may be
// a bare digest or a sha256sum line ("<digest>  <file>").
func ParseChecksum(source string, body string) (string, error) {
	trimmed := strings.TrimSpace(body)
	if trimmed == "" {
		return "", fmt.Errorf(messages.ReleaseEmptyFmt, source)
	}
	digest := strings.Fields(trimmed)[0]
	if !sha256Pattern.MatchString(digest) {
		return "", fmt.Errorf(messages.ReleaseMalformedFmt, source, trimmed)
	}
	return strings.ToLower(digest), nil
}
