package repositories

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/termapps/publisher/internal/command"
	"github.com/termapps/publisher/internal/config"
	"github.com/termapps/publisher/internal/git"
	"github.com/termapps/publisher/internal/publish"
	"github.com/termapps/publisher/internal/release"
	"github.com/termapps/publisher/internal/targets"
	"github.com/termapps/publisher/internal/testutil"
)

const testDigest = "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08"

func testConfig() *config.AppConfig {
	return &config.AppConfig{
		Name:        "foo",
		Description: "Foo does things",
		Homepage:    "https://foo.dev",
		License:     "MIT",
		Repository:  "termapps/foo",
		Homebrew:    &config.HomebrewConfig{Repository: "termapps/homebrew-tap"},
		Scoop:       &config.ScoopConfig{Repository: "termapps/scoop-bucket"},
	}
}

// checksumServer serves a digest for every checksum file and records the
// requested paths.
type checksumServer struct {
	*httptest.Server
	mu    sync.Mutex
	paths []string
}

func newChecksumServer(t *testing.T) *checksumServer {
	t.Helper()
	s := &checksumServer{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.paths = append(s.paths, r.URL.Path)
		s.mu.Unlock()
		if !strings.HasSuffix(r.URL.Path, "_sha256sum.txt") {
			http.NotFound(w, r)
			return
		}
		_, _ = io.WriteString(w, testDigest+"\n")
	}))
	t.Cleanup(s.Close)
	return s
}

func (s *checksumServer) Paths() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.paths...)
}

type fakeDownloader struct {
	mu     sync.Mutex
	assets []release.Asset
	err    error
}

func (d *fakeDownloader) FetchAsset(_ context.Context, asset release.Asset, _ string, _ string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.assets = append(d.assets, asset)
	return d.err
}

type stubResolver struct {
	wants [][]targets.Target
	err   error
}

func (r *stubResolver) Resolve(_ context.Context, _, _, _ string, want []targets.Target) (release.Checksums, error) {
	r.wants = append(r.wants, want)
	if r.err != nil {
		return nil, r.err
	}
	checksums := release.Checksums{}
	for _, target := range want {
		checksums[target] = testDigest
	}
	return checksums, nil
}

type testEnv struct {
	*Env
	runner     *testutil.FakeRunner
	downloader *fakeDownloader
	server     *checksumServer
}

func newTestEnv(t *testing.T, dryRun bool) *testEnv {
	t.Helper()
	runner := &testutil.FakeRunner{}
	runner.Respond("git --version", command.Result{Stdout: "git version 2.44.0\n"})
	runner.Fail("git diff --cached --quiet", 1, "")
	server := newChecksumServer(t)
	downloader := &fakeDownloader{}
	logger := log.New(io.Discard)

	return &testEnv{
		Env: &Env{
			Runner:     runner,
			Git:        git.New(runner),
			Resolver:   &release.Resolver{Client: server.Client(), Host: server.URL},
			Downloader: downloader,
			Pipeline:   publish.New(runner, t.TempDir(), dryRun, logger, io.Discard),
			Logger:     logger,
		},
		runner:     runner,
		downloader: downloader,
		server:     server,
	}
}
