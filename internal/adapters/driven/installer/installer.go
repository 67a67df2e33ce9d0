package installer

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/custodia-labs/evsearch/internal/core/domain"
	"github.com/custodia-labs/evsearch/internal/core/ports/driven"
	"github.com/custodia-labs/evsearch/internal/logger"
)

const (
	// ExecutableName is the file extracted from the release archive.
	ExecutableName = "es.exe"

	// digestPrefix is the only digest algorithm accepted.
	digestPrefix = "sha256:"

	// maxDownloadSize caps the archive size read into memory.
	maxDownloadSize = 64 << 20

	userAgent = "evsearch"
)

// Ensure Installer implements the interface.
var _ driven.BinaryInstaller = (*Installer)(nil)

// AssetSuffix returns the release asset suffix for goarch.
func AssetSuffix(goarch string) (string, error) {
	switch goarch {
	case "amd64":
		return ".x64.zip", nil
	case "arm64":
		return ".ARM64.zip", nil
	default:
		return "", fmt.Errorf("unsupported architecture: %s", goarch)
	}
}

// DefaultInstallDir returns %LOCALAPPDATA%\Microsoft\WindowsApps, which is
// on PATH for every Windows user.
func DefaultInstallDir() string {
	local := os.Getenv("LOCALAPPDATA")
	if local == "" {
		home := os.Getenv("USERPROFILE")
		if home == "" {
			home, _ = os.UserHomeDir()
		}
		local = filepath.Join(home, "AppData", "Local")
	}
	return filepath.Join(local, "Microsoft", "WindowsApps")
}

// Installer downloads, verifies and installs es.exe.
type Installer struct {
	releases   driven.ReleaseSource
	client     *http.Client
	notifier   driven.Notifier
	installDir string
	goarch     string
}

// Option configures an Installer.
type Option func(*Installer)

// WithHTTPClient sets the client used for asset downloads.
func WithHTTPClient(c *http.Client) Option {
	return func(i *Installer) { i.client = c }
}

// WithNotifier reports progress and success.
func WithNotifier(n driven.Notifier) Option {
	return func(i *Installer) { i.notifier = n }
}

// WithArch overrides the target architecture.
func WithArch(goarch string) Option {
	return func(i *Installer) { i.goarch = goarch }
}

// New creates an installer writing to installDir. An empty installDir
// uses DefaultInstallDir.
func New(releases driven.ReleaseSource, installDir string, opts ...Option) *Installer {
	if installDir == "" {
		installDir = DefaultInstallDir()
	}
	i := &Installer{
		releases:   releases,
		client:     http.DefaultClient,
		installDir: installDir,
		goarch:     runtime.GOARCH,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// InstallDir returns the directory es.exe is written to.
func (i *Installer) InstallDir() string {
	return i.installDir
}

// Install fetches the latest release and installs es.exe. It returns the
// installed path. Every failure is an *domain.AcquisitionError.
func (i *Installer) Install(ctx context.Context) (string, error) {
	logger.Section("ES CLI Install")
	i.progress(ctx, "Fetching latest release info…")

	suffix, err := AssetSuffix(i.goarch)
	if err != nil {
		return "", fail(domain.ReasonUnsupportedArch, err)
	}

	rel, err := i.releases.Latest(ctx)
	if err != nil {
		return "", fail(domain.ReasonNetwork, err)
	}
	logger.Debug("Latest ES release: %s (%d assets)", rel.Tag, len(rel.Assets))

	asset, ok := selectAsset(rel.Assets, suffix)
	if !ok {
		return "", fail(domain.ReasonAssetMissing,
			fmt.Errorf("no release asset found for %s in %s", i.goarch, rel.Tag))
	}

	expected, err := parseDigest(asset)
	if err != nil {
		return "", fail(domain.ReasonDigestMissing, err)
	}

	i.progress(ctx, fmt.Sprintf("Downloading %s…", asset.Name))
	archive, err := i.download(ctx, asset.DownloadURL)
	if err != nil {
		return "", fail(domain.ReasonNetwork, err)
	}

	i.progress(ctx, "Verifying integrity…")
	sum := sha256.Sum256(archive)
	if actual := hex.EncodeToString(sum[:]); actual != expected {
		return "", fail(domain.ReasonIntegrity, &domain.IntegrityError{
			Asset:    asset.Name,
			Expected: expected,
			Actual:   actual,
		})
	}

	i.progress(ctx, "Extracting es.exe…")
	exe, err := extractExecutable(archive, ExecutableName)
	if err != nil {
		return "", fail(domain.ReasonArchive, err)
	}

	dest, err := writeAtomic(i.installDir, ExecutableName, exe)
	if err != nil {
		return "", fail(domain.ReasonInstall, err)
	}

	logger.Info("Installed es.exe %s to %s", rel.Tag, dest)
	i.notify(ctx, domain.Notification{
		Style:   domain.StyleSuccess,
		Title:   "ES CLI Installed",
		Message: fmt.Sprintf("%s installed to %s", displayTag(rel.Tag), dest),
	})
	return dest, nil
}

func fail(reason domain.AcquisitionReason, err error) error {
	logger.Warn("es.exe install failed (%s): %v", reason, err)
	return &domain.AcquisitionError{Reason: reason, Err: err}
}

func (i *Installer) progress(ctx context.Context, msg string) {
	i.notify(ctx, domain.Notification{
		Style:   domain.StyleProgress,
		Title:   "Downloading ES CLI",
		Message: msg,
	})
}

func (i *Installer) notify(ctx context.Context, n domain.Notification) {
	if i.notifier != nil {
		i.notifier.Notify(ctx, n)
	}
}

// selectAsset returns the asset whose name ends with suffix, ignoring case.
func selectAsset(assets []driven.ReleaseAsset, suffix string) (driven.ReleaseAsset, bool) {
	suffix = strings.ToLower(suffix)
	for _, a := range assets {
		if strings.HasSuffix(strings.ToLower(a.Name), suffix) {
			return a, true
		}
	}
	return driven.ReleaseAsset{}, false
}

// parseDigest returns the lower-case hex SHA-256 of asset.
func parseDigest(asset driven.ReleaseAsset) (string, error) {
	if !strings.HasPrefix(asset.Digest, digestPrefix) {
		return "", fmt.Errorf("missing or unsupported digest format for %s", asset.Name)
	}
	hexSum := strings.ToLower(strings.TrimPrefix(asset.Digest, digestPrefix))
	if b, err := hex.DecodeString(hexSum); err != nil || len(b) != sha256.Size {
		return "", fmt.Errorf("malformed sha256 digest for %s", asset.Name)
	}
	return hexSum, nil
}

// download fetches url, following redirects.
func (i *Installer) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := i.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}

	var buf bytes.Buffer
	n, err := io.Copy(&buf, io.LimitReader(resp.Body, maxDownloadSize+1))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", url, err)
	}
	if n > maxDownloadSize {
		return nil, errors.New("download exceeds size limit")
	}
	return buf.Bytes(), nil
}

func displayTag(tag string) string {
	if tag == "" || strings.HasPrefix(tag, "v") {
		return tag
	}
	return "v" + tag
}
