package driven

import "context"

// BinaryInstaller acquires a missing es.exe.
type BinaryInstaller interface {
	// Install downloads, verifies and installs es.exe.
	// Returns the absolute path of the installed executable.
	Install(ctx context.Context) (string, error)
}

// ReleaseAsset is one downloadable file of a release.
type ReleaseAsset struct {
	Name        string
	DownloadURL string

	// Digest is "<algorithm>:<hex>", e.g. "sha256:ab12...".
	Digest string
}

// Release is the metadata of a published release.
type Release struct {
	Tag    string
	Assets []ReleaseAsset
}

// ReleaseSource provides release metadata.
type ReleaseSource interface {
	// Latest returns the most recent release.
	Latest(ctx context.Context) (*Release, error)
}
