package domain

import "time"

// AppSettings holds all persisted preferences.
type AppSettings struct {
	Search SearchSettings
	CLI    CLISettings
	Native NativeSettings
	GitHub GitHubSettings
}

// SearchSettings configures options shared by both transports.
type SearchSettings struct {
	// Mode selects the transport.
	Mode TransportMode

	// MaxResults caps the number of results per query.
	MaxResults int

	// Sort is the default result order.
	Sort SortOrder

	// Regex treats search text as a regular expression.
	Regex bool

	// MinChars is the minimum search length.
	MinChars int
}

// CLISettings configures the es.exe transport.
type CLISettings struct {
	// Path overrides the es.exe location. Empty uses PATH lookup.
	Path string

	// ExtraArgs are appended to every es.exe invocation.
	ExtraArgs string

	// UTF8Console runs es.exe under "chcp 65001" so non-ASCII names survive.
	UTF8Console bool

	// InstallDir is where a downloaded es.exe is placed.
	// Empty uses %LOCALAPPDATA%\Microsoft\WindowsApps.
	InstallDir string

	// AutoInstall answers the download prompt without asking.
	// Used when no terminal is attached (e.g. the MCP server).
	AutoInstall bool

	// DateLocation is the IANA zone es.exe dates are interpreted in.
	// Empty uses the local zone.
	DateLocation string
}

// NativeSettings configures the Everything SDK transport.
type NativeSettings struct {
	// LibraryPath overrides the SDK library location.
	LibraryPath string

	// AssetsDir contains native/Everything_<arch>.dll when LibraryPath is empty.
	AssetsDir string
}

// GitHubSettings configures release metadata lookups.
type GitHubSettings struct {
	// Token is an optional API token to lift anonymous rate limits.
	Token string
}

// DefaultAppSettings returns default settings.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Search: SearchSettings{
			Mode:       TransportCLI,
			MaxResults: DefaultMaxResults,
			Sort:       DefaultSortOrder(),
			MinChars:   1,
		},
		CLI: CLISettings{
			UTF8Console: true,
		},
	}
}

// QueryOptions derives per-search options from the settings.
func (s AppSettings) QueryOptions() QueryOptions {
	opts := QueryOptions{
		Mode:       s.Search.Mode,
		MaxResults: s.Search.MaxResults,
		Sort:       s.Search.Sort,
		Regex:      s.Search.Regex,
		MinChars:   s.Search.MinChars,
	}
	if s.Search.Mode == TransportCLI {
		opts.ExtraArgs = s.CLI.ExtraArgs
		opts.ExecutablePath = s.CLI.Path
	}
	return opts
}

// LoadLocation resolves an IANA zone name. Empty means the local zone.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" {
		return time.Local, nil
	}
	return time.LoadLocation(name)
}
