package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/evsearch/internal/core/domain"
	"github.com/custodia-labs/evsearch/internal/core/ports/driven"
	"github.com/custodia-labs/evsearch/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keySearchMode       = "search.mode"
	keySearchMaxResults = "search.max_results"
	keySearchSort       = "search.sort"
	keySearchRegex      = "search.regex"
	keySearchMinChars   = "search.min_chars"
	keyCLIPath          = "cli.path"
	keyCLIExtraArgs     = "cli.extra_args"
	keyCLIUTF8Console   = "cli.utf8_console"
	keyCLIInstallDir    = "cli.install_dir"
	keyCLIAutoInstall   = "cli.auto_install"
	keyCLIDateLocation  = "cli.date_location"
	keyNativeLibrary    = "native.library_path"
	keyNativeAssetsDir  = "native.assets_dir"
	keyGitHubToken      = "github.token"
)

type keyKind int

const (
	kindString keyKind = iota
	kindInt
	kindBool
	kindMode
	kindSort
	kindLocation
)

// settingKeys lists every supported key in display order.
var settingKeys = []struct {
	key  string
	kind keyKind
}{
	{keySearchMode, kindMode},
	{keySearchMaxResults, kindInt},
	{keySearchSort, kindSort},
	{keySearchRegex, kindBool},
	{keySearchMinChars, kindInt},
	{keyCLIPath, kindString},
	{keyCLIExtraArgs, kindString},
	{keyCLIUTF8Console, kindBool},
	{keyCLIInstallDir, kindString},
	{keyCLIAutoInstall, kindBool},
	{keyCLIDateLocation, kindLocation},
	{keyNativeLibrary, kindString},
	{keyNativeAssetsDir, kindString},
	{keyGitHubToken, kindString},
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings. Missing or invalid values
// fall back to the defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Search: domain.SearchSettings{
			Mode:       s.getMode(defaults.Search.Mode),
			MaxResults: s.getInt(keySearchMaxResults, defaults.Search.MaxResults),
			Sort:       s.getSort(defaults.Search.Sort),
			Regex:      s.getBool(keySearchRegex, defaults.Search.Regex),
			MinChars:   s.getInt(keySearchMinChars, defaults.Search.MinChars),
		},
		CLI: domain.CLISettings{
			Path:         s.configStore.GetString(keyCLIPath),
			ExtraArgs:    s.configStore.GetString(keyCLIExtraArgs),
			UTF8Console:  s.getBool(keyCLIUTF8Console, defaults.CLI.UTF8Console),
			InstallDir:   s.configStore.GetString(keyCLIInstallDir),
			AutoInstall:  s.getBool(keyCLIAutoInstall, defaults.CLI.AutoInstall),
			DateLocation: s.configStore.GetString(keyCLIDateLocation),
		},
		Native: domain.NativeSettings{
			LibraryPath: s.configStore.GetString(keyNativeLibrary),
			AssetsDir:   s.configStore.GetString(keyNativeAssetsDir),
		},
		GitHub: domain.GitHubSettings{
			Token: s.configStore.GetString(keyGitHubToken),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	values := []struct {
		key   string
		value any
	}{
		{keySearchMode, settings.Search.Mode.String()},
		{keySearchMaxResults, settings.Search.MaxResults},
		{keySearchSort, settings.Search.Sort.String()},
		{keySearchRegex, settings.Search.Regex},
		{keySearchMinChars, settings.Search.MinChars},
		{keyCLIPath, settings.CLI.Path},
		{keyCLIExtraArgs, settings.CLI.ExtraArgs},
		{keyCLIUTF8Console, settings.CLI.UTF8Console},
		{keyCLIInstallDir, settings.CLI.InstallDir},
		{keyCLIAutoInstall, settings.CLI.AutoInstall},
		{keyCLIDateLocation, settings.CLI.DateLocation},
		{keyNativeLibrary, settings.Native.LibraryPath},
		{keyNativeAssetsDir, settings.Native.AssetsDir},
	}

	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}

	if settings.GitHub.Token != "" {
		if err := s.configStore.Set(keyGitHubToken, settings.GitHub.Token); err != nil {
			return fmt.Errorf("save %s: %w", keyGitHubToken, err)
		}
	}

	return nil
}

// Set validates value for key and stores it.
func (s *SettingsService) Set(key, value string) error {
	kind, ok := lookupKind(key)
	if !ok {
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	parsed, err := parseValue(kind, strings.TrimSpace(value))
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, key, err)
	}

	if err := s.configStore.Set(key, parsed); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Keys lists the supported config keys.
func (s *SettingsService) Keys() []string {
	keys := make([]string, len(settingKeys))
	for i, k := range settingKeys {
		keys[i] = k.key
	}
	return keys
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func lookupKind(key string) (keyKind, bool) {
	for _, k := range settingKeys {
		if k.key == key {
			return k.kind, true
		}
	}
	return 0, false
}

func parseValue(kind keyKind, value string) (any, error) {
	switch kind {
	case kindInt:
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("not an integer: %q", value)
		}
		if n < 0 {
			return nil, fmt.Errorf("must not be negative: %d", n)
		}
		return n, nil
	case kindBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("not a boolean: %q", value)
		}
		return b, nil
	case kindMode:
		mode := domain.TransportMode(strings.ToLower(value))
		if !mode.IsValid() {
			return nil, fmt.Errorf("unknown mode %q (want cli or native)", value)
		}
		return mode.String(), nil
	case kindSort:
		order, ok := domain.ParseSortOrder(value)
		if !ok {
			return nil, fmt.Errorf("unknown sort %q", value)
		}
		return order.String(), nil
	case kindLocation:
		if _, err := domain.LoadLocation(value); err != nil {
			return nil, err
		}
		return value, nil
	default:
		return value, nil
	}
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	val := s.configStore.GetInt(key)
	if val < 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getMode(defaultVal domain.TransportMode) domain.TransportMode {
	mode := domain.TransportMode(s.configStore.GetString(keySearchMode))
	if !mode.IsValid() {
		return defaultVal
	}
	return mode
}

func (s *SettingsService) getSort(defaultVal domain.SortOrder) domain.SortOrder {
	order, ok := domain.ParseSortOrder(s.configStore.GetString(keySearchSort))
	if !ok {
		return defaultVal
	}
	return order
}
