// Package app assembles the adapters and services for one process.
package app

import (
	"context"
	"os"
	"path/filepath"

	"github.com/custodia-labs/evsearch/internal/adapters/driven/config/file"
	"github.com/custodia-labs/evsearch/internal/adapters/driven/escli"
	"github.com/custodia-labs/evsearch/internal/adapters/driven/essdk"
	"github.com/custodia-labs/evsearch/internal/adapters/driven/installer"
	"github.com/custodia-labs/evsearch/internal/adapters/driven/localfs"
	"github.com/custodia-labs/evsearch/internal/adapters/driven/notify"
	"github.com/custodia-labs/evsearch/internal/core/domain"
	"github.com/custodia-labs/evsearch/internal/core/ports/driven"
	"github.com/custodia-labs/evsearch/internal/core/services"
	"github.com/custodia-labs/evsearch/internal/logger"
)

// Options configures New.
type Options struct {
	// ConfigDir holds config.toml. Empty uses ~/.evsearch.
	ConfigDir string

	// Interactive is false when stdin and stdout carry a protocol, as
	// under the MCP server. Prompts are then answered from cli.auto_install
	// and notifications go to the log.
	Interactive bool
}

// App holds the wired services and the adapters that need teardown.
type App struct {
	Store     *file.ConfigStore
	Settings  *services.SettingsService
	Search    *services.SearchService
	Native    *essdk.Transport
	CLI       *escli.Transport
	Installer *installer.Installer
	Notifier  driven.Notifier

	watcher *file.Watcher
}

// New loads settings and wires every adapter. Nothing is spawned or
// loaded until the first query.
func New(opts Options) (*App, error) {
	store, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, err
	}
	settingsSvc := services.NewSettingsService(store)
	settings, err := settingsSvc.Get()
	if err != nil {
		return nil, err
	}

	var (
		notifier driven.Notifier
		prompter driven.Prompter
	)
	if opts.Interactive {
		notifier = notify.NewTerminalNotifier(os.Stderr, notify.NewStyles(nil))
		prompter = notify.NewTerminalPrompter()
		if settings.CLI.AutoInstall {
			prompter = notify.StaticPrompter(true)
		}
	} else {
		notifier = notify.LogNotifier{}
		prompter = notify.StaticPrompter(settings.CLI.AutoInstall)
	}

	releases, err := installer.NewGitHubReleases(settings.GitHub.Token)
	if err != nil {
		return nil, err
	}
	installDir := settings.CLI.InstallDir
	if installDir == "" {
		installDir = installer.DefaultInstallDir()
	}
	inst := installer.New(releases, installDir, installer.WithNotifier(notifier))

	loc, err := domain.LoadLocation(settings.CLI.DateLocation)
	if err != nil {
		logger.Warn("cli.date_location %q: %v; using local time", settings.CLI.DateLocation, err)
		loc = nil
	}

	fsys := localfs.New()
	cliTransport := escli.New(nil, fsys, prompter, inst, escli.Config{
		UTF8Console: settings.CLI.UTF8Console,
		Location:    loc,
	})
	nativeTransport := essdk.New(libraryPath(settings.Native), nil)

	return &App{
		Store:     store,
		Settings:  settingsSvc,
		Search:    services.NewSearchService(fsys, notifier, cliTransport, nativeTransport),
		Native:    nativeTransport,
		CLI:       cliTransport,
		Installer: inst,
		Notifier:  notifier,
	}, nil
}

// QueryOptions returns per-search options from the current settings.
// Settings are re-read so a reloaded config file takes effect.
func (a *App) QueryOptions() domain.QueryOptions {
	settings, err := a.Settings.Get()
	if err != nil {
		return domain.DefaultAppSettings().QueryOptions()
	}
	return settings.QueryOptions()
}

// Watch reloads the config file whenever it changes until ctx is done
// or Close is called.
func (a *App) Watch(ctx context.Context) error {
	w, err := file.NewWatcher(a.Store, 0, func() {
		logger.Info("settings reloaded from %s", a.Store.Path())
	})
	if err != nil {
		return err
	}
	a.watcher = w
	w.Start(ctx)
	return nil
}

// Close releases the native library and stops the watcher.
func (a *App) Close() error {
	a.Native.Shutdown()
	if a.watcher != nil {
		return a.watcher.Close()
	}
	return nil
}

// libraryPath resolves the SDK library: an explicit path wins, then the
// assets directory, then assets/ next to the executable.
func libraryPath(s domain.NativeSettings) string {
	if s.LibraryPath != "" {
		return s.LibraryPath
	}
	dir := s.AssetsDir
	if dir == "" {
		dir = defaultAssetsDir()
	}
	path, err := essdk.DefaultLibraryPath(dir)
	if err != nil {
		logger.Debug("no SDK library for this platform: %v", err)
		return ""
	}
	return path
}

func defaultAssetsDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "assets"
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), "assets")
}

