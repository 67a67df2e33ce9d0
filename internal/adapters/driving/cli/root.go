// Package cli provides the evsearch command-line interface.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/evsearch/internal/core/ports/driven"
	"github.com/custodia-labs/evsearch/internal/core/ports/driving"
	"github.com/custodia-labs/evsearch/internal/logger"
)

// annotationInteractive marks commands whose stdin and stdout carry a
// protocol. Services for them are built without terminal prompts.
const annotationInteractive = "interactive"

// noServiceCommands run without building the services.
var noServiceCommands = map[string]bool{
	"version":    true,
	"help":       true,
	"completion": true,
}

// Services is the set of ports the commands drive.
type Services struct {
	Search    driving.SearchService
	Settings  driving.SettingsService
	Installer driven.BinaryInstaller
	Inspector driven.ServiceInspector

	// Watch reloads settings on config file changes until ctx is done.
	// Optional.
	Watch func(ctx context.Context) error

	// Close releases the services. Optional.
	Close func() error
}

// Builder constructs the services on first use.
type Builder func(interactive bool) (*Services, error)

var (
	version = "dev"
	verbose bool

	builder Builder
	closer  func() error

	searchService   driving.SearchService
	settingsService driving.SettingsService
	binaryInstaller driven.BinaryInstaller
	inspector       driven.ServiceInspector
	watchConfig     func(ctx context.Context) error
)

var rootCmd = &cobra.Command{
	Use:   "evsearch",
	Short: "Search file names with the Everything index",
	Long: `evsearch queries a running Everything service by file name.

Two transports are available: the es.exe command-line client (cli) and
the Everything SDK library loaded in-process (native). Choose one with
--mode or the search.mode setting.`,
	SilenceUsage:      true,
	PersistentPreRunE: buildServices,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug logs to stderr")
}

// SetBuilder registers the function that wires the services.
func SetBuilder(b Builder) {
	builder = b
}

// SetServices installs already-built services.
func SetServices(s *Services) {
	searchService = s.Search
	settingsService = s.Settings
	binaryInstaller = s.Installer
	inspector = s.Inspector
	watchConfig = s.Watch
	closer = s.Close
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command and releases the services afterwards.
func Execute(ctx context.Context) error {
	defer closeServices()
	return rootCmd.ExecuteContext(ctx)
}

func buildServices(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	if builder == nil || searchService != nil || noServiceCommands[cmd.Name()] {
		return nil
	}

	interactive := cmd.Annotations[annotationInteractive] != "false"
	logger.Debug("building services (interactive=%t)", interactive)
	s, err := builder(interactive)
	if err != nil {
		return err
	}
	SetServices(s)
	return nil
}

func closeServices() {
	if closer == nil {
		return
	}
	if err := closer(); err != nil {
		logger.Error("closing services: %v", err)
	}
	closer = nil
}
