package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change the settings stored in ~/.evsearch/config.toml.

Use "settings keys" to list every key and "settings set" to change one.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Long: `Change one setting and save it immediately.

Examples:
  evsearch settings set search.mode native
  evsearch settings set search.sort date-modified-descending
  evsearch settings set cli.extra_args "-path 'C:\Users'"`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List setting keys",
	RunE:  runSettingsKeys,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsKeysCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Search]")
	cmd.Printf("  Mode: %s\n", settings.Search.Mode.Description())
	cmd.Printf("  Max results: %d\n", settings.Search.MaxResults)
	cmd.Printf("  Sort: %s\n", settings.Search.Sort)
	cmd.Printf("  Regex: %t\n", settings.Search.Regex)
	cmd.Printf("  Min chars: %d\n", settings.Search.MinChars)
	cmd.Println()

	cmd.Println("[CLI]")
	cmd.Printf("  Path: %s\n", orDefault(settings.CLI.Path, "(PATH lookup)"))
	cmd.Printf("  Extra args: %s\n", orDefault(settings.CLI.ExtraArgs, "(none)"))
	cmd.Printf("  UTF-8 console: %t\n", settings.CLI.UTF8Console)
	cmd.Printf("  Install dir: %s\n", orDefault(settings.CLI.InstallDir, "(default)"))
	cmd.Printf("  Auto install: %t\n", settings.CLI.AutoInstall)
	cmd.Printf("  Date location: %s\n", orDefault(settings.CLI.DateLocation, "(local)"))
	cmd.Println()

	cmd.Println("[Native]")
	cmd.Printf("  Library path: %s\n", orDefault(settings.Native.LibraryPath, "(bundled)"))
	cmd.Printf("  Assets dir: %s\n", orDefault(settings.Native.AssetsDir, "(next to executable)"))
	cmd.Println()

	cmd.Println("[GitHub]")
	if settings.GitHub.Token != "" {
		cmd.Printf("  Token: %s\n", maskToken(settings.GitHub.Token))
	} else {
		cmd.Println("  Token: (not set)")
	}

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.Set(args[0], args[1]); err != nil {
		return fmt.Errorf("failed to set %s: %w", args[0], err)
	}

	cmd.Printf("%s updated.\n", args[0])
	return nil
}

func runSettingsKeys(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	for _, key := range settingsService.Keys() {
		cmd.Println(key)
	}
	return nil
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

// maskToken masks a token for display.
func maskToken(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
