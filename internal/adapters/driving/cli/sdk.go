package cli

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
)

var sdkCmd = &cobra.Command{
	Use:   "sdk",
	Short: "Everything SDK commands",
}

var sdkInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show SDK and service details",
	Long: `Loads the Everything SDK library and reports the service version,
whether the database is loaded, and which properties are indexed or
fast-sortable.`,
	Args: cobra.NoArgs,
	RunE: runSDKInfo,
}

func init() {
	sdkCmd.AddCommand(sdkInfoCmd)
	rootCmd.AddCommand(sdkCmd)
}

func runSDKInfo(cmd *cobra.Command, _ []string) error {
	if inspector == nil {
		return errors.New("sdk not configured")
	}

	info, err := inspector.Info()
	if err != nil {
		return fmt.Errorf("sdk info: %w", err)
	}

	cmd.Printf("Library:   %s\n", info.LibraryPath)
	cmd.Printf("Version:   %s\n", info.Version)
	cmd.Printf("Target:    %s\n", info.Target)
	cmd.Printf("DB loaded: %t\n", info.DBLoaded)
	cmd.Printf("Admin:     %t\n", info.Admin)
	cmd.Printf("AppData:   %t\n", info.AppData)
	cmd.Printf("Indexed:   %s\n", enabled(info.Indexed))
	cmd.Printf("Fast sort: %s\n", enabled(info.FastSort))
	return nil
}

// enabled lists the keys set to true, sorted.
func enabled[K ~string](m map[K]bool) string {
	var keys []string
	for k, on := range m {
		if on {
			keys = append(keys, string(k))
		}
	}
	if len(keys) == 0 {
		return "(none)"
	}
	slices.Sort(keys)
	return strings.Join(keys, ", ")
}
