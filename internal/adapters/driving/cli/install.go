package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var installCmd = &cobra.Command{
	Use:   "install-cli",
	Short: "Download and install es.exe",
	Long: `Downloads the latest es.exe release for this architecture from
github.com/voidtools/ES, verifies its SHA-256 digest against the release
metadata and installs it to cli.install_dir.

Set github.token to avoid the anonymous API rate limit.`,
	Args: cobra.NoArgs,
	RunE: runInstall,
}

func init() {
	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, _ []string) error {
	if binaryInstaller == nil {
		return errors.New("installer not configured")
	}

	path, err := binaryInstaller.Install(cmd.Context())
	if err != nil {
		return fmt.Errorf("install failed: %w", err)
	}

	cmd.Printf("es.exe installed to %s\n", path)
	return nil
}
