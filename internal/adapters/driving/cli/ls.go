package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/evsearch/internal/core/domain"
)

var (
	lsMatch string
	lsJSON  bool
)

var lsCmd = &cobra.Command{
	Use:   "ls [directory]",
	Short: "List a directory, folders first",
	Long: `Lists the entries of a directory from the local file system (not the
index). Folders come first, then files, each group ordered by name.
Entries that cannot be read are skipped.

Use --match to keep only names matching a glob such as "*.{go,md}".`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLs,
}

func init() {
	lsCmd.Flags().StringVar(&lsMatch, "match", "", "glob pattern applied to entry names")
	lsCmd.Flags().BoolVar(&lsJSON, "json", false, "output entries as JSON")
	rootCmd.AddCommand(lsCmd)
}

func runLs(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	dir := "."
	if len(args) > 0 {
		dir = args[0]
	} else if wd, err := os.Getwd(); err == nil {
		dir = wd
	}

	if lsMatch != "" && !doublestar.ValidatePattern(lsMatch) {
		return fmt.Errorf("%w: bad pattern %q", domain.ErrInvalidInput, lsMatch)
	}

	entries := filterNames(searchService.ListDirectory(cmd.Context(), dir), lsMatch)

	if lsJSON {
		return outputJSON(cmd, entries)
	}
	return outputTable(cmd, entries)
}

// filterNames keeps entries whose name matches pattern.
// An empty pattern keeps everything.
func filterNames(entries []domain.FileResult, pattern string) []domain.FileResult {
	if pattern == "" {
		return entries
	}
	kept := entries[:0:0]
	for _, e := range entries {
		if ok, _ := doublestar.Match(pattern, e.Name); ok {
			kept = append(kept, e)
		}
	}
	return kept
}
