package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/evsearch/internal/core/domain"
	"github.com/custodia-labs/evsearch/internal/logger"
)

var (
	searchLimit int
	searchMode  string
	searchSort  string
	searchRegex bool
	searchJSON  bool
)

var searchCmd = &cobra.Command{
	Use:   "search <query>...",
	Short: "Search file and folder names",
	Long: `Searches the Everything index by file name. Arguments are joined into
one query; whitespace-separated terms are ANDed in any order.

Defaults for the limit, sort order, transport and regex mode come from
the settings (see "evsearch settings show").`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "maximum number of results (0 = search.max_results)")
	searchCmd.Flags().StringVarP(&searchMode, "mode", "m", "", "transport: cli or native")
	searchCmd.Flags().StringVarP(&searchSort, "sort", "s", "", "sort order, e.g. date-modified-descending")
	searchCmd.Flags().BoolVarP(&searchRegex, "regex", "r", false, "treat the query as a regular expression")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	opts, err := searchOptions()
	if err != nil {
		return err
	}

	query := strings.Join(args, " ")
	logger.Section("Search")
	logger.Debug("query=%q mode=%s limit=%d sort=%s", query, opts.Mode, opts.MaxResults, opts.Sort)

	results := searchService.Search(cmd.Context(), query, opts)

	if searchJSON {
		return outputJSON(cmd, results)
	}
	return outputTable(cmd, results)
}

// searchOptions overlays the command flags on the configured defaults.
func searchOptions() (domain.QueryOptions, error) {
	settings := domain.DefaultAppSettings()
	if settingsService != nil {
		s, err := settingsService.Get()
		if err != nil {
			return domain.QueryOptions{}, fmt.Errorf("failed to get settings: %w", err)
		}
		settings = *s
	}

	if searchMode != "" {
		mode := domain.TransportMode(strings.ToLower(searchMode))
		if !mode.IsValid() {
			return domain.QueryOptions{}, fmt.Errorf("%w: unknown mode %q (use cli or native)", domain.ErrInvalidInput, searchMode)
		}
		settings.Search.Mode = mode
	}

	opts := settings.QueryOptions()
	if searchLimit > 0 {
		opts.MaxResults = searchLimit
	}
	if searchSort != "" {
		order, ok := domain.ParseSortOrder(searchSort)
		if !ok {
			return domain.QueryOptions{}, fmt.Errorf("%w: unknown sort %q", domain.ErrInvalidInput, searchSort)
		}
		opts.Sort = order
	}
	if searchRegex {
		opts.Regex = true
	}
	return opts, nil
}

// jsonResult is the JSON shape of one result.
type jsonResult struct {
	Name        string     `json:"name"`
	Path        string     `json:"path"`
	Size        *uint64    `json:"size,omitempty"`
	Created     *time.Time `json:"created,omitempty"`
	Modified    *time.Time `json:"modified,omitempty"`
	IsDirectory bool       `json:"is_directory"`
}

func outputJSON(cmd *cobra.Command, results []domain.FileResult) error {
	out := make([]jsonResult, len(results))
	for i, r := range results {
		out[i] = jsonResult{
			Name:        r.Name,
			Path:        r.FullPath,
			Size:        r.Size,
			Created:     r.CreatedAt,
			Modified:    r.ModifiedAt,
			IsDirectory: r.IsDirectory,
		}
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputTable(cmd *cobra.Command, results []domain.FileResult) error {
	if len(results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSIZE\tMODIFIED\tPATH")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", displayName(r), displaySize(r), displayTime(r.ModifiedAt), r.FullPath)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	cmd.Printf("\n%d result(s)\n", len(results))
	return nil
}

func displayName(r domain.FileResult) string {
	if r.IsDirectory {
		return r.Name + "/"
	}
	return r.Name
}

func displaySize(r domain.FileResult) string {
	if r.IsDirectory || !r.HasSize() {
		return "-"
	}
	return humanize.IBytes(r.SizeOrZero())
}

func displayTime(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return humanize.Time(*t)
}
