package cli

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/evsearch/internal/core/domain"
)

func TestSearchCmd_Use(t *testing.T) {
	assert.Equal(t, "search <query>...", searchCmd.Use)
}

func TestSearchCmd_RequiresQuery(t *testing.T) {
	setupTestServices(t, nil)

	_, err := execute(t, "search")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires at least 1 arg(s)")
}

func TestSearchCmd_HasFlags(t *testing.T) {
	limit := searchCmd.Flags().Lookup("limit")
	require.NotNil(t, limit)
	assert.Equal(t, "n", limit.Shorthand)
	assert.Equal(t, "0", limit.DefValue)

	for _, name := range []string{"mode", "sort", "regex", "json"} {
		assert.NotNil(t, searchCmd.Flags().Lookup(name), name)
	}
}

func TestSearchCmd_JoinsArgsAndUsesSettings(t *testing.T) {
	ts := setupTestServices(t, map[string]any{
		"search.max_results": 25,
		"search.sort":        "date-modified-descending",
		"cli.extra_args":     "-p",
	})

	_, err := execute(t, "search", "report", "2024")

	require.NoError(t, err)
	assert.Equal(t, "report 2024", ts.search.lastText)
	assert.Equal(t, domain.TransportCLI, ts.search.lastOpts.Mode)
	assert.Equal(t, 25, ts.search.lastOpts.MaxResults)
	assert.Equal(t, domain.SortOrder{Key: domain.SortByDateModified, Descending: true}, ts.search.lastOpts.Sort)
	assert.Equal(t, "-p", ts.search.lastOpts.ExtraArgs)
}

func TestSearchCmd_FlagsOverrideSettings(t *testing.T) {
	ts := setupTestServices(t, map[string]any{"cli.extra_args": "-p"})

	_, err := execute(t, "search", "--mode", "NATIVE", "-n", "5", "--sort", "size-ascending", "--regex", `\.log$`)

	require.NoError(t, err)
	assert.Equal(t, domain.TransportNative, ts.search.lastOpts.Mode)
	assert.Equal(t, 5, ts.search.lastOpts.MaxResults)
	assert.Equal(t, domain.SortOrder{Key: domain.SortBySize}, ts.search.lastOpts.Sort)
	assert.True(t, ts.search.lastOpts.Regex)
	assert.Empty(t, ts.search.lastOpts.ExtraArgs)
}

func TestSearchCmd_RejectsBadFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"mode", []string{"search", "--mode", "ftp", "x"}},
		{"sort", []string{"search", "--sort", "colour", "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := setupTestServices(t, nil)

			_, err := execute(t, tt.args...)

			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Empty(t, ts.search.lastText)
		})
	}
}

func TestSearchCmd_Table(t *testing.T) {
	ts := setupTestServices(t, nil)
	size := uint64(2048)
	modified := time.Now().Add(-2 * time.Hour)
	ts.search.results = []domain.FileResult{
		{Name: "notes.txt", FullPath: `C:\docs\notes.txt`, Size: &size, ModifiedAt: &modified},
		{Name: "docs", FullPath: `C:\docs`, IsDirectory: true},
	}

	out, err := execute(t, "search", "notes")

	require.NoError(t, err)
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "notes.txt")
	assert.Contains(t, out, "2.0 KiB")
	assert.Contains(t, out, "2 hours ago")
	assert.Contains(t, out, "docs/")
	assert.Contains(t, out, "2 result(s)")
}

func TestSearchCmd_NoResults(t *testing.T) {
	setupTestServices(t, nil)

	out, err := execute(t, "search", "nothing")

	require.NoError(t, err)
	assert.Contains(t, out, "No results found.")
}

func TestSearchCmd_JSON(t *testing.T) {
	ts := setupTestServices(t, nil)
	size := uint64(7)
	ts.search.results = []domain.FileResult{{Name: "a.txt", FullPath: `C:\a.txt`, Size: &size}}

	out, err := execute(t, "search", "--json", "a")

	require.NoError(t, err)
	var got []jsonResult
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, `C:\a.txt`, got[0].Path)
	assert.Equal(t, uint64(7), *got[0].Size)
	assert.Nil(t, got[0].Modified)
}

func TestSearchCmd_NotConfigured(t *testing.T) {
	setupTestServices(t, nil)
	SetServices(&Services{})

	_, err := execute(t, "search", "x")

	assert.EqualError(t, err, "search service not configured")
}
