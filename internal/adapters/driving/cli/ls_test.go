package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/evsearch/internal/core/domain"
)

func TestLsCmd_ListsDirectory(t *testing.T) {
	ts := setupTestServices(t, nil)
	ts.search.results = []domain.FileResult{
		{Name: "src", FullPath: `C:\repo\src`, IsDirectory: true},
		{Name: "go.mod", FullPath: `C:\repo\go.mod`},
	}

	out, err := execute(t, "ls", `C:\repo`)

	require.NoError(t, err)
	assert.Equal(t, `C:\repo`, ts.search.lastDir)
	assert.Contains(t, out, "src/")
	assert.Contains(t, out, "go.mod")
}

func TestLsCmd_DefaultsToWorkingDirectory(t *testing.T) {
	ts := setupTestServices(t, nil)

	_, err := execute(t, "ls")

	require.NoError(t, err)
	assert.NotEmpty(t, ts.search.lastDir)
}

func TestLsCmd_Match(t *testing.T) {
	ts := setupTestServices(t, nil)
	ts.search.results = []domain.FileResult{
		{Name: "main.go", FullPath: "/r/main.go"},
		{Name: "README.md", FullPath: "/r/README.md"},
		{Name: "go.sum", FullPath: "/r/go.sum"},
	}

	out, err := execute(t, "ls", "--match", "*.{go,md}", "/r")

	require.NoError(t, err)
	assert.Contains(t, out, "main.go")
	assert.Contains(t, out, "README.md")
	assert.NotContains(t, out, "go.sum")
}

func TestLsCmd_BadPattern(t *testing.T) {
	setupTestServices(t, nil)

	_, err := execute(t, "ls", "--match", "[", "/r")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestFilterNames(t *testing.T) {
	entries := []domain.FileResult{{Name: "a.txt"}, {Name: "b.log"}}

	assert.Equal(t, entries, filterNames(entries, ""))
	assert.Equal(t, []domain.FileResult{{Name: "b.log"}}, filterNames(entries, "*.log"))
	assert.Empty(t, filterNames(entries, "*.exe"))
}
