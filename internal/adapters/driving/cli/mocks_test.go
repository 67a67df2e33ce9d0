package cli

import (
	"context"
	"testing"

	"github.com/custodia-labs/evsearch/internal/adapters/driven/config/memory"
	"github.com/custodia-labs/evsearch/internal/core/domain"
	"github.com/custodia-labs/evsearch/internal/core/services"
)

type mockSearchService struct {
	results  []domain.FileResult
	lastText string
	lastOpts domain.QueryOptions
	lastDir  string
}

func (m *mockSearchService) Search(_ context.Context, text string, opts domain.QueryOptions) []domain.FileResult {
	m.lastText, m.lastOpts = text, opts
	return m.results
}

func (m *mockSearchService) ListDirectory(_ context.Context, path string) []domain.FileResult {
	m.lastDir = path
	return m.results
}

type mockInstaller struct {
	path  string
	err   error
	calls int
}

func (m *mockInstaller) Install(context.Context) (string, error) {
	m.calls++
	return m.path, m.err
}

type mockInspector struct {
	info *domain.ServiceInfo
	err  error
}

func (m *mockInspector) Info() (*domain.ServiceInfo, error) {
	return m.info, m.err
}

type testServices struct {
	search    *mockSearchService
	settings  *services.SettingsService
	store     *memory.ConfigStore
	installer *mockInstaller
	inspector *mockInspector
}

// setupTestServices installs mocks and a real settings service over an
// in-memory store. Everything is reset when the test ends.
func setupTestServices(t *testing.T, seed map[string]any) *testServices {
	t.Helper()

	store := memory.NewConfigStore(seed)
	ts := &testServices{
		search:    &mockSearchService{},
		settings:  services.NewSettingsService(store),
		store:     store,
		installer: &mockInstaller{},
		inspector: &mockInspector{},
	}
	SetServices(&Services{
		Search:    ts.search,
		Settings:  ts.settings,
		Installer: ts.installer,
		Inspector: ts.inspector,
	})

	t.Cleanup(func() {
		SetServices(&Services{})
		builder = nil
		resetFlags()
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})
	return ts
}

func resetFlags() {
	verbose = false
	searchLimit, searchMode, searchSort = 0, "", ""
	searchRegex, searchJSON = false, false
	lsMatch, lsJSON = "", false
}
