package mcp

import (
	"context"
	"sync"

	"github.com/custodia-labs/evsearch/internal/core/domain"
)

// mockSearchService is a mock implementation of driving.SearchService.
// It raises its notes through notifier, as the real facade does.
type mockSearchService struct {
	results  []domain.FileResult
	notes    []domain.Notification
	notifier interface {
		Notify(context.Context, domain.Notification)
	}

	mu       sync.Mutex
	lastText string
	lastOpts domain.QueryOptions
	lastDir  string
}

func (m *mockSearchService) Search(ctx context.Context, text string, opts domain.QueryOptions) []domain.FileResult {
	m.mu.Lock()
	m.lastText, m.lastOpts = text, opts
	m.mu.Unlock()
	m.raise(ctx)
	return m.results
}

func (m *mockSearchService) ListDirectory(ctx context.Context, path string) []domain.FileResult {
	m.mu.Lock()
	m.lastDir = path
	m.mu.Unlock()
	m.raise(ctx)
	return m.results
}

func (m *mockSearchService) raise(ctx context.Context) {
	if m.notifier == nil {
		return
	}
	for _, n := range m.notes {
		m.notifier.Notify(ctx, n)
	}
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings domain.AppSettings
	err      error
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	if m.err != nil {
		return nil, m.err
	}
	s := m.settings
	return &s, nil
}

func (m *mockSettingsService) Save(_ *domain.AppSettings) error { return m.err }
func (m *mockSettingsService) Set(_, _ string) error            { return m.err }
func (m *mockSettingsService) Keys() []string                   { return nil }
func (m *mockSettingsService) GetDefaults() domain.AppSettings  { return domain.DefaultAppSettings() }

// mockInspector is a mock implementation of driven.ServiceInspector.
type mockInspector struct {
	info *domain.ServiceInfo
	err  error
}

func (m *mockInspector) Info() (*domain.ServiceInfo, error) {
	return m.info, m.err
}
