package essdk

import (
	"context"
	"fmt"
	"math"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/custodia-labs/evsearch/internal/core/domain"
	"github.com/custodia-labs/evsearch/internal/core/ports/driven"
	"github.com/custodia-labs/evsearch/internal/logger"
	"github.com/custodia-labs/evsearch/native/everything"
)

// Ensure Transport implements the interfaces.
var (
	_ driven.SearchTransport   = (*Transport)(nil)
	_ driven.ServiceInspector = (*Transport)(nil)
)

// requestFlags are the only fields computed for each result.
const requestFlags = everything.RequestFileName |
	everything.RequestPath |
	everything.RequestSize |
	everything.RequestDateCreated |
	everything.RequestDateModified

// Opener loads the SDK library at path.
type Opener func(path string) (everything.API, error)

// Transport runs queries through the Everything SDK.
type Transport struct {
	mu          sync.Mutex
	state       State
	api         everything.API
	loadErr     error
	libraryPath string
	open        Opener
}

// New creates a native transport for the library at libraryPath.
// The library is not loaded until Load or the first Search.
// A nil open uses everything.Open.
func New(libraryPath string, open Opener) *Transport {
	if open == nil {
		open = everything.Open
	}
	return &Transport{
		libraryPath: libraryPath,
		open:        open,
	}
}

// DefaultLibraryPath returns <assetsDir>/native/Everything_<arch>.dll for
// the running architecture.
func DefaultLibraryPath(assetsDir string) (string, error) {
	name, err := everything.LibraryName(runtime.GOARCH)
	if err != nil {
		return "", err
	}
	return filepath.Join(assetsDir, "native", name), nil
}

// Mode identifies the transport.
func (t *Transport) Mode() domain.TransportMode {
	return domain.TransportNative
}

// State returns the current lifecycle state.
func (t *Transport) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// LibraryPath returns the path the library is loaded from.
func (t *Transport) LibraryPath() string {
	return t.libraryPath
}

// API returns the bound function table, or nil before a successful Load.
func (t *Transport) API() everything.API {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.api
}

// Load loads and binds the library. It is idempotent: once loaded it
// returns nil, and once failed it returns the recorded error without
// trying again.
func (t *Transport) Load() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.loadLocked()
}

func (t *Transport) loadLocked() error {
	switch t.state {
	case StateDisposed:
		return domain.ErrSessionDisposed
	case StateReady, StateQueryPending, StateQueryComplete:
		return nil
	}
	if t.loadErr != nil {
		return t.loadErr
	}

	t.state = StateLoading
	logger.Debug("Loading Everything SDK from %s", t.libraryPath)

	api, err := t.open(t.libraryPath)
	if err != nil {
		t.state = StateUnloaded
		t.loadErr = fmt.Errorf("load %s: %w", t.libraryPath, err)
		logger.Warn("Everything SDK unavailable: %v", t.loadErr)
		return t.loadErr
	}

	t.api = api
	t.state = StateReady
	return nil
}

// Search runs q against the SDK. Calls are serialised; a query in flight
// always runs to completion.
func (t *Transport) Search(ctx context.Context, q domain.Query) ([]domain.FileResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.loadLocked(); err != nil {
		return nil, &domain.TransportUnavailableError{Mode: domain.TransportNative, Err: err}
	}
	if !t.state.acceptsQuery() {
		return nil, domain.ErrSessionBusy
	}

	return t.query(q)
}

func (t *Transport) query(q domain.Query) ([]domain.FileResult, error) {
	logger.Section("Native Query")
	logger.Debug("[%s] search=%q limit=%d sort=%s regex=%t", q.RequestID, q.Text, q.Limit, q.Sort, q.Regex)

	api := t.api
	t.state = StateQueryPending
	defer func() {
		api.Reset()
		t.state = StateQueryComplete
	}()

	api.Reset()
	api.SetMax(q.Limit)
	api.SetSort(SortType(q.Sort))
	api.SetRegex(q.Regex)
	api.SetRequestFlags(requestFlags)
	if err := api.SetSearch(q.Text); err != nil {
		return nil, fmt.Errorf("%w: search text: %v", domain.ErrInvalidInput, err)
	}

	start := time.Now()
	if !api.Query(true) {
		code := api.LastError()
		logger.Warn("[%s] query failed with code %d", q.RequestID, code)
		return nil, &domain.ServiceError{Code: uint32(code), Message: code.Message()}
	}

	n := api.NumResults()
	logger.Debug("[%s] %d results in %s", q.RequestID, n, time.Since(start))

	results := make([]domain.FileResult, 0, n)
	for i := uint32(0); i < n; i++ {
		r, err := readResult(api, i)
		if err != nil {
			logger.Warn("[%s] %v", q.RequestID, err)
			continue
		}
		results = append(results, r)
	}
	return results, nil
}

func readResult(api everything.API, i uint32) (domain.FileResult, error) {
	fullPath := api.ResultFullPathName(i)
	name := api.ResultFileName(i)
	switch {
	case fullPath == "":
		return domain.FileResult{}, &domain.PartialResultError{Index: i, Reason: "missing path"}
	case name == "":
		return domain.FileResult{}, &domain.PartialResultError{Index: i, Reason: "missing file name"}
	}

	r := domain.FileResult{
		Name:        name,
		FullPath:    fullPath,
		IsDirectory: api.IsFolderResult(i),
	}

	if !r.IsDirectory {
		if li, ok := api.ResultSize(i); ok && li.Value() != math.MaxUint64 {
			size := li.Value()
			r.Size = &size
		}
	}
	r.CreatedAt = fileTime(api.ResultDateCreated(i))
	r.ModifiedAt = fileTime(api.ResultDateModified(i))

	return r, nil
}

// fileTime converts an SDK date, treating zero and all-ones as unknown.
func fileTime(ft everything.FileTime, ok bool) *time.Time {
	if !ok {
		return nil
	}
	if ticks := ft.Ticks(); ticks == 0 || ticks == math.MaxUint64 {
		return nil
	}
	ts := ft.Time()
	return &ts
}

// Shutdown frees SDK memory and unloads the library. Failures are logged
// and swallowed. The transport cannot be used afterwards.
func (t *Transport) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state == StateDisposed {
		return
	}
	if t.api != nil {
		api := t.api
		bestEffort("clean up", func() error {
			api.CleanUp()
			return nil
		})
		bestEffort("release library", api.Release)
	}
	t.api = nil
	t.state = StateDisposed
}

// bestEffort runs one teardown step. A returned error is logged; a panic
// raised inside the foreign call is recovered and logged too.
func bestEffort(what string, fn func() error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Everything SDK %s panicked: %v", what, r)
		}
	}()
	if err := fn(); err != nil {
		logger.Error("Everything SDK %s failed: %v", what, err)
	}
}
