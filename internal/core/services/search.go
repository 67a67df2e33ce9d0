package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/shlex"
	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/custodia-labs/evsearch/internal/core/domain"
	"github.com/custodia-labs/evsearch/internal/core/ports/driven"
	"github.com/custodia-labs/evsearch/internal/core/ports/driving"
	"github.com/custodia-labs/evsearch/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// Notification titles and messages shown for failed operations.
const (
	titleCustomPathNotFound = "Custom es.exe path not found"
	titleCLINotFound        = "'es.exe' not found"
	titleSDKUnavailable     = "SDK Not Available"
	titleDownloadFailed     = "Failed to Download ES CLI"
	titleIntegrityFailed    = "ES CLI Integrity Check Failed"
	titleSearchFailed       = "Error Searching Files"
	titleReadDirFailed      = "Error Reading Directory"

	msgCLINotFound     = "Please ensure Everything's command-line tool is in your PATH or set a custom path in preferences."
	msgSDKUnavailable  = "Failed to load Everything SDK. Please use CLI mode instead."
	msgUnsupportedMode = "Unsupported transport mode: %q"
)

// SearchService is the query facade. It selects a transport per call and
// turns every failure into a notification and an empty result list.
type SearchService struct {
	transports map[domain.TransportMode]driven.SearchTransport
	fs         driven.FileSystem
	notifier   driven.Notifier
	lang       language.Tag
}

// NewSearchService creates a new search service. Transports are keyed by
// their Mode; a later transport with the same mode replaces an earlier one.
func NewSearchService(
	fsys driven.FileSystem,
	notifier driven.Notifier,
	transports ...driven.SearchTransport,
) *SearchService {
	s := &SearchService{
		transports: make(map[domain.TransportMode]driven.SearchTransport, len(transports)),
		fs:         fsys,
		notifier:   notifier,
		lang:       language.Und,
	}
	for _, t := range transports {
		s.transports[t.Mode()] = t
	}
	return s
}

// SetLanguage sets the collation used to order directory listings.
func (s *SearchService) SetLanguage(tag language.Tag) {
	s.lang = tag
}

// Search runs text through the transport selected by opts.Mode.
func (s *SearchService) Search(ctx context.Context, text string, opts domain.QueryOptions) []domain.FileResult {
	if opts.BelowMinimum(strings.TrimSpace(text)) {
		return []domain.FileResult{}
	}

	mode := opts.Mode
	if mode == "" {
		mode = domain.TransportCLI
	}

	q := NewQuery(text, opts)
	logger.Section("Search")
	logger.Debug("[%s] mode=%s text=%q", q.RequestID, mode, q.Text)

	transport, ok := s.transports[mode]
	if !ok {
		s.notify(ctx, domain.Notification{
			Style:   domain.StyleFailure,
			Title:   titleSearchFailed,
			Message: fmt.Sprintf(msgUnsupportedMode, mode),
		})
		return []domain.FileResult{}
	}

	results, err := transport.Search(ctx, q)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Debug("[%s] canceled", q.RequestID)
			return []domain.FileResult{}
		}
		logger.Warn("[%s] search failed: %v", q.RequestID, err)
		s.notify(ctx, NotificationFor(err))
		return []domain.FileResult{}
	}

	results = dedupe(results)
	logger.Debug("[%s] %d results", q.RequestID, len(results))
	return results
}

// ListDirectory lists dir with directories first, then by collated name.
// Entries that cannot be stat'ed are skipped.
func (s *SearchService) ListDirectory(ctx context.Context, dir string) []domain.FileResult {
	entries, err := s.fs.ReadDir(dir)
	if err != nil {
		logger.Warn("read directory %s: %v", dir, err)
		s.notify(ctx, domain.Notification{
			Style:   domain.StyleFailure,
			Title:   titleReadDirFailed,
			Message: err.Error(),
		})
		return []domain.FileResult{}
	}

	results := make([]domain.FileResult, 0, len(entries))
	for _, entry := range entries {
		fullPath := filepath.Join(dir, entry.Name())
		info, err := s.fs.Stat(fullPath)
		if err != nil {
			logger.Debug("skipping %s: %v", fullPath, err)
			continue
		}

		result := domain.FileResult{
			Name:        entry.Name(),
			FullPath:    fullPath,
			IsDirectory: info.IsDir(),
		}
		if info.Mode().IsRegular() {
			size := uint64(info.Size())
			result.Size = &size
		}
		modified := info.ModTime()
		result.ModifiedAt = &modified
		if created, ok := s.fs.CreatedAt(info); ok {
			result.CreatedAt = &created
		}
		results = append(results, result)
	}

	// A Collator is not safe for concurrent use.
	col := collate.New(s.lang)
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.IsDirectory != b.IsDirectory {
			return a.IsDirectory
		}
		return col.CompareString(a.Name, b.Name) < 0
	})
	return results
}

// NewQuery normalises text and opts into a transport request.
func NewQuery(text string, opts domain.QueryOptions) domain.Query {
	text = strings.TrimSpace(text)

	q := domain.Query{
		RequestID:      uuid.NewString(),
		Text:           text,
		Limit:          opts.EffectiveLimit(),
		Sort:           opts.Sort,
		Regex:          opts.Regex,
		ExtraArgs:      SplitArgs(opts.ExtraArgs),
		ExecutablePath: strings.TrimSpace(opts.ExecutablePath),
	}
	if !q.Sort.Key.IsValid() {
		q.Sort = domain.DefaultSortOrder()
	}
	if q.Regex {
		q.Terms = []string{text}
	} else {
		q.Terms = strings.Fields(text)
	}
	return q
}

// SplitArgs splits free-form arguments with POSIX shell rules, except that
// a backslash is always literal so Windows paths survive. Input the shell
// lexer rejects (an unterminated quote) falls back to whitespace.
func SplitArgs(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	args, err := shlex.Split(literalBackslashes(s))
	if err != nil {
		logger.Warn("extra args %q: %v; splitting on whitespace", s, err)
		return strings.Fields(s)
	}
	return args
}

// literalBackslashes doubles every backslash the lexer would treat as an
// escape, i.e. those outside single quotes.
func literalBackslashes(s string) string {
	var b strings.Builder
	var inSingle, inDouble bool
	for _, r := range s {
		switch {
		case r == '\'' && !inDouble:
			inSingle = !inSingle
		case r == '"' && !inSingle:
			inDouble = !inDouble
		case r == '\\' && !inSingle:
			b.WriteRune(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// NotificationFor maps a transport error to the message shown to the user.
func NotificationFor(err error) domain.Notification {
	n := domain.Notification{Style: domain.StyleFailure}

	var unavailable *domain.TransportUnavailableError
	var acquisition *domain.AcquisitionError
	switch {
	case errors.As(err, &unavailable) && unavailable.Mode == domain.TransportNative:
		n.Title = titleSDKUnavailable
		n.Message = msgSDKUnavailable
	case errors.As(err, &unavailable) && unavailable.OverridePath != "":
		n.Title = titleCustomPathNotFound
		n.Message = "Cannot find es.exe at: " + unavailable.OverridePath
	case errors.As(err, &unavailable):
		n.Title = titleCLINotFound
		n.Message = msgCLINotFound
	case domain.IsIntegrityFailure(err):
		n.Title = titleIntegrityFailed
		n.Message = integrityMessage(err)
	case errors.As(err, &acquisition):
		n.Title = titleDownloadFailed
		n.Message = acquisition.Error()
		if acquisition.Err != nil {
			n.Message = acquisition.Err.Error()
		}
	default:
		n.Title = titleSearchFailed
		n.Message = err.Error()
	}
	return n
}

func integrityMessage(err error) string {
	var integrity *domain.IntegrityError
	if errors.As(err, &integrity) {
		return integrity.Error()
	}
	return err.Error()
}

// dedupe drops repeated full paths, keeping the first occurrence.
func dedupe(results []domain.FileResult) []domain.FileResult {
	seen := make(map[string]struct{}, len(results))
	out := results[:0]
	for _, r := range results {
		if _, dup := seen[r.FullPath]; dup {
			continue
		}
		seen[r.FullPath] = struct{}{}
		out = append(out, r)
	}
	if out == nil {
		return []domain.FileResult{}
	}
	return out
}

func (s *SearchService) notify(ctx context.Context, n domain.Notification) {
	if s.notifier != nil {
		s.notifier.Notify(ctx, n)
	}
}
