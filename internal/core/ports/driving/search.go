package driving

import (
	"context"

	"github.com/custodia-labs/evsearch/internal/core/domain"
)

// SearchService provides search capabilities to external actors.
// Neither method returns an error: failures are reported through the
// notifier and yield an empty (or partial) list.
type SearchService interface {
	// Search queries the index service using the transport in opts.Mode.
	Search(ctx context.Context, text string, opts domain.QueryOptions) []domain.FileResult

	// ListDirectory lists path with directories first, then by name.
	ListDirectory(ctx context.Context, path string) []domain.FileResult
}
