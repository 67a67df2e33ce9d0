package driven

import (
	"context"

	"github.com/custodia-labs/evsearch/internal/core/domain"
)

// SearchTransport executes one query against the index service.
// Implementations return typed domain errors; they never notify the user.
type SearchTransport interface {
	// Mode identifies the transport.
	Mode() domain.TransportMode

	// Search runs the query and returns normalised results in the
	// service's order.
	Search(ctx context.Context, q domain.Query) ([]domain.FileResult, error)
}

// ServiceInspector reports details of the index service.
type ServiceInspector interface {
	Info() (*domain.ServiceInfo, error)
}
