package driven

import (
	"context"

	"github.com/custodia-labs/evsearch/internal/core/domain"
)

// Notifier reports messages to the user outside the normal return path.
type Notifier interface {
	Notify(ctx context.Context, n domain.Notification)
}

// Prompter asks the user a yes/no question.
type Prompter interface {
	// Confirm returns true if the user accepted.
	Confirm(ctx context.Context, p domain.Prompt) (bool, error)
}
