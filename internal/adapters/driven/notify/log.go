package notify

import (
	"context"
	"sync"

	"github.com/custodia-labs/evsearch/internal/core/domain"
	"github.com/custodia-labs/evsearch/internal/core/ports/driven"
	"github.com/custodia-labs/evsearch/internal/logger"
)

// Ensure LogNotifier implements the interface.
var _ driven.Notifier = LogNotifier{}

// LogNotifier sends notifications to the verbose log and to any Collector
// attached to the context. It is used where no terminal is available.
type LogNotifier struct{}

// Notify implements driven.Notifier.
func (LogNotifier) Notify(ctx context.Context, n domain.Notification) {
	switch n.Style {
	case domain.StyleFailure:
		logger.Warn("%s: %s", n.Title, n.Message)
	default:
		logger.Info("%s: %s", n.Title, n.Message)
	}
	if c := CollectorFrom(ctx); c != nil {
		c.add(n)
	}
}

type collectorKey struct{}

// Collector gathers the notifications raised while serving one request.
type Collector struct {
	mu    sync.Mutex
	notes []domain.Notification
}

// WithCollector returns a context carrying a new Collector.
func WithCollector(ctx context.Context) (context.Context, *Collector) {
	c := &Collector{}
	return context.WithValue(ctx, collectorKey{}, c), c
}

// CollectorFrom returns the Collector attached to ctx, or nil.
func CollectorFrom(ctx context.Context) *Collector {
	c, _ := ctx.Value(collectorKey{}).(*Collector)
	return c
}

func (c *Collector) add(n domain.Notification) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notes = append(c.notes, n)
}

// All returns the collected notifications in order.
func (c *Collector) All() []domain.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.Notification(nil), c.notes...)
}

// Failure returns the first failure notification, if any.
func (c *Collector) Failure() (domain.Notification, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, n := range c.notes {
		if n.Style == domain.StyleFailure {
			return n, true
		}
	}
	return domain.Notification{}, false
}
