package notify

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/custodia-labs/evsearch/internal/core/domain"
	"github.com/custodia-labs/evsearch/internal/core/ports/driven"
)

// Ensure TerminalNotifier implements the interface.
var _ driven.Notifier = (*TerminalNotifier)(nil)

// TerminalNotifier writes styled notifications to a terminal stream.
type TerminalNotifier struct {
	mu     sync.Mutex
	out    io.Writer
	styles *Styles
}

// NewTerminalNotifier writes to out, or os.Stderr when out is nil.
func NewTerminalNotifier(out io.Writer, styles *Styles) *TerminalNotifier {
	if out == nil {
		out = os.Stderr
	}
	if styles == nil {
		styles = NewStyles(nil)
	}
	return &TerminalNotifier{out: out, styles: styles}
}

// Notify implements driven.Notifier.
func (n *TerminalNotifier) Notify(_ context.Context, note domain.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprint(n.out, Render(n.styles, note))
}

// Render formats a notification as a title line followed by an indented
// message.
func Render(styles *Styles, note domain.Notification) string {
	style, symbol := styles.ForStyle(note.Style)

	var b strings.Builder
	b.WriteString(style.Render(symbol + " " + note.Title))
	b.WriteByte('\n')
	if msg := strings.TrimSpace(note.Message); msg != "" {
		b.WriteString(styles.Message.Render(msg))
		b.WriteByte('\n')
	}
	return b.String()
}
