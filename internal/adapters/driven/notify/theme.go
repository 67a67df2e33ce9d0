package notify

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/evsearch/internal/core/domain"
)

// Theme defines the colour palette for notifications and prompts.
type Theme struct {
	// Primary is the accent colour for titles and the focused button.
	Primary lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for secondary text.
	Muted lipgloss.Color

	// Success indicates positive outcomes.
	Success lipgloss.Color

	// Progress marks work in flight.
	Progress lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color

	// Border is the border colour.
	Border lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#7C3AED"), // Purple
		Foreground: lipgloss.Color("#CDD6F4"), // Light gray
		Muted:      lipgloss.Color("#6C7086"), // Medium gray
		Success:    lipgloss.Color("#A6E3A1"), // Green
		Progress:   lipgloss.Color("#06B6D4"), // Cyan
		Error:      lipgloss.Color("#F38BA8"), // Red
		Border:     lipgloss.Color("#45475A"), // Border gray
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	// Failure, Success and Progress style notification titles.
	Failure  lipgloss.Style
	Success  lipgloss.Style
	Progress lipgloss.Style

	// Message styles the notification body.
	Message lipgloss.Style

	// Title styles prompt titles.
	Title lipgloss.Style

	// Button and ActiveButton style prompt choices.
	Button       lipgloss.Style
	ActiveButton lipgloss.Style

	// Help styles key hints.
	Help lipgloss.Style

	// Box frames the prompt.
	Box lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		Failure: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Error),

		Success: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Success),

		Progress: lipgloss.NewStyle().
			Foreground(theme.Progress),

		Message: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			PaddingLeft(2),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Button: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 2),

		ActiveButton: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground).
			Background(theme.Primary).
			Padding(0, 2),

		Help: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Box: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),
	}
}

// ForStyle returns the title style and symbol for a notification style.
func (s *Styles) ForStyle(style domain.NotificationStyle) (lipgloss.Style, string) {
	switch style {
	case domain.StyleSuccess:
		return s.Success, "✓"
	case domain.StyleProgress:
		return s.Progress, "…"
	default:
		return s.Failure, "✗"
	}
}
