package domain

// NotificationStyle mirrors the states of a toast.
type NotificationStyle int

// Notification styles.
const (
	// StyleFailure reports an error the user should act on.
	StyleFailure NotificationStyle = iota

	// StyleSuccess reports a completed operation.
	StyleSuccess

	// StyleProgress reports an operation still running.
	StyleProgress
)

// String returns the string representation.
func (s NotificationStyle) String() string {
	switch s {
	case StyleFailure:
		return "failure"
	case StyleSuccess:
		return "success"
	case StyleProgress:
		return "progress"
	default:
		return "unknown"
	}
}

// Notification is a user-visible message raised outside the return path.
type Notification struct {
	Style   NotificationStyle
	Title   string
	Message string
}

// Prompt is a yes/no question for the user.
type Prompt struct {
	Title   string
	Message string

	// Accept labels the affirmative choice.
	Accept string

	// Dismiss labels the negative choice.
	Dismiss string
}

// AcceptLabel returns Accept, or "Yes" when unset.
func (p Prompt) AcceptLabel() string {
	if p.Accept == "" {
		return "Yes"
	}
	return p.Accept
}

// DismissLabel returns Dismiss, or "No" when unset.
func (p Prompt) DismissLabel() string {
	if p.Dismiss == "" {
		return "No"
	}
	return p.Dismiss
}
