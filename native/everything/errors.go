package everything

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedPlatform is returned by Open on platforms without the SDK.
var ErrUnsupportedPlatform = errors.New("everything: SDK is only available on Windows")

// ErrUnsupportedArch is returned when no SDK build exists for the
// current architecture.
var ErrUnsupportedArch = errors.New("everything: unsupported architecture")

// MissingExportsError reports a library that loaded but lacks exports the
// API requires. The library is released before this error is returned.
type MissingExportsError struct {
	Path    string
	Symbols []string
}

func (e *MissingExportsError) Error() string {
	return fmt.Sprintf("everything: %s is missing exports: %s", e.Path, strings.Join(e.Symbols, ", "))
}

// Message returns the human-readable description of an SDK error code.
func (c ErrorCode) Message() string {
	switch c {
	case ErrorOK:
		return "The operation completed successfully."
	case ErrorMemory:
		return "Failed to allocate memory for the search query."
	case ErrorIPC:
		return "Everything is not running."
	case ErrorRegisterClassEx:
		return "Failed to register the search query window class."
	case ErrorCreateWindow:
		return "Failed to create the search query window."
	case ErrorCreateThread:
		return "Failed to create the search query thread."
	case ErrorInvalidIndex:
		return "Invalid index. The index must be greater or equal to 0 and less than the number of visible results."
	case ErrorInvalidCall:
		return "Invalid call."
	case ErrorInvalidRequest:
		return "Invalid request data. Request data first."
	case ErrorInvalidParameter:
		return "Invalid parameter."
	default:
		return fmt.Sprintf("Unknown error code: %d", uint32(c))
	}
}
