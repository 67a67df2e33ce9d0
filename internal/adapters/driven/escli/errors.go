package escli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"strings"

	"github.com/custodia-labs/evsearch/internal/core/domain"
)

// errNotFound marks a run that failed because es.exe could not be started.
var errNotFound = errors.New("es.exe not found")

// exitNotRecognized is the cmd.exe exit code for an unknown command.
const exitNotRecognized = 9009

// exitMessages maps es.exe exit codes to readable messages.
var exitMessages = map[int]string{
	1: "Failed to register window class.",
	2: "Failed to create listening window.",
	3: "Out of memory.",
	4: "Expected an additional command line option with the specified switch.",
	5: "Failed to create export output file.",
	6: "Unknown switch.",
	7: "Failed to send Everything IPC a query.",
	8: "Everything IPC window not found. Please make sure Everything is running.",
}

// classify sorts a run failure into not-found, a service error, or other.
func classify(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %v", errNotFound, err)
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Code == exitNotRecognized ||
			strings.Contains(exitErr.Stderr, "not recognized") ||
			strings.Contains(exitErr.Stderr, "command not found") {
			return fmt.Errorf("%w: %v", errNotFound, err)
		}
		if msg, ok := exitMessages[exitErr.Code]; ok {
			return &domain.ServiceError{Code: uint32(exitErr.Code), Message: msg}
		}
	}
	return fmt.Errorf("run es.exe: %w", err)
}

func isNotFound(err error) bool {
	return errors.Is(err, errNotFound)
}
