package escli

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// Command is one process invocation.
type Command struct {
	// Path is the program to run, resolved through PATH when not absolute.
	Path string

	// Args are the arguments after the program name.
	Args []string

	// CmdLine, when set, is passed verbatim as the Windows command line.
	// cmd.exe does not follow the argv quoting rules, so the codepage
	// wrapper supplies its own.
	CmdLine string
}

// ExitError reports a process that ran and exited with a non-zero code.
type ExitError struct {
	Code   int
	Stderr string
}

func (e *ExitError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("exit status %d: %s", e.Code, e.Stderr)
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Runner executes a command and returns its standard output.
type Runner interface {
	Run(ctx context.Context, cmd Command) ([]byte, error)
}

// ExecRunner runs commands with os/exec. Cancelling ctx kills the process.
type ExecRunner struct{}

// Run implements Runner.
func (ExecRunner) Run(ctx context.Context, c Command) ([]byte, error) {
	cmd := exec.CommandContext(ctx, c.Path, c.Args...)
	if c.CmdLine != "" {
		setCmdLine(cmd, c.CmdLine)
	}

	out, err := cmd.Output()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return out, &ExitError{Code: exitErr.ExitCode(), Stderr: string(exitErr.Stderr)}
		}
		return nil, err
	}
	return out, nil
}
