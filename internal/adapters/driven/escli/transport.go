package escli

import (
	"context"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/evsearch/internal/core/domain"
	"github.com/custodia-labs/evsearch/internal/core/ports/driven"
	"github.com/custodia-labs/evsearch/internal/logger"
)

// Ensure Transport implements the interface.
var _ driven.SearchTransport = (*Transport)(nil)

// DefaultStatWorkers bounds concurrent directory checks per query.
const DefaultStatWorkers = 16

const installMessage = "Everything's command-line tool (es.exe) was not found.\n\n" +
	"Would you like to download and install it from GitHub?"

// InstallPrompt asks whether es.exe should be downloaded.
var InstallPrompt = domain.Prompt{
	Title:   "ES CLI Not Found",
	Message: installMessage,
	Accept:  "Download",
	Dismiss: "Cancel",
}

// Config holds CLI transport options.
type Config struct {
	// UTF8Console runs es.exe through cmd.exe with code page 65001.
	UTF8Console bool

	// Location is the zone es.exe timestamps are read in.
	// Nil means time.Local.
	Location *time.Location

	// StatWorkers bounds concurrent directory checks.
	// Zero means DefaultStatWorkers.
	StatWorkers int
}

// Transport runs queries through es.exe.
type Transport struct {
	runner    Runner
	fs        driven.FileSystem
	prompter  driven.Prompter
	installer driven.BinaryInstaller
	cfg       Config

	mu                   sync.Mutex
	acquisitionAttempted bool
}

// New creates a CLI transport. prompter and installer may be nil, in
// which case a missing es.exe is reported without an install offer.
func New(
	runner Runner,
	fsys driven.FileSystem,
	prompter driven.Prompter,
	installer driven.BinaryInstaller,
	cfg Config,
) *Transport {
	if runner == nil {
		runner = ExecRunner{}
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.StatWorkers <= 0 {
		cfg.StatWorkers = DefaultStatWorkers
	}
	return &Transport{
		runner:    runner,
		fs:        fsys,
		prompter:  prompter,
		installer: installer,
		cfg:       cfg,
	}
}

// Mode identifies the transport.
func (t *Transport) Mode() domain.TransportMode {
	return domain.TransportCLI
}

// AcquisitionAttempted reports whether an install has been offered in
// this process.
func (t *Transport) AcquisitionAttempted() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.acquisitionAttempted
}

// Search runs q through es.exe. A missing es.exe is recovered from at most
// once per process by installing it and retrying with the installed path.
func (t *Transport) Search(ctx context.Context, q domain.Query) ([]domain.FileResult, error) {
	results, err := t.run(ctx, q)
	if err == nil || !isNotFound(err) {
		return results, err
	}

	if q.ExecutablePath != "" {
		return nil, &domain.TransportUnavailableError{
			Mode:         domain.TransportCLI,
			OverridePath: q.ExecutablePath,
			Err:          err,
		}
	}

	installed, recoverErr := t.recover(ctx, q.RequestID)
	if recoverErr != nil {
		return nil, recoverErr
	}
	if installed == "" {
		return nil, unavailable(err)
	}

	logger.Info("[%s] retrying with %s", q.RequestID, installed)
	q.ExecutablePath = installed
	results, err = t.run(ctx, q)
	if err != nil && isNotFound(err) {
		return nil, unavailable(err)
	}
	return results, err
}

// recover offers to install es.exe the first time it is missing. It
// returns the installed path, or "" when the offer was skipped or declined.
func (t *Transport) recover(ctx context.Context, requestID string) (string, error) {
	if !t.markAttempted() {
		logger.Debug("[%s] es.exe install already offered", requestID)
		return "", nil
	}
	if t.prompter == nil || t.installer == nil {
		return "", nil
	}

	accepted, err := t.prompter.Confirm(ctx, InstallPrompt)
	if err != nil {
		logger.Warn("[%s] install prompt failed: %v", requestID, err)
		return "", nil
	}
	if !accepted {
		logger.Info("[%s] es.exe install declined", requestID)
		return "", nil
	}

	return t.installer.Install(ctx)
}

// markAttempted sets the attempted flag and reports whether this caller
// set it.
func (t *Transport) markAttempted() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.acquisitionAttempted {
		return false
	}
	t.acquisitionAttempted = true
	return true
}

func unavailable(err error) error {
	return &domain.TransportUnavailableError{Mode: domain.TransportCLI, Err: err}
}

func (t *Transport) run(ctx context.Context, q domain.Query) ([]domain.FileResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	exe := q.ExecutablePath
	if exe == "" {
		exe = DefaultExecutable
	}
	args := BuildArgs(q)

	cmd := Command{Path: exe, Args: args}
	if t.cfg.UTF8Console {
		cmd = utf8Command(exe, args)
	}

	logger.Section("CLI Query")
	logger.Debug("[%s] %s %s", q.RequestID, exe, strings.Join(args, " "))

	start := time.Now()
	out, err := t.runner.Run(ctx, cmd)
	if err != nil {
		return nil, classify(err)
	}

	lines := DataLines(DecodeOutput(out))
	logger.Debug("[%s] %d rows in %s", q.RequestID, len(lines), time.Since(start))

	results := make([]domain.FileResult, len(lines))
	for i, line := range lines {
		fields, ok := DecodeLine(line)
		if !ok {
			logger.Warn("[%s] row %d: %v: %q", q.RequestID, i, domain.ErrMalformedOutput, line)
		}
		results[i] = fields.ToResult(t.cfg.Location)
	}

	t.markDirectories(ctx, results)
	return results, nil
}

// markDirectories stats every result concurrently and flags directories.
// A stat failure leaves the result marked as a file.
func (t *Transport) markDirectories(ctx context.Context, results []domain.FileResult) {
	if t.fs == nil {
		return
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(t.cfg.StatWorkers)
	for i := range results {
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			info, err := t.fs.Stat(results[i].FullPath)
			if err != nil {
				return nil
			}
			if info.IsDir() {
				results[i].IsDirectory = true
				results[i].Size = nil
			}
			return nil
		})
	}
	_ = g.Wait()
}
