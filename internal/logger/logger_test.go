package logger

import (
	"bytes"
	"os"
	"sync"
	"testing"
)

// capture swaps the output for a buffer and restores the defaults when
// the test ends.
func capture(t *testing.T, verboseOn bool) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(verboseOn)
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})
	return &buf
}

func TestSetVerbose(t *testing.T) {
	capture(t, false)
	if IsVerbose() {
		t.Fatal("expected verbose to be off")
	}

	SetVerbose(true)
	if !IsVerbose() {
		t.Fatal("expected verbose to be on after SetVerbose(true)")
	}
}

func TestLevels(t *testing.T) {
	tests := []struct {
		name    string
		log     func()
		verbose bool
		want    string
	}{
		{"debug verbose", func() { Debug("es.exe args %s", "-n 100") }, true, "[DEBUG] es.exe args -n 100\n"},
		{"debug quiet", func() { Debug("hidden") }, false, ""},
		{"info verbose", func() { Info("loaded %s", "Everything64.dll") }, true, "[INFO] loaded Everything64.dll\n"},
		{"info quiet", func() { Info("hidden") }, false, ""},
		{"warn verbose", func() { Warn("result %d skipped", 1) }, true, "[WARN] result 1 skipped\n"},
		{"warn quiet", func() { Warn("hidden") }, false, ""},
		{"error verbose", func() { Error("closing: %v", "boom") }, true, "[ERROR] closing: boom\n"},
		{"error quiet", func() { Error("closing: %v", "boom") }, false, "[ERROR] closing: boom\n"},
		{"section verbose", func() { Section("Native Query") }, true, "\n=== Native Query ===\n"},
		{"section quiet", func() { Section("Native Query") }, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := capture(t, tt.verbose)
			tt.log()
			if got := buf.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConcurrentAccess(t *testing.T) {
	capture(t, true)
	SetOutput(&lockedBuffer{})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			Debug("query %d", i)
		}(i)
		go func(i int) {
			defer wg.Done()
			SetVerbose(i%2 == 0)
			_ = IsVerbose()
		}(i)
	}
	wg.Wait()
}

// lockedBuffer serialises writes from concurrent log calls.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}
