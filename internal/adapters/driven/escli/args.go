package escli

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/custodia-labs/evsearch/internal/core/domain"
)

// DefaultExecutable is resolved through PATH when no explicit path is set.
const DefaultExecutable = "es.exe"

// BuildArgs returns the es.exe argument array for q. Each search term is
// its own argument so that es.exe ANDs them together.
func BuildArgs(q domain.Query) []string {
	args := []string{
		"-n", strconv.FormatUint(uint64(q.Limit), 10),
		"-csv",
		"-name",
		"-filename-column",
		"-size",
		"-date-created",
		"-date-modified",
		"-sort", q.Sort.String(),
	}
	if q.Regex {
		args = append(args, "-r")
	}
	args = append(args, q.ExtraArgs...)
	args = append(args, q.Terms...)
	return args
}

// cmdMeta matches characters cmd.exe interprets even inside quotes.
var cmdMeta = regexp.MustCompile("([()\\][%!^\"`<>&|;, *?])")

// quoteArg quotes arg for the Windows command-line parser: backslashes
// before a quote or the closing quote are doubled and quotes escaped.
func quoteArg(arg string) string {
	var b strings.Builder
	b.WriteByte('"')
	slashes := 0
	for i := 0; i < len(arg); i++ {
		c := arg[i]
		switch c {
		case '\\':
			slashes++
		case '"':
			b.WriteString(strings.Repeat(`\`, slashes+1))
			slashes = 0
		default:
			slashes = 0
		}
		b.WriteByte(c)
	}
	b.WriteString(strings.Repeat(`\`, slashes))
	b.WriteByte('"')
	return b.String()
}

// escapeCmdArg makes arg safe to pass through cmd.exe unchanged.
func escapeCmdArg(arg string) string {
	return cmdMeta.ReplaceAllString(quoteArg(arg), "^$1")
}

// utf8Command wraps an es.exe invocation in cmd.exe, switching the console
// code page to UTF-8 first. This is the only place a shell is involved;
// every argument is escaped individually.
func utf8Command(exe string, args []string) Command {
	var b strings.Builder
	b.WriteString("chcp 65001 >nul && ")
	b.WriteString(escapeCmdArg(exe))
	for _, a := range args {
		b.WriteByte(' ')
		b.WriteString(escapeCmdArg(a))
	}
	inner := b.String()

	return Command{
		Path:    "cmd.exe",
		Args:    []string{"/d", "/s", "/c", inner},
		CmdLine: `cmd.exe /d /s /c "` + inner + `"`,
	}
}
