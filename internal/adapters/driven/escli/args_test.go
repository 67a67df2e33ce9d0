package escli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/evsearch/internal/core/domain"
)

func TestBuildArgs(t *testing.T) {
	q := domain.Query{
		Text:  "quarterly report",
		Terms: []string{"quarterly", "report"},
		Limit: 50,
		Sort:  domain.SortOrder{Key: domain.SortByDateModified, Descending: true},
	}

	assert.Equal(t, []string{
		"-n", "50",
		"-csv",
		"-name",
		"-filename-column",
		"-size",
		"-date-created",
		"-date-modified",
		"-sort", "date-modified-descending",
		"quarterly", "report",
	}, BuildArgs(q))
}

func TestBuildArgs_RegexAndExtraArgs(t *testing.T) {
	q := domain.Query{
		Terms:     []string{`^a.*\.txt$`},
		Limit:     10,
		Sort:      domain.DefaultSortOrder(),
		Regex:     true,
		ExtraArgs: []string{"-path", `C:\Program Files`},
	}

	args := BuildArgs(q)
	assert.Equal(t, []string{"-r", "-path", `C:\Program Files`, `^a.*\.txt$`}, args[len(args)-4:])
	assert.Contains(t, args, "name-ascending")
}

func TestQuoteArg(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`plain`, `"plain"`},
		{`two words`, `"two words"`},
		{`say "hi"`, `"say \"hi\""`},
		{`C:\dir\`, `"C:\dir\\"`},
		{`a\"b`, `"a\\\"b"`},
		{``, `""`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, quoteArg(tt.in), "input %q", tt.in)
	}
}

func TestEscapeCmdArg(t *testing.T) {
	assert.Equal(t, `^"report^"`, escapeCmdArg("report"))
	assert.Equal(t, `^"a^&b^"`, escapeCmdArg("a&b"))
	assert.Equal(t, `^"x^|y^>z^"`, escapeCmdArg("x|y>z"))
	assert.Equal(t, `^"^%PATH^%^"`, escapeCmdArg("%PATH%"))
	assert.Equal(t, `^"two^ words^"`, escapeCmdArg("two words"))
}

func TestUTF8Command(t *testing.T) {
	cmd := utf8Command(`C:\Program Files\es.exe`, []string{"-n", "5", "a&b"})

	assert.Equal(t, "cmd.exe", cmd.Path)
	assert.Equal(t, []string{"/d", "/s", "/c"}, cmd.Args[:3])

	inner := cmd.Args[3]
	assert.Equal(t,
		`chcp 65001 >nul && ^"C:\Program^ Files\es.exe^" ^"-n^" ^"5^" ^"a^&b^"`,
		inner)
	assert.Equal(t, `cmd.exe /d /s /c "`+inner+`"`, cmd.CmdLine)
}
