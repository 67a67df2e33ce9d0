package escli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitCSV(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"bare", `a,b,c`, []string{"a", "b", "c"}},
		{"quoted", `"a","b","c"`, []string{"a", "b", "c"}},
		{"quoted comma", `"a,b",c`, []string{"a,b", "c"}},
		{"empty middle", `a,,c`, []string{"a", "", "c"}},
		{"trailing empty", `a,b,`, []string{"a", "b", ""}},
		{"leading empty", `,b`, []string{"", "b"}},
		{"leading empty then quoted", `,"C:\x","1"`, []string{"", `C:\x`, "1"}},
		{"only commas", `,,`, []string{"", "", ""}},
		{"empty line", ``, []string{""}},
		{"unterminated quote", `"abc,d`, []string{`"abc`, "d"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitCSV(tt.line))
		})
	}
}

func TestDecodeLine_QuotedAndBareAgree(t *testing.T) {
	bare := `report.pdf,C:\docs\report.pdf,2048,1/2/2024 3:04,15/6/2024 17:08`
	quoted := `"report.pdf","C:\docs\report.pdf","2048","1/2/2024 3:04","15/6/2024 17:08"`

	fromBare, ok := DecodeLine(bare)
	require.True(t, ok)
	fromQuoted, ok := DecodeLine(quoted)
	require.True(t, ok)

	assert.Equal(t, fromBare, fromQuoted)
	assert.Equal(t, fromBare.ToResult(time.UTC), fromQuoted.ToResult(time.UTC))
	assert.Equal(t, "report.pdf", fromBare.Name)
	assert.Equal(t, `C:\docs\report.pdf`, fromBare.FullPath)
}

func TestDecodeLine_QuotedFieldsWithCommas(t *testing.T) {
	line := `"a,b.txt","C:\one, two\a,b.txt","7","1/1/2024 0:00","2/1/2024 0:00"`

	f, ok := DecodeLine(line)
	require.True(t, ok)
	assert.Equal(t, "a,b.txt", f.Name)
	assert.Equal(t, `C:\one, two\a,b.txt`, f.FullPath)
	assert.Equal(t, "7", f.Size)
}

func TestDecodeLine_EmptyNameUsesBasename(t *testing.T) {
	f, ok := DecodeLine(`,C:\docs\notes.md,1,,`)
	require.True(t, ok)
	assert.Equal(t, "notes.md", f.Name)
	assert.Equal(t, `C:\docs\notes.md`, f.FullPath)
	assert.Equal(t, "1", f.Size)
}

func TestDecodeLine_EmptyQuotedNameUsesBasename(t *testing.T) {
	f, ok := DecodeLine(`,"C:\docs\notes.md","1","1/2/2024 3:04","15/6/2024 17:08"`)
	require.True(t, ok)
	assert.Equal(t, Fields{
		Name:     "notes.md",
		FullPath: `C:\docs\notes.md`,
		Size:     "1",
		Created:  "1/2/2024 3:04",
		Modified: "15/6/2024 17:08",
	}, f)
}

func TestDecodeLine_Fallback(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantName string
		wantPath string
	}{
		{"bare path", `C:\docs\report.pdf`, "report.pdf", `C:\docs\report.pdf`},
		{"two fields", `"C:\docs\a.txt",12`, "a.txt", `C:\docs\a.txt`},
		{"forward slashes", `D:/music/song.mp3,1,2`, "song.mp3", "D:/music/song.mp3"},
		{"trailing separator", `C:\docs\`, "docs", `C:\docs\`},
		{"no separator", `readme`, "readme", "readme"},
		{"leading empty field", `,x`, ",x", ",x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := DecodeLine(tt.line)
			assert.False(t, ok)
			assert.Equal(t, tt.wantName, f.Name)
			assert.Equal(t, tt.wantPath, f.FullPath)
			assert.Empty(t, f.Size)
		})
	}
}

func TestDecodeLine_NeverPanics(t *testing.T) {
	inputs := []string{
		"",
		",",
		",,,,",
		`"`,
		`""""`,
		`"a`,
		"\x00\xff\xfe",
		`\\\\`,
		"é,ü,ß",
	}
	for _, in := range inputs {
		assert.NotPanics(t, func() {
			f, _ := DecodeLine(in)
			_ = f.ToResult(time.UTC)
		}, "input %q", in)
	}
}

func TestBaseName(t *testing.T) {
	assert.Equal(t, "a.txt", baseName(`C:\x\a.txt`))
	assert.Equal(t, "a.txt", baseName(`/x/a.txt`))
	assert.Equal(t, "C:", baseName(`C:\`))
	assert.Equal(t, `\`, baseName(`\`))
}
