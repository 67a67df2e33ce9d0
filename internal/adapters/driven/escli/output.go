package escli

import (
	"regexp"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var lineBreak = regexp.MustCompile(`\r?\n`)

// DecodeOutput converts es.exe stdout to a string. A UTF-8 or UTF-16 byte
// order mark selects the encoding; without one the bytes are read as
// UTF-8 and invalid sequences are replaced.
func DecodeOutput(b []byte) string {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(dec, b)
	if err != nil {
		return strings.ToValidUTF8(string(b), "�")
	}
	return string(out)
}

// DataLines splits output into lines, drops blank lines and then drops
// the header row.
func DataLines(output string) []string {
	raw := lineBreak.Split(strings.TrimSpace(output), -1)
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return nil
	}
	return lines[1:]
}
