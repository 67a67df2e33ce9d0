package escli

import (
	"regexp"
	"strings"
)

// csvField matches one comma-led field of an es.exe CSV row, quoted or
// bare. Rows are scanned with a comma prepended so every match is
// non-empty and a leading comma yields an empty first field.
var csvField = regexp.MustCompile(`,(?:"([^"]*)"|([^,]*))`)

// Fields is one decoded es.exe output row. Values are raw text.
type Fields struct {
	Name     string
	FullPath string
	Size     string
	Created  string
	Modified string
}

// SplitCSV returns the fields of line in order. Quoted fields may contain
// commas; quotes are not unescaped.
func SplitCSV(line string) []string {
	matches := csvField.FindAllStringSubmatch(","+line, -1)
	values := make([]string, 0, len(matches))
	for _, m := range matches {
		if m[1] != "" {
			values = append(values, m[1])
			continue
		}
		values = append(values, m[2])
	}
	return values
}

// DecodeLine decodes one data row. Rows with fewer than five fields fall
// back to treating the first field (or the whole line) as the full path,
// and ok is false.
func DecodeLine(line string) (f Fields, ok bool) {
	values := SplitCSV(line)
	if len(values) < 5 {
		fullPath := line
		if len(values) > 0 && values[0] != "" {
			fullPath = values[0]
		}
		return Fields{Name: baseName(fullPath), FullPath: fullPath}, false
	}

	f = Fields{
		Name:     values[0],
		FullPath: values[1],
		Size:     values[2],
		Created:  values[3],
		Modified: values[4],
	}
	if f.Name == "" {
		f.Name = baseName(f.FullPath)
	}
	return f, true
}

// baseName returns the last element of p, honouring both \ and /.
func baseName(p string) string {
	trimmed := strings.TrimRight(p, `\/`)
	if trimmed == "" {
		return p
	}
	if i := strings.LastIndexAny(trimmed, `\/`); i >= 0 {
		return trimmed[i+1:]
	}
	return trimmed
}
