package escli

import (
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/evsearch/internal/core/domain"
)

// DateLayout is the es.exe timestamp shape: day/month/year hour:minute,
// without zero padding. It follows the console locale of the machine
// running es.exe.
const DateLayout = "2/1/2006 15:04"

// ParseDate parses an es.exe timestamp in loc. Any other shape, or an
// out-of-range field, yields nil.
func ParseDate(s string, loc *time.Location) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(DateLayout, s, loc)
	if err != nil {
		return nil
	}
	return &t
}

// ParseSize parses an unsigned byte count. Empty or unparsable text
// yields nil.
func ParseSize(s string) *uint64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return nil
	}
	return &n
}

// ToResult converts decoded fields into a result. The directory flag is
// filled in later from the filesystem.
func (f Fields) ToResult(loc *time.Location) domain.FileResult {
	return domain.FileResult{
		Name:       f.Name,
		FullPath:   f.FullPath,
		Size:       ParseSize(f.Size),
		CreatedAt:  ParseDate(f.Created, loc),
		ModifiedAt: ParseDate(f.Modified, loc),
	}
}
