//go:build !windows && !darwin

package localfs

import (
	"io/fs"
	"time"
)

// createdAt reports no creation time; the portable stat data of these
// platforms carries none.
func createdAt(_ fs.FileInfo) (time.Time, bool) {
	return time.Time{}, false
}
