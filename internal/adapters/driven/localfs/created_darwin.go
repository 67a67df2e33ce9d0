//go:build darwin

package localfs

import (
	"io/fs"
	"syscall"
	"time"
)

func createdAt(info fs.FileInfo) (time.Time, bool) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok || st == nil {
		return time.Time{}, false
	}
	return time.Unix(st.Birthtimespec.Unix()), true
}
