//go:build windows

package localfs

import (
	"io/fs"
	"syscall"
	"time"

	"github.com/custodia-labs/evsearch/native/everything"
)

func createdAt(info fs.FileInfo) (time.Time, bool) {
	data, ok := info.Sys().(*syscall.Win32FileAttributeData)
	if !ok || data == nil {
		return time.Time{}, false
	}
	ft := everything.FileTime{Low: data.CreationTime.LowDateTime, High: data.CreationTime.HighDateTime}
	if ft.Ticks() == 0 {
		return time.Time{}, false
	}
	return ft.Time(), true
}
