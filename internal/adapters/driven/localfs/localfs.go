// Package localfs implements the file-system port on the local disk.
package localfs

import (
	"io/fs"
	"os"
	"time"

	"github.com/custodia-labs/evsearch/internal/core/ports/driven"
)

// Ensure FileSystem implements the interface.
var _ driven.FileSystem = FileSystem{}

// FileSystem reads the local disk through package os.
type FileSystem struct{}

// New returns the local file system.
func New() FileSystem {
	return FileSystem{}
}

// Stat implements driven.FileSystem.
func (FileSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

// ReadDir implements driven.FileSystem.
func (FileSystem) ReadDir(name string) ([]fs.DirEntry, error) {
	return os.ReadDir(name)
}

// CreatedAt implements driven.FileSystem. Only platforms that record a
// birth time in their stat data report one.
func (FileSystem) CreatedAt(info fs.FileInfo) (time.Time, bool) {
	if info == nil {
		return time.Time{}, false
	}
	return createdAt(info)
}
