package driven

import (
	"io/fs"
	"time"
)

// FileSystem is the subset of file-system access the core needs.
type FileSystem interface {
	// Stat returns file info for an absolute path.
	Stat(name string) (fs.FileInfo, error)

	// ReadDir lists a directory.
	ReadDir(name string) ([]fs.DirEntry, error)

	// CreatedAt returns the creation time from info, if the platform
	// records one.
	CreatedAt(info fs.FileInfo) (time.Time, bool)
}
