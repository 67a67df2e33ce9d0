package domain

import "time"

// FileResult represents one file-system entry returned by a search or a
// directory listing. FullPath identifies the entry within one result set.
type FileResult struct {
	// Name is the display name (usually the base name).
	Name string

	// FullPath is the absolute path of the entry.
	FullPath string

	// Size is the size in bytes. Nil for directories or when unknown.
	Size *uint64

	// CreatedAt is the creation time. Nil when unknown.
	CreatedAt *time.Time

	// ModifiedAt is the last modification time. Nil when unknown.
	ModifiedAt *time.Time

	// IsDirectory is true when the entry is a folder (or a volume).
	IsDirectory bool
}

// HasSize reports whether the size is set.
func (r FileResult) HasSize() bool {
	return r.Size != nil
}

// SizeOrZero returns the size, or zero when unset.
func (r FileResult) SizeOrZero() uint64 {
	if r.Size == nil {
		return 0
	}
	return *r.Size
}
