package everything

import "fmt"

// API is the typed call surface of the Everything SDK.
//
// Implementations are not safe for concurrent use: the SDK keeps a single
// global search state, and result accessors share internal buffers.
// Empty strings stand for NULL returns.
type API interface {
	// Write search state.
	SetSearch(search string) error
	SetMatchPath(enable bool)
	SetMatchCase(enable bool)
	SetMatchWholeWord(enable bool)
	SetRegex(enable bool)
	SetMax(limit uint32)
	SetOffset(offset uint32)
	SetSort(sort SortType)
	SetRequestFlags(flags RequestFlags)

	// Read search state.
	Search() string
	MatchPath() bool
	MatchCase() bool
	MatchWholeWord() bool
	Regex() bool
	Max() uint32
	Offset() uint32
	Sort() SortType
	RequestFlags() RequestFlags
	LastError() ErrorCode

	// Query executes the search. With wait set it blocks until the
	// service has replied.
	Query(wait bool) bool

	// Read result state.
	NumResults() uint32
	NumFileResults() uint32
	NumFolderResults() uint32
	TotResults() uint32
	IsVolumeResult(index uint32) bool
	IsFolderResult(index uint32) bool
	IsFileResult(index uint32) bool
	ResultFileName(index uint32) string
	ResultPath(index uint32) string
	ResultFullPathName(index uint32) string
	ResultExtension(index uint32) string
	ResultSize(index uint32) (LargeInteger, bool)
	ResultDateCreated(index uint32) (FileTime, bool)
	ResultDateModified(index uint32) (FileTime, bool)
	ResultDateAccessed(index uint32) (FileTime, bool)
	ResultAttributes(index uint32) uint32
	SortResultsByPath()

	// Reset clears search and result state; CleanUp frees all SDK memory.
	Reset()
	CleanUp()

	// Version and capabilities of the running service.
	MajorVersion() uint32
	MinorVersion() uint32
	Revision() uint32
	BuildNumber() uint32
	TargetMachine() TargetMachine
	IsDBLoaded() bool
	IsAdmin() bool
	IsAppData() bool
	IsFastSort(sort SortType) bool
	IsFileInfoIndexed(info FileInfoType) bool

	// Release unloads the library. The API must not be used afterwards.
	Release() error
}

// LibraryName returns the SDK file name shipped for goarch.
func LibraryName(goarch string) (string, error) {
	switch goarch {
	case "amd64":
		return "Everything_x64.dll", nil
	case "arm64":
		return "Everything_arm64.dll", nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedArch, goarch)
	}
}
