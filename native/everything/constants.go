package everything

// RequestFlags selects which fields the service computes for each result.
type RequestFlags uint32

// Request flags.
const (
	RequestFileName                       RequestFlags = 0x00000001
	RequestPath                           RequestFlags = 0x00000002
	RequestFullPathAndFileName            RequestFlags = 0x00000004
	RequestExtension                      RequestFlags = 0x00000008
	RequestSize                           RequestFlags = 0x00000010
	RequestDateCreated                    RequestFlags = 0x00000020
	RequestDateModified                   RequestFlags = 0x00000040
	RequestDateAccessed                   RequestFlags = 0x00000080
	RequestAttributes                     RequestFlags = 0x00000100
	RequestFileListFileName               RequestFlags = 0x00000200
	RequestRunCount                       RequestFlags = 0x00000400
	RequestDateRun                        RequestFlags = 0x00000800
	RequestDateRecentlyChanged            RequestFlags = 0x00001000
	RequestHighlightedFileName            RequestFlags = 0x00002000
	RequestHighlightedPath                RequestFlags = 0x00004000
	RequestHighlightedFullPathAndFileName RequestFlags = 0x00008000
)

// Has reports whether all bits of f are set.
func (r RequestFlags) Has(f RequestFlags) bool {
	return r&f == f
}

// SortType is the service's sort order identifier.
type SortType uint32

// Sort types.
const (
	SortNameAscending                 SortType = 1
	SortNameDescending                SortType = 2
	SortPathAscending                 SortType = 3
	SortPathDescending                SortType = 4
	SortSizeAscending                 SortType = 5
	SortSizeDescending                SortType = 6
	SortExtensionAscending            SortType = 7
	SortExtensionDescending           SortType = 8
	SortTypeNameAscending             SortType = 9
	SortTypeNameDescending            SortType = 10
	SortDateCreatedAscending          SortType = 11
	SortDateCreatedDescending         SortType = 12
	SortDateModifiedAscending         SortType = 13
	SortDateModifiedDescending        SortType = 14
	SortAttributesAscending           SortType = 15
	SortAttributesDescending          SortType = 16
	SortFileListFilenameAscending     SortType = 17
	SortFileListFilenameDescending    SortType = 18
	SortRunCountAscending             SortType = 19
	SortRunCountDescending            SortType = 20
	SortDateRecentlyChangedAscending  SortType = 21
	SortDateRecentlyChangedDescending SortType = 22
	SortDateAccessedAscending         SortType = 23
	SortDateAccessedDescending        SortType = 24
	SortDateRunAscending              SortType = 25
	SortDateRunDescending             SortType = 26
)

// ErrorCode is the value returned by Everything_GetLastError.
type ErrorCode uint32

// Error codes.
const (
	ErrorOK               ErrorCode = 0
	ErrorMemory           ErrorCode = 1
	ErrorIPC              ErrorCode = 2
	ErrorRegisterClassEx  ErrorCode = 3
	ErrorCreateWindow     ErrorCode = 4
	ErrorCreateThread     ErrorCode = 5
	ErrorInvalidIndex     ErrorCode = 6
	ErrorInvalidCall      ErrorCode = 7
	ErrorInvalidRequest   ErrorCode = 8
	ErrorInvalidParameter ErrorCode = 9
)

// TargetMachine identifies the architecture of the running service.
type TargetMachine uint32

// Target machines.
const (
	TargetX86   TargetMachine = 1
	TargetX64   TargetMachine = 2
	TargetARM   TargetMachine = 3
	TargetARM64 TargetMachine = 4
)

// String returns the string representation.
func (m TargetMachine) String() string {
	switch m {
	case TargetX86:
		return "x86"
	case TargetX64:
		return "x64"
	case TargetARM:
		return "arm"
	case TargetARM64:
		return "arm64"
	default:
		return "unknown"
	}
}

// FileInfoType identifies an indexable property for IsFileInfoIndexed.
type FileInfoType uint32

// File info types.
const (
	FileInfoFileSize     FileInfoType = 1
	FileInfoFolderSize   FileInfoType = 2
	FileInfoDateCreated  FileInfoType = 3
	FileInfoDateModified FileInfoType = 4
	FileInfoDateAccessed FileInfoType = 5
	FileInfoAttributes   FileInfoType = 6
)
