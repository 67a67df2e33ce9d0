//go:build windows

package everything

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// fullPathBufSize is the capacity, in UTF-16 code units, of the buffer
// passed to Everything_GetResultFullPathNameW.
const fullPathBufSize = 4096

// Ensure DLL implements the interface.
var _ API = (*DLL)(nil)

// DLL is the Everything SDK loaded from a shared library.
type DLL struct {
	dll     *windows.DLL
	fullBuf []uint16

	setSearchW, setMatchPath, setMatchCase, setMatchWholeWord     *windows.Proc
	setRegex, setMax, setOffset, setSort, setRequestFlags         *windows.Proc
	getSearchW, getMatchPath, getMatchCase, getMatchWholeWord     *windows.Proc
	getRegex, getMax, getOffset, getSort, getRequestFlags         *windows.Proc
	getLastError, queryW                                          *windows.Proc
	getNumResults, getNumFileResults, getNumFolderResults         *windows.Proc
	getTotResults                                                 *windows.Proc
	isVolumeResult, isFolderResult, isFileResult                  *windows.Proc
	getResultFileNameW, getResultPathW                            *windows.Proc
	getResultFullPathNameW, getResultExtensionW                   *windows.Proc
	getResultSize, getResultDateCreated                           *windows.Proc
	getResultDateModified, getResultDateAccessed                  *windows.Proc
	getResultAttributes, sortResultsByPath, reset, cleanUp        *windows.Proc
	getMajorVersion, getMinorVersion, getRevision                 *windows.Proc
	getBuildNumber, getTargetMachine                              *windows.Proc
	isDBLoaded, isAdmin, isAppData, isFastSort, isFileInfoIndexed *windows.Proc
}

type binding struct {
	name string
	proc **windows.Proc
}

func (d *DLL) bindings() []binding {
	return []binding{
		{"Everything_SetSearchW", &d.setSearchW},
		{"Everything_SetMatchPath", &d.setMatchPath},
		{"Everything_SetMatchCase", &d.setMatchCase},
		{"Everything_SetMatchWholeWord", &d.setMatchWholeWord},
		{"Everything_SetRegex", &d.setRegex},
		{"Everything_SetMax", &d.setMax},
		{"Everything_SetOffset", &d.setOffset},
		{"Everything_SetSort", &d.setSort},
		{"Everything_SetRequestFlags", &d.setRequestFlags},
		{"Everything_GetSearchW", &d.getSearchW},
		{"Everything_GetMatchPath", &d.getMatchPath},
		{"Everything_GetMatchCase", &d.getMatchCase},
		{"Everything_GetMatchWholeWord", &d.getMatchWholeWord},
		{"Everything_GetRegex", &d.getRegex},
		{"Everything_GetMax", &d.getMax},
		{"Everything_GetOffset", &d.getOffset},
		{"Everything_GetSort", &d.getSort},
		{"Everything_GetRequestFlags", &d.getRequestFlags},
		{"Everything_GetLastError", &d.getLastError},
		{"Everything_QueryW", &d.queryW},
		{"Everything_GetNumResults", &d.getNumResults},
		{"Everything_GetNumFileResults", &d.getNumFileResults},
		{"Everything_GetNumFolderResults", &d.getNumFolderResults},
		{"Everything_GetTotResults", &d.getTotResults},
		{"Everything_IsVolumeResult", &d.isVolumeResult},
		{"Everything_IsFolderResult", &d.isFolderResult},
		{"Everything_IsFileResult", &d.isFileResult},
		{"Everything_GetResultFileNameW", &d.getResultFileNameW},
		{"Everything_GetResultPathW", &d.getResultPathW},
		{"Everything_GetResultFullPathNameW", &d.getResultFullPathNameW},
		{"Everything_GetResultExtensionW", &d.getResultExtensionW},
		{"Everything_GetResultSize", &d.getResultSize},
		{"Everything_GetResultDateCreated", &d.getResultDateCreated},
		{"Everything_GetResultDateModified", &d.getResultDateModified},
		{"Everything_GetResultDateAccessed", &d.getResultDateAccessed},
		{"Everything_GetResultAttributes", &d.getResultAttributes},
		{"Everything_SortResultsByPath", &d.sortResultsByPath},
		{"Everything_Reset", &d.reset},
		{"Everything_CleanUp", &d.cleanUp},
		{"Everything_GetMajorVersion", &d.getMajorVersion},
		{"Everything_GetMinorVersion", &d.getMinorVersion},
		{"Everything_GetRevision", &d.getRevision},
		{"Everything_GetBuildNumber", &d.getBuildNumber},
		{"Everything_GetTargetMachine", &d.getTargetMachine},
		{"Everything_IsDBLoaded", &d.isDBLoaded},
		{"Everything_IsAdmin", &d.isAdmin},
		{"Everything_IsAppData", &d.isAppData},
		{"Everything_IsFastSort", &d.isFastSort},
		{"Everything_IsFileInfoIndexed", &d.isFileInfoIndexed},
	}
}

// Open loads the SDK library at path and binds every export the API uses.
// A library missing any export is released and reported with
// *MissingExportsError; a partially bound table is never returned.
func Open(path string) (API, error) {
	lib, err := windows.LoadDLL(path)
	if err != nil {
		return nil, err
	}

	d := &DLL{
		dll:     lib,
		fullBuf: make([]uint16, fullPathBufSize),
	}

	var missing []string
	for _, b := range d.bindings() {
		proc, err := lib.FindProc(b.name)
		if err != nil {
			missing = append(missing, b.name)
			continue
		}
		*b.proc = proc
	}
	if len(missing) > 0 {
		_ = lib.Release()
		return nil, &MissingExportsError{Path: path, Symbols: missing}
	}

	return d, nil
}

func call(p *windows.Proc, args ...uintptr) uintptr {
	r1, _, _ := p.Call(args...)
	return r1
}

func boolArg(b bool) uintptr {
	if b {
		return 1
	}
	return 0
}

func wstring(r1 uintptr) string {
	if r1 == 0 {
		return ""
	}
	// r1 points into SDK-owned result memory, valid until the next Reset.
	return windows.UTF16PtrToString((*uint16)(unsafe.Pointer(r1))) //nolint:govet // pointer returned by the foreign call
}

// SetSearch sets the search text. Text containing NUL is rejected.
func (d *DLL) SetSearch(search string) error {
	p, err := windows.UTF16PtrFromString(search)
	if err != nil {
		return err
	}
	d.setSearchW.Call(uintptr(unsafe.Pointer(p))) //nolint:errcheck // returns void
	return nil
}

func (d *DLL) SetMatchPath(enable bool)      { call(d.setMatchPath, boolArg(enable)) }
func (d *DLL) SetMatchCase(enable bool)      { call(d.setMatchCase, boolArg(enable)) }
func (d *DLL) SetMatchWholeWord(enable bool) { call(d.setMatchWholeWord, boolArg(enable)) }
func (d *DLL) SetRegex(enable bool)          { call(d.setRegex, boolArg(enable)) }
func (d *DLL) SetMax(limit uint32)           { call(d.setMax, uintptr(limit)) }
func (d *DLL) SetOffset(offset uint32)       { call(d.setOffset, uintptr(offset)) }
func (d *DLL) SetSort(sort SortType)         { call(d.setSort, uintptr(sort)) }

func (d *DLL) SetRequestFlags(flags RequestFlags) { call(d.setRequestFlags, uintptr(flags)) }

func (d *DLL) Search() string             { return wstring(call(d.getSearchW)) }
func (d *DLL) MatchPath() bool            { return call(d.getMatchPath) != 0 }
func (d *DLL) MatchCase() bool            { return call(d.getMatchCase) != 0 }
func (d *DLL) MatchWholeWord() bool       { return call(d.getMatchWholeWord) != 0 }
func (d *DLL) Regex() bool                { return call(d.getRegex) != 0 }
func (d *DLL) Max() uint32                { return uint32(call(d.getMax)) }
func (d *DLL) Offset() uint32             { return uint32(call(d.getOffset)) }
func (d *DLL) Sort() SortType             { return SortType(call(d.getSort)) }
func (d *DLL) RequestFlags() RequestFlags { return RequestFlags(call(d.getRequestFlags)) }
func (d *DLL) LastError() ErrorCode       { return ErrorCode(call(d.getLastError)) }

// Query runs Everything_QueryW. With wait set the call blocks the
// calling goroutine's thread until the service replies.
func (d *DLL) Query(wait bool) bool {
	return call(d.queryW, boolArg(wait)) != 0
}

func (d *DLL) NumResults() uint32       { return uint32(call(d.getNumResults)) }
func (d *DLL) NumFileResults() uint32   { return uint32(call(d.getNumFileResults)) }
func (d *DLL) NumFolderResults() uint32 { return uint32(call(d.getNumFolderResults)) }
func (d *DLL) TotResults() uint32       { return uint32(call(d.getTotResults)) }

func (d *DLL) IsVolumeResult(index uint32) bool { return call(d.isVolumeResult, uintptr(index)) != 0 }
func (d *DLL) IsFolderResult(index uint32) bool { return call(d.isFolderResult, uintptr(index)) != 0 }
func (d *DLL) IsFileResult(index uint32) bool   { return call(d.isFileResult, uintptr(index)) != 0 }

func (d *DLL) ResultFileName(index uint32) string {
	return wstring(call(d.getResultFileNameW, uintptr(index)))
}

func (d *DLL) ResultPath(index uint32) string {
	return wstring(call(d.getResultPathW, uintptr(index)))
}

// ResultFullPathName copies the full path into a reused buffer. Paths
// longer than the buffer are truncated by the SDK.
func (d *DLL) ResultFullPathName(index uint32) string {
	n, _, _ := d.getResultFullPathNameW.Call(
		uintptr(index),
		uintptr(unsafe.Pointer(&d.fullBuf[0])),
		uintptr(len(d.fullBuf)),
	)
	if n == 0 {
		return ""
	}
	if int(n) > len(d.fullBuf) {
		n = uintptr(len(d.fullBuf))
	}
	return windows.UTF16ToString(d.fullBuf[:n])
}

func (d *DLL) ResultExtension(index uint32) string {
	return wstring(call(d.getResultExtensionW, uintptr(index)))
}

func (d *DLL) ResultSize(index uint32) (LargeInteger, bool) {
	var li LargeInteger
	r1, _, _ := d.getResultSize.Call(uintptr(index), uintptr(unsafe.Pointer(&li)))
	return li, r1 != 0
}

func (d *DLL) ResultDateCreated(index uint32) (FileTime, bool) {
	return d.fileTime(d.getResultDateCreated, index)
}

func (d *DLL) ResultDateModified(index uint32) (FileTime, bool) {
	return d.fileTime(d.getResultDateModified, index)
}

func (d *DLL) ResultDateAccessed(index uint32) (FileTime, bool) {
	return d.fileTime(d.getResultDateAccessed, index)
}

func (d *DLL) fileTime(p *windows.Proc, index uint32) (FileTime, bool) {
	var ft FileTime
	r1, _, _ := p.Call(uintptr(index), uintptr(unsafe.Pointer(&ft)))
	return ft, r1 != 0
}

func (d *DLL) ResultAttributes(index uint32) uint32 {
	return uint32(call(d.getResultAttributes, uintptr(index)))
}

func (d *DLL) SortResultsByPath() { call(d.sortResultsByPath) }
func (d *DLL) Reset()             { call(d.reset) }
func (d *DLL) CleanUp()           { call(d.cleanUp) }

func (d *DLL) MajorVersion() uint32         { return uint32(call(d.getMajorVersion)) }
func (d *DLL) MinorVersion() uint32         { return uint32(call(d.getMinorVersion)) }
func (d *DLL) Revision() uint32             { return uint32(call(d.getRevision)) }
func (d *DLL) BuildNumber() uint32          { return uint32(call(d.getBuildNumber)) }
func (d *DLL) TargetMachine() TargetMachine { return TargetMachine(call(d.getTargetMachine)) }
func (d *DLL) IsDBLoaded() bool             { return call(d.isDBLoaded) != 0 }
func (d *DLL) IsAdmin() bool                { return call(d.isAdmin) != 0 }
func (d *DLL) IsAppData() bool              { return call(d.isAppData) != 0 }

func (d *DLL) IsFastSort(sort SortType) bool {
	return call(d.isFastSort, uintptr(sort)) != 0
}

func (d *DLL) IsFileInfoIndexed(info FileInfoType) bool {
	return call(d.isFileInfoIndexed, uintptr(info)) != 0
}

// Release unloads the library.
func (d *DLL) Release() error {
	return d.dll.Release()
}
