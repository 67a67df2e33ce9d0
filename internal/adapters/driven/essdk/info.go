package essdk

import (
	"fmt"

	"github.com/custodia-labs/evsearch/internal/core/domain"
	"github.com/custodia-labs/evsearch/native/everything"
)

var fileInfoNames = map[everything.FileInfoType]string{
	everything.FileInfoFileSize:     "file-size",
	everything.FileInfoFolderSize:   "folder-size",
	everything.FileInfoDateCreated:  "date-created",
	everything.FileInfoDateModified: "date-modified",
	everything.FileInfoDateAccessed: "date-accessed",
	everything.FileInfoAttributes:   "attributes",
}

// Info loads the library if needed and reports version and capability
// details of the running service.
func (t *Transport) Info() (*domain.ServiceInfo, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.loadLocked(); err != nil {
		return nil, &domain.TransportUnavailableError{Mode: domain.TransportNative, Err: err}
	}

	api := t.api
	version := fmt.Sprintf("%d.%d.%d.%d",
		api.MajorVersion(), api.MinorVersion(), api.Revision(), api.BuildNumber())

	info := &domain.ServiceInfo{
		LibraryPath: t.libraryPath,
		Version:     version,
		Target:      api.TargetMachine().String(),
		DBLoaded:    api.IsDBLoaded(),
		Admin:       api.IsAdmin(),
		AppData:     api.IsAppData(),
		FastSort:    make(map[domain.SortKey]bool),
		Indexed:     make(map[string]bool),
	}
	for _, key := range domain.AllSortKeys() {
		info.FastSort[key] = api.IsFastSort(SortType(domain.SortOrder{Key: key}))
	}
	for typ, name := range fileInfoNames {
		info.Indexed[name] = api.IsFileInfoIndexed(typ)
	}
	return info, nil
}
