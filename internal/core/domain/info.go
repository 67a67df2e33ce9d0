package domain

// ServiceInfo describes the running index service as seen through the
// native SDK.
type ServiceInfo struct {
	LibraryPath string           `json:"library_path"`
	Version     string           `json:"version"`
	Target      string           `json:"target"`
	DBLoaded    bool             `json:"db_loaded"`
	Admin       bool             `json:"admin"`
	AppData     bool             `json:"app_data"`
	FastSort    map[SortKey]bool `json:"fast_sort"`
	Indexed     map[string]bool  `json:"indexed"`
}
