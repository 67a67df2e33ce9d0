package essdk

import (
	"github.com/custodia-labs/evsearch/internal/core/domain"
	"github.com/custodia-labs/evsearch/native/everything"
)

var sortTypes = map[domain.SortKey][2]everything.SortType{
	domain.SortByName:         {everything.SortNameAscending, everything.SortNameDescending},
	domain.SortByPath:         {everything.SortPathAscending, everything.SortPathDescending},
	domain.SortBySize:         {everything.SortSizeAscending, everything.SortSizeDescending},
	domain.SortByExtension:    {everything.SortExtensionAscending, everything.SortExtensionDescending},
	domain.SortByDateCreated:  {everything.SortDateCreatedAscending, everything.SortDateCreatedDescending},
	domain.SortByDateModified: {everything.SortDateModifiedAscending, everything.SortDateModifiedDescending},
	domain.SortByDateAccessed: {everything.SortDateAccessedAscending, everything.SortDateAccessedDescending},
}

// SortType maps a sort order to the SDK constant. Unknown keys fall back
// to name ascending.
func SortType(o domain.SortOrder) everything.SortType {
	pair, ok := sortTypes[o.Key]
	if !ok {
		return everything.SortNameAscending
	}
	if o.Descending {
		return pair[1]
	}
	return pair[0]
}
