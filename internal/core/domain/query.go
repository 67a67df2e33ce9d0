package domain

import (
	"math"
	"strings"
	"unicode/utf8"
)

// TransportMode selects which backend executes a query.
type TransportMode string

// Available transport modes.
const (
	// TransportCLI spawns the es.exe command-line client per query.
	TransportCLI TransportMode = "cli"

	// TransportNative drives the Everything SDK shared library in-process.
	TransportNative TransportMode = "native"
)

// IsValid returns true if the transport mode is recognised.
func (m TransportMode) IsValid() bool {
	return m == TransportCLI || m == TransportNative
}

// String returns the string representation.
func (m TransportMode) String() string {
	return string(m)
}

// Description returns a human-readable description of the mode.
func (m TransportMode) Description() string {
	switch m {
	case TransportCLI:
		return "CLI (es.exe subprocess)"
	case TransportNative:
		return "Native (Everything SDK library)"
	default:
		return "Unknown"
	}
}

// SortKey names the column results are ordered by.
type SortKey string

// Sort keys understood by both transports.
const (
	SortByName         SortKey = "name"
	SortByPath         SortKey = "path"
	SortBySize         SortKey = "size"
	SortByExtension    SortKey = "extension"
	SortByDateCreated  SortKey = "date-created"
	SortByDateModified SortKey = "date-modified"
	SortByDateAccessed SortKey = "date-accessed"
)

// AllSortKeys returns every supported sort key.
func AllSortKeys() []SortKey {
	return []SortKey{
		SortByName,
		SortByPath,
		SortBySize,
		SortByExtension,
		SortByDateCreated,
		SortByDateModified,
		SortByDateAccessed,
	}
}

// IsValid returns true if the sort key is recognised.
func (k SortKey) IsValid() bool {
	for _, known := range AllSortKeys() {
		if k == known {
			return true
		}
	}
	return false
}

// SortOrder is a sort key plus direction.
type SortOrder struct {
	Key        SortKey
	Descending bool
}

// DefaultSortOrder is name ascending.
func DefaultSortOrder() SortOrder {
	return SortOrder{Key: SortByName}
}

// String renders the order as "<key>-ascending" or "<key>-descending",
// the form es.exe accepts after -sort.
func (o SortOrder) String() string {
	if o.Descending {
		return string(o.Key) + "-descending"
	}
	return string(o.Key) + "-ascending"
}

// ParseSortOrder accepts "name-ascending", "-sort name-ascending" and
// "sort:name-descending" style values. Unknown values yield ok=false.
func ParseSortOrder(s string) (SortOrder, bool) {
	s = strings.TrimSpace(strings.ToLower(s))
	s = strings.TrimPrefix(s, "-sort")
	s = strings.TrimPrefix(s, "sort:")
	s = strings.TrimSpace(s)

	var desc bool
	switch {
	case strings.HasSuffix(s, "-ascending"):
		s = strings.TrimSuffix(s, "-ascending")
	case strings.HasSuffix(s, "-descending"):
		s = strings.TrimSuffix(s, "-descending")
		desc = true
	default:
		return SortOrder{}, false
	}

	key := SortKey(s)
	if !key.IsValid() {
		return SortOrder{}, false
	}
	return SortOrder{Key: key, Descending: desc}, true
}

// DefaultMaxResults is used when the caller supplies no positive limit.
const DefaultMaxResults = 100

// QueryOptions configures a single search.
type QueryOptions struct {
	// Mode selects the transport.
	Mode TransportMode

	// MaxResults caps the number of results. Zero or negative uses the default.
	MaxResults int

	// Sort is the requested result order.
	Sort SortOrder

	// Regex treats the whole search text as a regular expression.
	Regex bool

	// ExtraArgs are free-form es.exe arguments (CLI only).
	ExtraArgs string

	// ExecutablePath overrides the es.exe location (CLI only).
	ExecutablePath string

	// MinChars is the minimum number of characters before a search runs.
	MinChars int
}

// BelowMinimum reports whether text is too short to search.
// Empty text is always below the minimum.
func (o QueryOptions) BelowMinimum(text string) bool {
	if text == "" {
		return true
	}
	return o.MinChars > 0 && utf8.RuneCountInString(text) < o.MinChars
}

// EffectiveLimit returns the result cap clamped to the uint32 range.
func (o QueryOptions) EffectiveLimit() uint32 {
	switch {
	case o.MaxResults <= 0:
		return DefaultMaxResults
	case uint64(o.MaxResults) > math.MaxUint32:
		return math.MaxUint32
	default:
		return uint32(o.MaxResults)
	}
}

// Query is the normalised request handed to a transport.
type Query struct {
	// RequestID correlates log lines for one search.
	RequestID string

	// Text is the raw search text.
	Text string

	// Terms is Text split on whitespace. Each term is passed separately
	// so the service ANDs them in any order.
	Terms []string

	// Limit is the result cap.
	Limit uint32

	// Sort is the result order.
	Sort SortOrder

	// Regex treats Text as a regular expression.
	Regex bool

	// ExtraArgs are additional es.exe arguments, already split.
	ExtraArgs []string

	// ExecutablePath overrides the es.exe location. Empty uses PATH lookup.
	ExecutablePath string
}
