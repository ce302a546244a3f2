// Package options defines validated sort and pagination parameters shared by
// every entity search.
package options

import "fmt"

// SortBy selects the sort key for entity-level results.
type SortBy string

const (
	// SortRelevance orders by the computed relevance score.
	SortRelevance SortBy = "relevance"
	// SortDate orders by upload/creation timestamp.
	SortDate SortBy = "date"
	// SortTitle orders lexicographically by title.
	SortTitle SortBy = "title"
	// SortDownloads orders by download count (materials only).
	SortDownloads SortBy = "downloads"
)

// IsValid reports whether s is a known sort key.
func (s SortBy) IsValid() bool {
	switch s {
	case SortRelevance, SortDate, SortTitle, SortDownloads:
		return true
	}
	return false
}

// SortOrder selects ascending or descending order.
type SortOrder string

const (
	// Asc sorts ascending.
	Asc SortOrder = "asc"
	// Desc sorts descending.
	Desc SortOrder = "desc"
)

// IsValid reports whether o is a known sort order.
func (o SortOrder) IsValid() bool {
	return o == Asc || o == Desc
}

// Pagination limits.
const (
	// MaxQueryLength is the maximum allowed search term length.
	MaxQueryLength = 1024
	DefaultLimit   = 20
	MaxLimit       = 100
)

// Options is a validated sort + pagination parameter set.
type Options struct {
	sortBy    SortBy
	sortOrder SortOrder
	limit     int
	offset    int
}

// New validates and normalizes search options with the package-level page
// size bounds. Defaults: sortBy=relevance, sortOrder=desc, limit=DefaultLimit.
func New(sortBy SortBy, sortOrder SortOrder, limit, offset int) (Options, error) {
	return NewBounded(sortBy, sortOrder, limit, offset, DefaultLimit, MaxLimit)
}

// NewBounded is New with caller-supplied default and maximum page sizes.
// A non-positive bound falls back to the package constant.
func NewBounded(sortBy SortBy, sortOrder SortOrder, limit, offset, defaultLimit, maxLimit int) (Options, error) {
	if defaultLimit <= 0 {
		defaultLimit = DefaultLimit
	}
	if maxLimit <= 0 {
		maxLimit = MaxLimit
	}
	if sortBy == "" {
		sortBy = SortRelevance
	}
	if !sortBy.IsValid() {
		return Options{}, fmt.Errorf("invalid sort_by: %q", sortBy)
	}
	if sortOrder == "" {
		sortOrder = Desc
	}
	if !sortOrder.IsValid() {
		return Options{}, fmt.Errorf("invalid sort_order: %q", sortOrder)
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if offset < 0 {
		return Options{}, fmt.Errorf("offset must be non-negative, got %d", offset)
	}
	return Options{sortBy: sortBy, sortOrder: sortOrder, limit: limit, offset: offset}, nil
}

// Default returns the default option set (relevance desc, limit 20, offset 0).
func Default() Options {
	o, _ := New("", "", 0, 0)
	return o
}

// SortBy returns the sort key.
func (o Options) SortBy() SortBy { return o.sortBy }

// SortOrder returns the sort direction.
func (o Options) SortOrder() SortOrder { return o.sortOrder }

// Limit returns the page size.
func (o Options) Limit() int { return o.limit }

// Offset returns the page offset.
func (o Options) Offset() int { return o.offset }
