// Package db defines the storage contract the search service reads through.
// The portal application owns all writes; this service only ever reads.
package db

import (
	"context"
	"time"
)

// Store is the read-side database facade. Consumers depend on the narrow
// sub-interfaces, never on Store itself.
type Store interface {
	Pinger
	IndexManager
	Searcher
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// IndexManager ensures the FT indexes used for structural filtering exist.
type IndexManager interface {
	CreateIndex(ctx context.Context, def *IndexDefinition) error
	IndexExists(ctx context.Context, name string) (bool, error)
}

// Searcher runs FT.SEARCH queries. Queries carry only structural predicates
// (tag and numeric filters); text relevance is computed by the caller.
type Searcher interface {
	SearchList(ctx context.Context, index, query string, offset, limit int, fields []string) (*SearchResult, error)
	SearchCount(ctx context.Context, index, query string) (int, error)
}

// SearchResult is the output of an FT.SEARCH call.
type SearchResult struct {
	Total   int
	Entries []SearchEntry
}

// SearchEntry is a single document hit.
type SearchEntry struct {
	Key    string
	Fields map[string]string
}
