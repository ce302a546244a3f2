// Package material reads the portal's material collection. The approval
// workflow and uploads live in the portal application; this repository only
// ever reads approved records for search.
package material

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/studyfind/studyfind/internal/db"
	"github.com/studyfind/studyfind/internal/domain"
	dommat "github.com/studyfind/studyfind/internal/domain/material"
	"github.com/studyfind/studyfind/internal/domain/search/filter"
)

// maxCandidates caps a single structural fetch. Relevance scoring needs the
// full filtered candidate set, so the fetch is bounded here rather than by
// the caller's page size.
const maxCandidates = 10000

// store is the consumer interface for materials (ISP).
type store interface {
	SearchList(ctx context.Context, index, query string, offset, limit int, fields []string) (*db.SearchResult, error)
	SearchCount(ctx context.Context, index, query string) (int, error)
}

// Repo implements the material reader used by the search service.
type Repo struct {
	store store
}

// New creates a material repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// ListApproved returns every approved material matching the structural
// filters. Text matching is not this layer's responsibility.
func (r *Repo) ListApproved(ctx context.Context, f filter.Filters) ([]dommat.Material, error) {
	query := approvedQuery(f)

	res, err := r.store.SearchList(ctx, IndexName, query, 0, maxCandidates, []string{"$"})
	if err != nil {
		if errors.Is(err, db.ErrIndexNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("search materials: %w", err)
	}
	if res == nil || res.Total == 0 {
		return nil, nil
	}

	materials := make([]dommat.Material, 0, len(res.Entries))
	for _, entry := range res.Entries {
		m, err := parseDoc(extractID(entry.Key), entry.Fields["$"])
		if err != nil {
			continue // skip unmappable documents, keep the rest
		}
		materials = append(materials, m)
	}
	return materials, nil
}

// CountApproved returns the number of approved materials referencing the
// given subject (and programme, when set).
func (r *Repo) CountApproved(ctx context.Context, subjectCode, programmeID string) (int, error) {
	query := db.NewQuery().
		Tag("status", string(dommat.StatusApproved)).
		Tag("subject_code", subjectCode).
		Tag("programme_id", programmeID).
		String()

	n, err := r.store.SearchCount(ctx, IndexName, query)
	if err != nil {
		return 0, fmt.Errorf("count materials: %w", err)
	}
	return n, nil
}

// approvedQuery renders the structural filter set into an FT.SEARCH query.
// Approval status is always pinned to approved before any caller predicate.
func approvedQuery(f filter.Filters) string {
	return db.NewQuery().
		Tag("status", string(dommat.StatusApproved)).
		Tag("programme_id", f.ProgrammeID()).
		Tag("subject_code", f.SubjectCode()).
		Tag("type", f.MaterialType()).
		Tag("uploader_id", f.UploaderID()).
		NumericRange("semester", int64(f.Semester()), int64(f.Semester())).
		NumericRange("uploaded_at", f.UploadedFrom(), f.UploadedTo()).
		String()
}

func extractID(key string) string {
	return strings.TrimPrefix(key, keyPrefix)
}
