// Package subject reads the portal's subject reference collection.
package subject

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/studyfind/studyfind/internal/db"
	"github.com/studyfind/studyfind/internal/domain"
	domsub "github.com/studyfind/studyfind/internal/domain/subject"
)

// maxSubjects caps a single reference fetch. Curricula are small; the cap is
// a safety bound, not a pagination mechanism.
const maxSubjects = 5000

// Key layout and index name for the subject collection.
const (
	keyPrefix = domain.KeyPrefix + "subjects:"
	// IndexName is the FT index over subject documents.
	IndexName = domain.KeyPrefix + "subjects:idx"
)

// store is the consumer interface for subjects (ISP).
type store interface {
	SearchList(ctx context.Context, index, query string, offset, limit int, fields []string) (*db.SearchResult, error)
}

// Repo implements the subject reader used by the search service.
type Repo struct {
	store store
}

// New creates a subject repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// List returns subjects matching the optional programme/semester predicates.
func (r *Repo) List(ctx context.Context, programmeID string, semester int) ([]domsub.Subject, error) {
	q := db.NewQuery().Tag("programme_id", programmeID)
	if semester > 0 {
		q = q.NumericEq("semester", int64(semester))
	}

	res, err := r.store.SearchList(ctx, IndexName, q.String(), 0, maxSubjects, []string{"$"})
	if err != nil {
		if errors.Is(err, db.ErrIndexNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("search subjects: %w", err)
	}
	if res == nil || res.Total == 0 {
		return nil, nil
	}

	subjects := make([]domsub.Subject, 0, len(res.Entries))
	for _, entry := range res.Entries {
		s, err := parseDoc(strings.TrimPrefix(entry.Key, keyPrefix), entry.Fields["$"])
		if err != nil {
			continue
		}
		subjects = append(subjects, s)
	}
	return subjects, nil
}

// subjectDoc is the stored JSON shape, written by the portal application.
// Only the fields listed here cross into the domain record.
type subjectDoc struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	ProgrammeID string `json:"programme_id"`
	Semester    int    `json:"semester"`
	Description string `json:"description,omitempty"`
}

func parseDoc(key, raw string) (domsub.Subject, error) {
	if raw == "" {
		return domsub.Subject{}, fmt.Errorf("%w: empty document %s", domain.ErrInvalidRecord, key)
	}
	var d subjectDoc
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		return domsub.Subject{}, fmt.Errorf("%w: %s: %w", domain.ErrInvalidRecord, key, err)
	}
	code := d.Code
	if code == "" {
		code = key
	}
	return domsub.Reconstruct(code, d.Name, d.ProgrammeID, d.Semester, d.Description), nil
}

// EnsureIndex creates the subject FT index if it does not exist yet.
func (r *Repo) EnsureIndex(ctx context.Context, mgr db.IndexManager) error {
	def := db.NewIndex(IndexName).
		Prefix(keyPrefix).
		Tag("$.programme_id", "programme_id").
		Numeric("$.semester", "semester").
		MustBuild()

	if err := mgr.CreateIndex(ctx, def); err != nil {
		if errors.Is(err, db.ErrIndexExists) {
			return nil
		}
		return fmt.Errorf("create subject index: %w", err)
	}
	return nil
}
