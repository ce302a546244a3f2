// Package comment reads the portal's comment collection. Comments are stored
// per material; there is no global comment index to query against.
package comment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/studyfind/studyfind/internal/db"
	"github.com/studyfind/studyfind/internal/domain"
	domcom "github.com/studyfind/studyfind/internal/domain/comment"
)

// maxPerMaterial caps the comment fetch for a single material.
const maxPerMaterial = 1000

// Key layout and index name for the comment collection.
const (
	keyPrefix = domain.KeyPrefix + "comments:"
	// IndexName is the FT index over comment documents.
	IndexName = domain.KeyPrefix + "comments:idx"
)

// store is the consumer interface for comments (ISP).
type store interface {
	SearchList(ctx context.Context, index, query string, offset, limit int, fields []string) (*db.SearchResult, error)
}

// Repo implements the comment reader used by the search service.
type Repo struct {
	store store
}

// New creates a comment repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// ListByMaterial returns all comments attached to one material, in stored order.
func (r *Repo) ListByMaterial(ctx context.Context, materialID string) ([]domcom.Comment, error) {
	query := db.NewQuery().Tag("material_id", materialID).String()

	res, err := r.store.SearchList(ctx, IndexName, query, 0, maxPerMaterial, []string{"$"})
	if err != nil {
		if errors.Is(err, db.ErrIndexNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("search comments for %s: %w", materialID, err)
	}
	if res == nil || res.Total == 0 {
		return nil, nil
	}

	comments := make([]domcom.Comment, 0, len(res.Entries))
	for _, entry := range res.Entries {
		c, err := parseDoc(strings.TrimPrefix(entry.Key, keyPrefix), entry.Fields["$"])
		if err != nil {
			continue
		}
		comments = append(comments, c)
	}
	return comments, nil
}

// commentDoc is the stored JSON shape, written by the portal application.
// Only the fields listed here cross into the domain record.
type commentDoc struct {
	MaterialID      string `json:"material_id"`
	Content         string `json:"content"`
	AuthorID        string `json:"author_id"`
	AuthorName      string `json:"author_name"`
	AuthorRole      string `json:"author_role"`
	AttachmentCount int    `json:"attachment_count,omitempty"`
	CreatedAt       int64  `json:"created_at"`
}

func parseDoc(id, raw string) (domcom.Comment, error) {
	if raw == "" {
		return domcom.Comment{}, fmt.Errorf("%w: empty document %s", domain.ErrInvalidRecord, id)
	}
	var d commentDoc
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		return domcom.Comment{}, fmt.Errorf("%w: %s: %w", domain.ErrInvalidRecord, id, err)
	}
	return domcom.Reconstruct(
		id, d.MaterialID, d.Content, d.AuthorID, d.AuthorName, d.AuthorRole,
		d.AttachmentCount, d.CreatedAt,
	), nil
}

// EnsureIndex creates the comment FT index if it does not exist yet.
func (r *Repo) EnsureIndex(ctx context.Context, mgr db.IndexManager) error {
	def := db.NewIndex(IndexName).
		Prefix(keyPrefix).
		Tag("$.material_id", "material_id").
		Tag("$.author_id", "author_id").
		Numeric("$.created_at", "created_at").
		MustBuild()

	if err := mgr.CreateIndex(ctx, def); err != nil {
		if errors.Is(err, db.ErrIndexExists) {
			return nil
		}
		return fmt.Errorf("create comment index: %w", err)
	}
	return nil
}
