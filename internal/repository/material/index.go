package material

import (
	"context"
	"errors"
	"fmt"

	"github.com/studyfind/studyfind/internal/db"
)

// EnsureIndex creates the material FT index if it does not exist yet.
// Safe to call on every startup.
func (r *Repo) EnsureIndex(ctx context.Context, mgr db.IndexManager) error {
	def := db.NewIndex(IndexName).
		Prefix(keyPrefix).
		Tag("$.status", "status").
		Tag("$.programme_id", "programme_id").
		Tag("$.subject_code", "subject_code").
		Tag("$.type", "type").
		Tag("$.uploader_id", "uploader_id").
		Numeric("$.semester", "semester").
		Numeric("$.uploaded_at", "uploaded_at").
		Numeric("$.download_count", "download_count").
		MustBuild()

	if err := mgr.CreateIndex(ctx, def); err != nil {
		if errors.Is(err, db.ErrIndexExists) {
			return nil
		}
		return fmt.Errorf("create material index: %w", err)
	}
	return nil
}
