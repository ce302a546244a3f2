package material

import (
	"context"
	"testing"

	"github.com/studyfind/studyfind/internal/db"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	searchListFn  func(ctx context.Context, index, query string, offset, limit int, fields []string) (*db.SearchResult, error)
	searchCountFn func(ctx context.Context, index, query string) (int, error)
}

func (m *mockStore) SearchList(
	ctx context.Context, index, query string, offset, limit int, fields []string,
) (*db.SearchResult, error) {
	if m.searchListFn != nil {
		return m.searchListFn(ctx, index, query, offset, limit, fields)
	}
	return &db.SearchResult{}, nil
}

func (m *mockStore) SearchCount(ctx context.Context, index, query string) (int, error) {
	if m.searchCountFn != nil {
		return m.searchCountFn(ctx, index, query)
	}
	return 0, nil
}

func newTestRepo(t *testing.T) (*Repo, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	return New(ms), ms
}

const approvedDoc = `{
	"title": "Database Systems Notes",
	"description": "full semester notes",
	"type": "note",
	"programme_id": "PROG1",
	"semester": 3,
	"subject_code": "DPP20023",
	"subject_name": "Database Systems",
	"uploader_id": "u1",
	"uploader_name": "Alice Tan",
	"uploader_role": "student",
	"file_name": "notes.pdf",
	"file_size": 2048,
	"uploaded_at": 1700000000000,
	"status": "approved",
	"download_count": 12,
	"view_count": 40
}`
