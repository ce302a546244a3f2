package search

import (
	"context"

	"github.com/studyfind/studyfind/internal/domain/comment"
	"github.com/studyfind/studyfind/internal/domain/material"
	"github.com/studyfind/studyfind/internal/domain/search/filter"
	"github.com/studyfind/studyfind/internal/domain/subject"
)

// MaterialReader fetches approved materials bounded by structural filters.
// Text matching is never the reader's responsibility.
type MaterialReader interface {
	ListApproved(ctx context.Context, f filter.Filters) ([]material.Material, error)
	CountApproved(ctx context.Context, subjectCode, programmeID string) (int, error)
}

// CommentReader fetches the comments of a single material.
type CommentReader interface {
	ListByMaterial(ctx context.Context, materialID string) ([]comment.Comment, error)
}

// SubjectReader fetches subjects bounded by the optional programme/semester
// predicates. Usually decorated with a TTL cache at the composition root.
type SubjectReader interface {
	List(ctx context.Context, programmeID string, semester int) ([]subject.Subject, error)
}
