// Package search implements the cross-entity search core: weighted multi-field
// text matching, highlight generation, per-entity ranking, and the combined
// material/comment envelope merge. All entity fetches degrade to empty results
// on failure; nothing in this package ever writes to the store.
package search

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/studyfind/studyfind/internal/domain/search/filter"
	"github.com/studyfind/studyfind/internal/domain/search/options"
	"github.com/studyfind/studyfind/internal/domain/search/result"
	"github.com/studyfind/studyfind/internal/metrics"
)

// defaultCommentConcurrency bounds parallel per-material comment fetches.
const defaultCommentConcurrency = 8

// Service handles search across materials, comments, and subjects.
type Service struct {
	materials MaterialReader
	comments  CommentReader
	subjects  SubjectReader
	logger    *zap.Logger

	commentConcurrency int
}

// New creates a search service.
func New(materials MaterialReader, comments CommentReader, subjects SubjectReader, logger *zap.Logger) *Service {
	return &Service{
		materials:          materials,
		comments:           comments,
		subjects:           subjects,
		logger:             logger,
		commentConcurrency: defaultCommentConcurrency,
	}
}

// WithCommentConcurrency overrides the per-material comment fetch bound.
func (s *Service) WithCommentConcurrency(n int) *Service {
	if n > 0 {
		s.commentConcurrency = n
	}
	return s
}

// SearchAll runs the three entity searches concurrently, merges materials and
// comments into the unified envelope, re-ranks the combined list by relevance
// score, and reports per-entity totals. It never returns an error: any
// unexpected failure degrades to an all-empty response echoing the query and
// filters.
func (s *Service) SearchAll(
	ctx context.Context, term string, f filter.Filters, opts options.Options,
) (combined result.Combined) {
	combined = result.Combined{Query: term, Filters: f}
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("search recovered from panic", zap.Any("panic", r), zap.Stack("stacktrace"))
			combined = result.Combined{Query: term, Filters: f}
		}
	}()

	metrics.SearchRequestsTotal.WithLabelValues("all").Inc()

	var (
		materials result.MaterialPage
		comments  result.CommentPage
		subjects  result.SubjectPage
	)

	// errgroup re-raises goroutine panics from Wait, where the deferred
	// recover above catches them.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		materials = s.SearchMaterials(gctx, term, f, opts)
		return nil
	})
	g.Go(func() error {
		comments = s.SearchComments(gctx, term, f, opts)
		return nil
	})
	g.Go(func() error {
		subjects = s.SearchSubjects(gctx, term, f, opts)
		return nil
	})
	_ = g.Wait()

	merged := mergeEnvelopes(materials.Items, comments.Items)
	if len(merged) > opts.Limit() {
		merged = merged[:opts.Limit()]
	}

	combined.Results = merged
	combined.Subjects = subjects.Items
	combined.MaterialTotal = materials.Total
	combined.CommentTotal = comments.Total
	combined.SubjectTotal = subjects.Total
	combined.HasMore = materials.Total > opts.Limit() ||
		comments.Total > opts.Limit() ||
		subjects.Total > opts.Limit()
	return combined
}

// paginate slices a sorted result list. Totals are reported by callers from
// the pre-pagination length; an offset at or past the end yields an empty page.
func paginate[T any](items []T, opts options.Options) []T {
	if opts.Offset() >= len(items) {
		return nil
	}
	end := opts.Offset() + opts.Limit()
	if end > len(items) {
		end = len(items)
	}
	return items[opts.Offset():end]
}

// sortStable orders items by the given key, descending unless asc is set.
// sort.SliceStable keeps candidate-fetch order for ties.
func sortStable[T any](items []T, asc bool, less func(a, b *T) bool) {
	sort.SliceStable(items, func(i, j int) bool {
		if asc {
			return less(&items[i], &items[j])
		}
		return less(&items[j], &items[i])
	})
}

func normalizeTerm(term string) string {
	return strings.TrimSpace(term)
}
