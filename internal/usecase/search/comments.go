package search

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/studyfind/studyfind/internal/domain/comment"
	"github.com/studyfind/studyfind/internal/domain/search/filter"
	"github.com/studyfind/studyfind/internal/domain/search/options"
	"github.com/studyfind/studyfind/internal/domain/search/result"
	"github.com/studyfind/studyfind/internal/logger"
	"github.com/studyfind/studyfind/internal/metrics"
)

// SearchComments scores the comments of every material passing the
// material-level structural filters. Comments are fetched per qualifying
// material with bounded concurrency; the concatenation order follows the
// material candidate order regardless of fetch completion order. Fetch
// failures degrade to an empty page.
func (s *Service) SearchComments(
	ctx context.Context, term string, f filter.Filters, opts options.Options,
) result.CommentPage {
	metrics.SearchRequestsTotal.WithLabelValues("comments").Inc()

	materials, err := s.materials.ListApproved(ctx, f)
	if err != nil {
		metrics.SearchFetchFailuresTotal.WithLabelValues("comments").Inc()
		logger.FromContext(ctx).Warn("material fetch for comment search failed, returning empty page", zap.Error(err))
		return result.CommentPage{}
	}
	if len(materials) == 0 {
		return result.CommentPage{}
	}

	perMaterial := make([][]comment.Comment, len(materials))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.commentConcurrency)
	for i, m := range materials {
		i, m := i, m
		g.Go(func() error {
			comments, err := s.comments.ListByMaterial(gctx, m.ID())
			if err != nil {
				return err
			}
			perMaterial[i] = comments
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		metrics.SearchFetchFailuresTotal.WithLabelValues("comments").Inc()
		logger.FromContext(ctx).Warn("comment fetch failed, returning empty page", zap.Error(err))
		return result.CommentPage{}
	}

	term = normalizeTerm(term)
	var hits []result.CommentHit
	for _, comments := range perMaterial {
		for _, c := range comments {
			score, highlights := scoreFields(term, commentFields(&c))
			if score == 0 {
				continue
			}
			hits = append(hits, result.NewCommentHit(c, score, highlights))
		}
	}

	sortCommentHits(hits, opts)
	total := len(hits)
	return result.CommentPage{Items: paginate(hits, opts), Total: total}
}

func sortCommentHits(hits []result.CommentHit, opts options.Options) {
	asc := opts.SortOrder() == options.Asc
	switch opts.SortBy() {
	case options.SortDate:
		sortStable(hits, asc, func(a, b *result.CommentHit) bool {
			return a.Comment().CreatedAt() < b.Comment().CreatedAt()
		})
	case options.SortTitle:
		sortStable(hits, asc, func(a, b *result.CommentHit) bool {
			return strings.ToLower(a.Comment().Content()) < strings.ToLower(b.Comment().Content())
		})
	default: // relevance; downloads does not apply to comments
		sortStable(hits, asc, func(a, b *result.CommentHit) bool {
			return a.Score() < b.Score()
		})
	}
}
