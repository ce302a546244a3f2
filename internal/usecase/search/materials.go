package search

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/studyfind/studyfind/internal/domain/search/filter"
	"github.com/studyfind/studyfind/internal/domain/search/options"
	"github.com/studyfind/studyfind/internal/domain/search/result"
	"github.com/studyfind/studyfind/internal/logger"
	"github.com/studyfind/studyfind/internal/metrics"
)

// SearchMaterials fetches approved materials bounded by the structural
// filters, scores them against term, drops zero-score records, sorts, and
// paginates. An empty term skips scoring entirely: every candidate survives
// unscored and non-relevance sorts are still honored. Fetch failures degrade
// to an empty page.
func (s *Service) SearchMaterials(
	ctx context.Context, term string, f filter.Filters, opts options.Options,
) result.MaterialPage {
	metrics.SearchRequestsTotal.WithLabelValues("materials").Inc()

	candidates, err := s.materials.ListApproved(ctx, f)
	if err != nil {
		metrics.SearchFetchFailuresTotal.WithLabelValues("materials").Inc()
		logger.FromContext(ctx).Warn("material fetch failed, returning empty page", zap.Error(err))
		return result.MaterialPage{}
	}

	term = normalizeTerm(term)
	hits := make([]result.MaterialHit, 0, len(candidates))
	for _, m := range candidates {
		if term == "" {
			hits = append(hits, result.NewMaterialHit(m, 0, nil))
			continue
		}
		score, highlights := scoreFields(term, materialFields(&m))
		if score == 0 {
			continue
		}
		hits = append(hits, result.NewMaterialHit(m, score, highlights))
	}

	sortMaterialHits(hits, opts)
	total := len(hits)
	return result.MaterialPage{Items: paginate(hits, opts), Total: total}
}

func sortMaterialHits(hits []result.MaterialHit, opts options.Options) {
	asc := opts.SortOrder() == options.Asc
	switch opts.SortBy() {
	case options.SortDate:
		sortStable(hits, asc, func(a, b *result.MaterialHit) bool {
			return a.Material().UploadedAt() < b.Material().UploadedAt()
		})
	case options.SortTitle:
		sortStable(hits, asc, func(a, b *result.MaterialHit) bool {
			return strings.ToLower(a.Material().Title()) < strings.ToLower(b.Material().Title())
		})
	case options.SortDownloads:
		sortStable(hits, asc, func(a, b *result.MaterialHit) bool {
			return a.Material().DownloadCount() < b.Material().DownloadCount()
		})
	default: // relevance
		sortStable(hits, asc, func(a, b *result.MaterialHit) bool {
			return a.Score() < b.Score()
		})
	}
}
