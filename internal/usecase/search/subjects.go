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

// SearchSubjects scores subjects matching the optional programme/semester
// filter. After sorting and pagination each surviving subject gets an
// approved-material count; the count is informational and never influences
// scoring or ordering. Fetch failures degrade to an empty page.
func (s *Service) SearchSubjects(
	ctx context.Context, term string, f filter.Filters, opts options.Options,
) result.SubjectPage {
	metrics.SearchRequestsTotal.WithLabelValues("subjects").Inc()

	candidates, err := s.subjects.List(ctx, f.ProgrammeID(), f.Semester())
	if err != nil {
		metrics.SearchFetchFailuresTotal.WithLabelValues("subjects").Inc()
		logger.FromContext(ctx).Warn("subject fetch failed, returning empty page", zap.Error(err))
		return result.SubjectPage{}
	}

	term = normalizeTerm(term)
	hits := make([]result.SubjectResult, 0, len(candidates))
	for _, sub := range candidates {
		// Empty term browses the predicate-filtered set unscored.
		if term == "" {
			hits = append(hits, result.NewSubjectResult(
				sub.Code(), sub.Name(), sub.ProgrammeID(), sub.Semester(), sub.Description(),
				0, nil,
			))
			continue
		}
		score, highlights := scoreFields(term, subjectFields(&sub))
		if score == 0 {
			continue
		}
		hits = append(hits, result.NewSubjectResult(
			sub.Code(), sub.Name(), sub.ProgrammeID(), sub.Semester(), sub.Description(),
			score, highlights,
		))
	}

	sortSubjectResults(hits, opts)
	total := len(hits)
	page := paginate(hits, opts)

	for i := range page {
		count, err := s.materials.CountApproved(ctx, page[i].Code(), f.ProgrammeID())
		if err != nil {
			logger.FromContext(ctx).Warn("material count failed",
				zap.String("subject_code", page[i].Code()), zap.Error(err))
			continue
		}
		page[i] = page[i].WithMaterialCount(count)
	}

	return result.SubjectPage{Items: page, Total: total}
}

func sortSubjectResults(hits []result.SubjectResult, opts options.Options) {
	asc := opts.SortOrder() == options.Asc
	switch opts.SortBy() {
	case options.SortTitle:
		sortStable(hits, asc, func(a, b *result.SubjectResult) bool {
			return strings.ToLower(a.Name()) < strings.ToLower(b.Name())
		})
	default: // relevance; date and downloads do not apply to subjects
		sortStable(hits, asc, func(a, b *result.SubjectResult) bool {
			return a.Score() < b.Score()
		})
	}
}
