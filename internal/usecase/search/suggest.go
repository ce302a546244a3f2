package search

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/studyfind/studyfind/internal/domain/search/filter"
	"github.com/studyfind/studyfind/internal/domain/search/options"
)

// minSuggestTermLen is the minimum term length before suggestions are computed.
const minSuggestTermLen = 2

// Suggestions derives autocomplete candidates from a live materials-only
// search: de-duplicated titles, subject names, and uploader names, with the
// requested limit split proportionally across the three sources. There is no
// suggestion index; every call re-derives from the current material set.
func (s *Service) Suggestions(ctx context.Context, term string, limit int) []string {
	term = normalizeTerm(term)
	if utf8.RuneCountInString(term) < minSuggestTermLen || limit <= 0 {
		return nil
	}

	opts, err := options.New(options.SortRelevance, options.Desc, limit, 0)
	if err != nil {
		return nil
	}
	page := s.SearchMaterials(ctx, term, filter.Filters{}, opts)
	if len(page.Items) == 0 {
		return nil
	}

	perSource := (limit + 2) / 3
	seen := make(map[string]struct{})
	suggestions := make([]string, 0, limit)

	collect := func(value func(i int) string) {
		taken := 0
		for i := range page.Items {
			if taken >= perSource || len(suggestions) >= limit {
				return
			}
			v := strings.TrimSpace(value(i))
			if v == "" {
				continue
			}
			key := strings.ToLower(v)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			suggestions = append(suggestions, v)
			taken++
		}
	}

	collect(func(i int) string { return page.Items[i].Material().Title() })
	collect(func(i int) string { return page.Items[i].Material().SubjectName() })
	collect(func(i int) string { return page.Items[i].Material().UploaderName() })

	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions
}
