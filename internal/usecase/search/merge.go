package search

import (
	"html"
	"sort"

	"github.com/studyfind/studyfind/internal/domain/search/result"
)

// commentCombinedScore is the flat relevance score every comment carries in
// the combined list, regardless of match strength. Entity-level comment
// results keep their weighted score; the merge discards it, so a comment
// ranks below any positively-scored material unless no materials matched.
// Kept as observed portal behavior; see DESIGN.md before changing.
const commentCombinedScore = 1

// snippetMaxLen bounds the plain-text fallback excerpt.
const snippetMaxLen = 160

// mergeEnvelopes converts material and comment hits into the unified
// envelope, concatenates them, and re-sorts purely by relevance score
// descending. This is a second, coarser ranking pass on top of each entity's
// own ordering. Subjects never enter this list.
func mergeEnvelopes(materials []result.MaterialHit, comments []result.CommentHit) []result.Result {
	merged := make([]result.Result, 0, len(materials)+len(comments))
	for i := range materials {
		merged = append(merged, materialEnvelope(&materials[i]))
	}
	for i := range comments {
		merged = append(merged, commentEnvelope(&comments[i]))
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].RelevanceScore() > merged[j].RelevanceScore()
	})
	return merged
}

func materialEnvelope(hit *result.MaterialHit) result.Result {
	m := hit.Material()
	snippet := pickSnippet(hit.Highlights(), "description", "title", m.Description(), m.Title())
	return result.NewResult(
		result.KindMaterial, m.ID(), m.Title(), m.Description(), snippet,
		hit.Score(), hit.Highlights(),
	).WithMaterialFields(
		m.ProgrammeID(), m.SubjectCode(), string(m.MaterialType()),
		m.FileName(), m.FileSize(), m.DownloadCount(), m.UploadedAt(),
	)
}

func commentEnvelope(hit *result.CommentHit) result.Result {
	c := hit.Comment()
	snippet := pickSnippet(hit.Highlights(), "content", "", c.Content(), "")
	return result.NewResult(
		result.KindComment, c.ID(), "", "", snippet,
		commentCombinedScore, hit.Highlights(),
	).WithCommentFields(c.MaterialID(), c.AuthorName(), c.CreatedAt())
}

// pickSnippet prefers the primary field's highlight, then the secondary's,
// then an escaped plain-text excerpt. The result is always markup-safe.
func pickSnippet(highlights map[string]string, primary, secondary, primaryText, secondaryText string) string {
	if hl, ok := highlights[primary]; ok {
		return hl
	}
	if secondary != "" {
		if hl, ok := highlights[secondary]; ok {
			return hl
		}
	}
	text := primaryText
	if text == "" {
		text = secondaryText
	}
	return html.EscapeString(truncate(text, snippetMaxLen))
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "…"
}
