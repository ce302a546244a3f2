package search

import (
	"github.com/studyfind/studyfind/internal/domain/comment"
	"github.com/studyfind/studyfind/internal/domain/material"
	"github.com/studyfind/studyfind/internal/domain/subject"
)

// weightedField pairs a field's text with its fixed relevance weight.
// Each entity kind has its own ordered table below.
type weightedField struct {
	name   string
	weight float64
	text   string
}

// scoreFields sums the weights of fields containing term and collects the
// highlighted copies keyed by field name. Weights are additive: a record
// matching on two fields scores the sum of both weights, never the max.
// A record with no matching field yields score 0 and a nil highlight map;
// callers must drop such records before they reach a visible result.
func scoreFields(term string, fields []weightedField) (float64, map[string]string) {
	var score float64
	var highlights map[string]string

	for _, f := range fields {
		ok, highlighted := match(f.text, term)
		if !ok {
			continue
		}
		score += f.weight
		if highlights == nil {
			highlights = make(map[string]string, len(fields))
		}
		highlights[f.name] = highlighted
	}

	return score, highlights
}

// materialFields is the fixed weight table for materials.
func materialFields(m *material.Material) []weightedField {
	return []weightedField{
		{name: "title", weight: 3, text: m.Title()},
		{name: "description", weight: 2, text: m.Description()},
		{name: "subject_name", weight: 2, text: m.SubjectName()},
		{name: "uploader_name", weight: 1, text: m.UploaderName()},
		{name: "subject_code", weight: 1, text: m.SubjectCode()},
		{name: "type", weight: 1, text: string(m.MaterialType())},
	}
}

// commentFields is the fixed weight table for comments: content is primary,
// author name secondary.
func commentFields(c *comment.Comment) []weightedField {
	return []weightedField{
		{name: "content", weight: 2, text: c.Content()},
		{name: "author_name", weight: 1, text: c.AuthorName()},
	}
}

// subjectFields is the fixed weight table for subjects.
func subjectFields(s *subject.Subject) []weightedField {
	return []weightedField{
		{name: "name", weight: 3, text: s.Name()},
		{name: "code", weight: 2, text: s.Code()},
		{name: "description", weight: 1, text: s.Description()},
	}
}
