package search

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/studyfind/studyfind/internal/domain/comment"
	"github.com/studyfind/studyfind/internal/domain/material"
	"github.com/studyfind/studyfind/internal/domain/search/filter"
	"github.com/studyfind/studyfind/internal/domain/search/options"
	"github.com/studyfind/studyfind/internal/domain/subject"
)

// --- Mocks ---

type mockMaterials struct {
	materials  []material.Material
	listErr    error
	listPanics bool
	counts     map[string]int
	countErr   error
	lastFilter filter.Filters
	countCalls []string
}

func (m *mockMaterials) ListApproved(_ context.Context, f filter.Filters) ([]material.Material, error) {
	if m.listPanics {
		panic("boom")
	}
	m.lastFilter = f
	return m.materials, m.listErr
}

func (m *mockMaterials) CountApproved(_ context.Context, subjectCode, _ string) (int, error) {
	m.countCalls = append(m.countCalls, subjectCode)
	if m.countErr != nil {
		return 0, m.countErr
	}
	return m.counts[subjectCode], nil
}

type mockComments struct {
	byMaterial map[string][]comment.Comment
	err        error
}

func (m *mockComments) ListByMaterial(_ context.Context, materialID string) ([]comment.Comment, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.byMaterial[materialID], nil
}

type mockSubjects struct {
	subjects      []subject.Subject
	err           error
	lastProgramme string
	lastSemester  int
}

func (m *mockSubjects) List(_ context.Context, programmeID string, semester int) ([]subject.Subject, error) {
	m.lastProgramme = programmeID
	m.lastSemester = semester
	return m.subjects, m.err
}

// --- Fixtures ---

func newTestService(m *mockMaterials, c *mockComments, s *mockSubjects) *Service {
	if m == nil {
		m = &mockMaterials{}
	}
	if c == nil {
		c = &mockComments{}
	}
	if s == nil {
		s = &mockSubjects{}
	}
	return New(m, c, s, zap.NewNop())
}

func mkMaterial(id, title, description, subjectName string) material.Material {
	return material.Reconstruct(
		id, title, description, material.TypeNote,
		"PROG1", 3, "DPP20023", subjectName,
		"u1", "Alice Tan", "student",
		id+".pdf", 1024, 1700000000000,
		material.StatusApproved, 0, 0,
	)
}

func mkComment(id, materialID, content, authorName string) comment.Comment {
	return comment.Reconstruct(id, materialID, content, "a1", authorName, "student", 0, 1700000100000)
}

func mkSubject(code, name, description string) subject.Subject {
	return subject.Reconstruct(code, name, "PROG1", 3, description)
}

func mkOptions(t *testing.T, sortBy options.SortBy, sortOrder options.SortOrder, limit, offset int) options.Options {
	t.Helper()
	o, err := options.New(sortBy, sortOrder, limit, offset)
	if err != nil {
		t.Fatalf("options.New: %v", err)
	}
	return o
}
