package search

import (
	"context"
	"errors"
	"testing"

	"github.com/studyfind/studyfind/internal/domain/search/filter"
	"github.com/studyfind/studyfind/internal/domain/search/options"
	"github.com/studyfind/studyfind/internal/domain/subject"
)

func TestSearchSubjects_ScoresAndCounts(t *testing.T) {
	subjects := &mockSubjects{subjects: []subject.Subject{
		mkSubject("DPP20023", "Business Programming", ""),
		mkSubject("DPC10012", "Chemistry", ""),
	}}
	materials := &mockMaterials{counts: map[string]int{"DPP20023": 7}}
	svc := newTestService(materials, nil, subjects)

	page := svc.SearchSubjects(context.Background(), "business", filter.Filters{}, options.Default())

	if page.Total != 1 {
		t.Fatalf("Total = %d, want 1", page.Total)
	}
	hit := page.Items[0]
	if hit.Code() != "DPP20023" {
		t.Fatalf("code = %s, want DPP20023", hit.Code())
	}
	if hit.Score() != 3 {
		t.Errorf("score = %v, want 3 (name only)", hit.Score())
	}
	if got := hit.Highlights()["name"]; got != "<mark>Business</mark> Programming" {
		t.Errorf("name highlight = %q", got)
	}
	if hit.MaterialCount() != 7 {
		t.Errorf("material count = %d, want 7", hit.MaterialCount())
	}
}

func TestSearchSubjects_EmptyTermReturnsAllUnscored(t *testing.T) {
	subjects := &mockSubjects{subjects: []subject.Subject{
		mkSubject("DPP20023", "Business Programming", ""),
		mkSubject("DPC10012", "Chemistry", ""),
	}}
	svc := newTestService(&mockMaterials{}, nil, subjects)

	page := svc.SearchSubjects(context.Background(), "", filter.Filters{}, options.Default())

	if page.Total != 2 {
		t.Fatalf("Total = %d, want 2", page.Total)
	}
	for _, hit := range page.Items {
		if hit.Score() != 0 {
			t.Errorf("subject %s: score = %v, want 0", hit.Code(), hit.Score())
		}
		if hit.Highlights() != nil {
			t.Errorf("subject %s: highlights = %v, want nil", hit.Code(), hit.Highlights())
		}
	}
}

func TestSearchSubjects_PassesPredicatesToReader(t *testing.T) {
	subjects := &mockSubjects{}
	svc := newTestService(nil, nil, subjects)

	f, err := filter.New("PROG1", "", "", 3, "", 0, 0)
	if err != nil {
		t.Fatalf("filter.New: %v", err)
	}
	svc.SearchSubjects(context.Background(), "business", f, options.Default())

	if subjects.lastProgramme != "PROG1" || subjects.lastSemester != 3 {
		t.Errorf("reader predicates = (%s, %d), want (PROG1, 3)",
			subjects.lastProgramme, subjects.lastSemester)
	}
}

func TestSearchSubjects_FetchErrorDegrades(t *testing.T) {
	subjects := &mockSubjects{err: errors.New("conn refused")}
	svc := newTestService(nil, nil, subjects)

	page := svc.SearchSubjects(context.Background(), "business", filter.Filters{}, options.Default())

	if page.Total != 0 || len(page.Items) != 0 {
		t.Errorf("degraded page = %+v, want empty", page)
	}
}

func TestSearchSubjects_CountErrorLeavesZero(t *testing.T) {
	subjects := &mockSubjects{subjects: []subject.Subject{
		mkSubject("DPP20023", "Business Programming", ""),
	}}
	materials := &mockMaterials{countErr: errors.New("timeout")}
	svc := newTestService(materials, nil, subjects)

	page := svc.SearchSubjects(context.Background(), "business", filter.Filters{}, options.Default())

	if page.Total != 1 {
		t.Fatalf("Total = %d, want 1", page.Total)
	}
	if page.Items[0].MaterialCount() != 0 {
		t.Errorf("material count = %d, want 0 after count failure", page.Items[0].MaterialCount())
	}
}

func TestSearchSubjects_CountsOnlyReturnedPage(t *testing.T) {
	subjects := &mockSubjects{subjects: []subject.Subject{
		mkSubject("S1", "Business Law", ""),
		mkSubject("S2", "Business Maths", ""),
		mkSubject("S3", "Business Writing", ""),
	}}
	materials := &mockMaterials{counts: map[string]int{}}
	svc := newTestService(materials, nil, subjects)

	opts := mkOptions(t, options.SortTitle, options.Asc, 2, 0)
	page := svc.SearchSubjects(context.Background(), "business", filter.Filters{}, opts)

	if page.Total != 3 {
		t.Fatalf("Total = %d, want 3", page.Total)
	}
	if len(page.Items) != 2 {
		t.Fatalf("len(Items) = %d, want 2", len(page.Items))
	}
	if len(materials.countCalls) != 2 {
		t.Errorf("count calls = %v, want exactly the paginated 2", materials.countCalls)
	}
}

func TestSearchSubjects_SortByTitle(t *testing.T) {
	subjects := &mockSubjects{subjects: []subject.Subject{
		mkSubject("S2", "business Zeta", ""),
		mkSubject("S1", "Business Alpha", ""),
	}}
	svc := newTestService(&mockMaterials{}, nil, subjects)

	opts := mkOptions(t, options.SortTitle, options.Asc, 10, 0)
	page := svc.SearchSubjects(context.Background(), "business", filter.Filters{}, opts)

	if got := page.Items[0].Code(); got != "S1" {
		t.Errorf("Items[0] = %s, want S1", got)
	}
}
