package search

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/studyfind/studyfind/internal/domain/material"
	"github.com/studyfind/studyfind/internal/domain/search/filter"
	"github.com/studyfind/studyfind/internal/domain/search/options"
)

func TestSearchMaterials_ScoresAndRanks(t *testing.T) {
	materials := &mockMaterials{materials: []material.Material{
		mkMaterial("m1", "Database Systems Notes", "", "Database Systems"), // 3+2=5
		mkMaterial("m2", "Final Exam 2024", "covers database normalization", "Database Systems"), // 2+2=4
		mkMaterial("m3", "Chemistry Basics", "", "Chemistry"), // 0, dropped
	}}
	svc := newTestService(materials, nil, nil)

	page := svc.SearchMaterials(context.Background(), "database", filter.Filters{}, options.Default())

	if page.Total != 2 {
		t.Fatalf("Total = %d, want 2", page.Total)
	}
	if len(page.Items) != 2 {
		t.Fatalf("len(Items) = %d, want 2", len(page.Items))
	}
	if got := page.Items[0].Material().ID(); got != "m1" {
		t.Errorf("Items[0] = %s, want m1", got)
	}
	if page.Items[0].Score() != 5 {
		t.Errorf("Items[0] score = %v, want 5", page.Items[0].Score())
	}
	if got := page.Items[0].Highlights()["title"]; got != "<mark>Database</mark> Systems Notes" {
		t.Errorf("title highlight = %q", got)
	}
	if page.Items[1].Score() != 4 {
		t.Errorf("Items[1] score = %v, want 4", page.Items[1].Score())
	}
}

func TestSearchMaterials_EmptyTermReturnsAllUnscored(t *testing.T) {
	materials := &mockMaterials{materials: []material.Material{
		mkMaterial("m1", "Database Systems Notes", "", "Database Systems"),
		mkMaterial("m2", "Chemistry Basics", "", "Chemistry"),
	}}
	svc := newTestService(materials, nil, nil)

	page := svc.SearchMaterials(context.Background(), "   ", filter.Filters{}, options.Default())

	if page.Total != 2 {
		t.Fatalf("Total = %d, want 2", page.Total)
	}
	for _, hit := range page.Items {
		if hit.Score() != 0 {
			t.Errorf("empty-term hit score = %v, want 0", hit.Score())
		}
		if hit.Highlights() != nil {
			t.Errorf("empty-term hit highlights = %v, want nil", hit.Highlights())
		}
	}
}

func TestSearchMaterials_FetchErrorDegradesToEmpty(t *testing.T) {
	materials := &mockMaterials{listErr: errors.New("conn refused")}
	svc := newTestService(materials, nil, nil)

	page := svc.SearchMaterials(context.Background(), "database", filter.Filters{}, options.Default())

	if page.Total != 0 || len(page.Items) != 0 {
		t.Errorf("degraded page = %+v, want empty", page)
	}
}

func TestSearchMaterials_PassesFiltersToReader(t *testing.T) {
	materials := &mockMaterials{}
	svc := newTestService(materials, nil, nil)

	f, err := filter.New("PROG1", "DPP20023", "note", 3, "", 0, 0)
	if err != nil {
		t.Fatalf("filter.New: %v", err)
	}
	svc.SearchMaterials(context.Background(), "database", f, options.Default())

	if materials.lastFilter != f {
		t.Errorf("reader filter = %+v, want %+v", materials.lastFilter, f)
	}
}

func TestSearchMaterials_OffsetPastEnd(t *testing.T) {
	var items []material.Material
	for i := 0; i < 12; i++ {
		items = append(items, mkMaterial(fmt.Sprintf("m%d", i), fmt.Sprintf("Database Notes %d", i), "", ""))
	}
	svc := newTestService(&mockMaterials{materials: items}, nil, nil)

	opts := mkOptions(t, options.SortRelevance, options.Desc, 10, 15)
	page := svc.SearchMaterials(context.Background(), "database", filter.Filters{}, opts)

	if len(page.Items) != 0 {
		t.Errorf("len(Items) = %d, want 0", len(page.Items))
	}
	if page.Total != 12 {
		t.Errorf("Total = %d, want 12", page.Total)
	}
}

func TestSearchMaterials_Pagination(t *testing.T) {
	var items []material.Material
	for i := 0; i < 12; i++ {
		items = append(items, mkMaterial(fmt.Sprintf("m%02d", i), fmt.Sprintf("Database Notes %02d", i), "", ""))
	}
	svc := newTestService(&mockMaterials{materials: items}, nil, nil)

	opts := mkOptions(t, options.SortTitle, options.Asc, 5, 10)
	page := svc.SearchMaterials(context.Background(), "database", filter.Filters{}, opts)

	if page.Total != 12 {
		t.Fatalf("Total = %d, want 12", page.Total)
	}
	if len(page.Items) != 2 {
		t.Fatalf("len(Items) = %d, want 2", len(page.Items))
	}
	if got := page.Items[0].Material().ID(); got != "m10" {
		t.Errorf("Items[0] = %s, want m10", got)
	}
}

func TestSearchMaterials_SortByDate(t *testing.T) {
	old := material.Reconstruct("old", "database a", "", material.TypeNote, "", 0, "", "",
		"", "", "", "", 0, 100, material.StatusApproved, 0, 0)
	recent := material.Reconstruct("new", "database b", "", material.TypeNote, "", 0, "", "",
		"", "", "", "", 0, 200, material.StatusApproved, 0, 0)
	svc := newTestService(&mockMaterials{materials: []material.Material{old, recent}}, nil, nil)

	opts := mkOptions(t, options.SortDate, options.Desc, 10, 0)
	page := svc.SearchMaterials(context.Background(), "database", filter.Filters{}, opts)
	if got := page.Items[0].Material().ID(); got != "new" {
		t.Errorf("desc Items[0] = %s, want new", got)
	}

	opts = mkOptions(t, options.SortDate, options.Asc, 10, 0)
	page = svc.SearchMaterials(context.Background(), "database", filter.Filters{}, opts)
	if got := page.Items[0].Material().ID(); got != "old" {
		t.Errorf("asc Items[0] = %s, want old", got)
	}
}

func TestSearchMaterials_SortByDownloads(t *testing.T) {
	few := material.Reconstruct("few", "database a", "", material.TypeNote, "", 0, "", "",
		"", "", "", "", 0, 0, material.StatusApproved, 2, 0)
	many := material.Reconstruct("many", "database b", "", material.TypeNote, "", 0, "", "",
		"", "", "", "", 0, 0, material.StatusApproved, 90, 0)
	svc := newTestService(&mockMaterials{materials: []material.Material{few, many}}, nil, nil)

	opts := mkOptions(t, options.SortDownloads, options.Desc, 10, 0)
	page := svc.SearchMaterials(context.Background(), "database", filter.Filters{}, opts)
	if got := page.Items[0].Material().ID(); got != "many" {
		t.Errorf("Items[0] = %s, want many", got)
	}
}

func TestSearchMaterials_SortByTitleCaseInsensitive(t *testing.T) {
	a := mkMaterial("a", "alpha database", "", "")
	b := mkMaterial("b", "Beta database", "", "")
	svc := newTestService(&mockMaterials{materials: []material.Material{b, a}}, nil, nil)

	opts := mkOptions(t, options.SortTitle, options.Asc, 10, 0)
	page := svc.SearchMaterials(context.Background(), "database", filter.Filters{}, opts)
	if got := page.Items[0].Material().ID(); got != "a" {
		t.Errorf("Items[0] = %s, want a", got)
	}
}
