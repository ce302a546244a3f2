package search

import (
	"context"
	"errors"
	"testing"

	"github.com/studyfind/studyfind/internal/domain/material"
)

func TestSuggestions_CollectsFromThreeSources(t *testing.T) {
	materials := &mockMaterials{materials: []material.Material{
		mkMaterial("m1", "Database Systems Notes", "", "Database Systems"),
		mkMaterial("m2", "Database Exam 2024", "", "Database Systems"),
	}}
	svc := newTestService(materials, nil, nil)

	got := svc.Suggestions(context.Background(), "data", 6)

	// Titles first, then the de-duplicated subject name, then the uploader.
	want := []string{"Database Systems Notes", "Database Exam 2024", "Database Systems", "Alice Tan"}
	if len(got) != len(want) {
		t.Fatalf("suggestions = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("suggestions[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSuggestions_DedupesCaseInsensitively(t *testing.T) {
	materials := &mockMaterials{materials: []material.Material{
		mkMaterial("m1", "Database Notes", "", "DATABASE NOTES"),
	}}
	svc := newTestService(materials, nil, nil)

	got := svc.Suggestions(context.Background(), "data", 6)

	if len(got) != 2 {
		t.Fatalf("suggestions = %v, want title + uploader only", got)
	}
	if got[0] != "Database Notes" || got[1] != "Alice Tan" {
		t.Errorf("suggestions = %v", got)
	}
}

func TestSuggestions_TermTooShort(t *testing.T) {
	materials := &mockMaterials{materials: []material.Material{
		mkMaterial("m1", "Database Notes", "", ""),
	}}
	svc := newTestService(materials, nil, nil)

	if got := svc.Suggestions(context.Background(), "d", 6); got != nil {
		t.Errorf("single-rune term suggestions = %v, want nil", got)
	}
	if got := svc.Suggestions(context.Background(), "  d  ", 6); got != nil {
		t.Errorf("padded single-rune term suggestions = %v, want nil", got)
	}
}

func TestSuggestions_ZeroLimit(t *testing.T) {
	svc := newTestService(&mockMaterials{}, nil, nil)

	if got := svc.Suggestions(context.Background(), "database", 0); got != nil {
		t.Errorf("zero-limit suggestions = %v, want nil", got)
	}
}

func TestSuggestions_FetchErrorYieldsNil(t *testing.T) {
	materials := &mockMaterials{listErr: errors.New("conn refused")}
	svc := newTestService(materials, nil, nil)

	if got := svc.Suggestions(context.Background(), "database", 6); got != nil {
		t.Errorf("degraded suggestions = %v, want nil", got)
	}
}

func TestSuggestions_RespectsLimit(t *testing.T) {
	materials := &mockMaterials{materials: []material.Material{
		mkMaterial("m1", "Database A", "", "Subject A"),
		mkMaterial("m2", "Database B", "", "Subject B"),
		mkMaterial("m3", "Database C", "", "Subject C"),
	}}
	svc := newTestService(materials, nil, nil)

	got := svc.Suggestions(context.Background(), "data", 2)

	if len(got) != 2 {
		t.Fatalf("suggestions = %v, want exactly 2", got)
	}
}
