package search

import "testing"

func TestScoreFields_Additive(t *testing.T) {
	m := mkMaterial("m1", "Database Systems Notes", "", "Database Systems")

	score, highlights := scoreFields("database", materialFields(&m))

	// title (3) + subject_name (2)
	if score != 5 {
		t.Fatalf("score = %v, want 5", score)
	}
	if got := highlights["title"]; got != "<mark>Database</mark> Systems Notes" {
		t.Errorf("title highlight = %q", got)
	}
	if got := highlights["subject_name"]; got != "<mark>Database</mark> Systems" {
		t.Errorf("subject_name highlight = %q", got)
	}
	if _, ok := highlights["description"]; ok {
		t.Error("description did not match and must not be highlighted")
	}
}

func TestScoreFields_NoMatch(t *testing.T) {
	m := mkMaterial("m1", "Database Systems Notes", "", "Database Systems")

	score, highlights := scoreFields("chemistry", materialFields(&m))

	if score != 0 {
		t.Errorf("score = %v, want 0", score)
	}
	if highlights != nil {
		t.Errorf("highlights = %v, want nil", highlights)
	}
}

func TestScoreFields_CommentWeights(t *testing.T) {
	c := mkComment("c1", "m1", "very useful notes", "Notes Fan")

	score, highlights := scoreFields("notes", commentFields(&c))

	// content (2) + author_name (1)
	if score != 3 {
		t.Fatalf("score = %v, want 3", score)
	}
	if len(highlights) != 2 {
		t.Errorf("highlights = %v, want content and author_name", highlights)
	}
}

func TestScoreFields_SubjectWeights(t *testing.T) {
	s := mkSubject("DPP20023", "Business Programming", "Intro to business application development")

	score, _ := scoreFields("business", subjectFields(&s))

	// name (3) + description (1)
	if score != 4 {
		t.Fatalf("score = %v, want 4", score)
	}

	score, _ = scoreFields("dpp2", subjectFields(&s))
	if score != 2 {
		t.Fatalf("code-only score = %v, want 2", score)
	}
}
