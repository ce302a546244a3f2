// Package filter defines the structural narrowing predicates applied to a
// candidate set before any text scoring happens.
package filter

import "fmt"

// Filters is a conjunctive (AND) set of optional exact-match predicates.
// The zero value matches everything.
type Filters struct {
	programmeID  string
	subjectCode  string
	materialType string
	semester     int // 0 = any
	uploaderID   string
	uploadedFrom int64 // Unix ms, 0 = unbounded
	uploadedTo   int64 // Unix ms, 0 = unbounded
}

// New validates and creates Filters.
func New(
	programmeID, subjectCode, materialType string,
	semester int, uploaderID string,
	uploadedFrom, uploadedTo int64,
) (Filters, error) {
	if semester < 0 {
		return Filters{}, fmt.Errorf("semester must be non-negative, got %d", semester)
	}
	if uploadedFrom < 0 || uploadedTo < 0 {
		return Filters{}, fmt.Errorf("date bounds must be non-negative")
	}
	if uploadedFrom > 0 && uploadedTo > 0 && uploadedFrom > uploadedTo {
		return Filters{}, fmt.Errorf("uploaded_from is after uploaded_to")
	}
	return Filters{
		programmeID:  programmeID,
		subjectCode:  subjectCode,
		materialType: materialType,
		semester:     semester,
		uploaderID:   uploaderID,
		uploadedFrom: uploadedFrom,
		uploadedTo:   uploadedTo,
	}, nil
}

// ProgrammeID returns the programme predicate ("" = any).
func (f Filters) ProgrammeID() string { return f.programmeID }

// SubjectCode returns the subject predicate ("" = any).
func (f Filters) SubjectCode() string { return f.subjectCode }

// MaterialType returns the material-type predicate ("" = any).
func (f Filters) MaterialType() string { return f.materialType }

// Semester returns the semester predicate (0 = any).
func (f Filters) Semester() int { return f.semester }

// UploaderID returns the uploader predicate ("" = any).
func (f Filters) UploaderID() string { return f.uploaderID }

// UploadedFrom returns the lower upload-time bound in Unix ms (0 = unbounded).
func (f Filters) UploadedFrom() int64 { return f.uploadedFrom }

// UploadedTo returns the upper upload-time bound in Unix ms (0 = unbounded).
func (f Filters) UploadedTo() int64 { return f.uploadedTo }

// IsEmpty reports whether no predicate is set.
func (f Filters) IsEmpty() bool {
	return f == Filters{}
}
