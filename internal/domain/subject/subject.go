// Package subject defines the curriculum subject reference record.
package subject

// Subject is immutable reference data for the duration of a search.
type Subject struct {
	code        string
	name        string
	programmeID string
	semester    int
	description string
}

// Reconstruct rebuilds a Subject from stored fields without validation.
// Subjects are maintained by the portal's curriculum admin; this service
// only reads them.
func Reconstruct(code, name, programmeID string, semester int, description string) Subject {
	return Subject{
		code:        code,
		name:        name,
		programmeID: programmeID,
		semester:    semester,
		description: description,
	}
}

// Code returns the subject code (e.g. DPP20023).
func (s *Subject) Code() string { return s.code }

// Name returns the subject name.
func (s *Subject) Name() string { return s.name }

// ProgrammeID returns the owning programme.
func (s *Subject) ProgrammeID() string { return s.programmeID }

// Semester returns the semester the subject is taught in.
func (s *Subject) Semester() int { return s.semester }

// Description returns the optional description ("" when absent).
func (s *Subject) Description() string { return s.description }
