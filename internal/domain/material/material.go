// Package material defines the approved study material record as stored by
// the portal application and read by the search service.
package material

// Type enumerates the kinds of study material the portal accepts.
type Type string

const (
	// TypeNote is lecture or revision notes.
	TypeNote Type = "note"
	// TypeExamPaper is a past exam paper.
	TypeExamPaper Type = "exam_paper"
	// TypeAnswerScheme is a marking/answer scheme for an exam paper.
	TypeAnswerScheme Type = "answer_scheme"
)

// IsValid reports whether t is a known material type.
func (t Type) IsValid() bool {
	switch t {
	case TypeNote, TypeExamPaper, TypeAnswerScheme:
		return true
	}
	return false
}

// Status is the approval workflow state. Search only ever sees approved.
type Status string

const (
	// StatusPending awaits lecturer/admin review.
	StatusPending Status = "pending"
	// StatusApproved is visible to searchers.
	StatusApproved Status = "approved"
	// StatusRejected was declined by a reviewer.
	StatusRejected Status = "rejected"
)

// Material is an uploaded study resource. It is owned by the uploader and
// mutated only by the portal's approval workflow; this service never writes it.
type Material struct {
	id            string
	title         string
	description   string
	materialType  Type
	programmeID   string
	semester      int
	subjectCode   string
	subjectName   string
	uploaderID    string
	uploaderName  string
	uploaderRole  string
	fileName      string
	fileSize      int64
	uploadedAt    int64
	status        Status
	downloadCount int
	viewCount     int
}

// Reconstruct rebuilds a Material from stored fields without validation.
// Used by repositories when mapping store documents. The portal application
// owns material creation; this service never constructs one from scratch.
func Reconstruct(
	id, title, description string, materialType Type,
	programmeID string, semester int, subjectCode, subjectName string,
	uploaderID, uploaderName, uploaderRole string,
	fileName string, fileSize int64, uploadedAt int64,
	status Status, downloadCount, viewCount int,
) Material {
	return Material{
		id:            id,
		title:         title,
		description:   description,
		materialType:  materialType,
		programmeID:   programmeID,
		semester:      semester,
		subjectCode:   subjectCode,
		subjectName:   subjectName,
		uploaderID:    uploaderID,
		uploaderName:  uploaderName,
		uploaderRole:  uploaderRole,
		fileName:      fileName,
		fileSize:      fileSize,
		uploadedAt:    uploadedAt,
		status:        status,
		downloadCount: downloadCount,
		viewCount:     viewCount,
	}
}

// ID returns the material identifier.
func (m *Material) ID() string { return m.id }

// Title returns the material title.
func (m *Material) Title() string { return m.title }

// Description returns the optional description ("" when absent).
func (m *Material) Description() string { return m.description }

// MaterialType returns the kind of material.
func (m *Material) MaterialType() Type { return m.materialType }

// ProgrammeID returns the owning programme.
func (m *Material) ProgrammeID() string { return m.programmeID }

// Semester returns the semester number.
func (m *Material) Semester() int { return m.semester }

// SubjectCode returns the owning subject code.
func (m *Material) SubjectCode() string { return m.subjectCode }

// SubjectName returns the denormalized subject name.
func (m *Material) SubjectName() string { return m.subjectName }

// UploaderID returns the uploading user's id.
func (m *Material) UploaderID() string { return m.uploaderID }

// UploaderName returns the uploading user's display name.
func (m *Material) UploaderName() string { return m.uploaderName }

// UploaderRole returns the uploading user's role (student, lecturer).
func (m *Material) UploaderRole() string { return m.uploaderRole }

// FileName returns the stored file name.
func (m *Material) FileName() string { return m.fileName }

// FileSize returns the file size in bytes.
func (m *Material) FileSize() int64 { return m.fileSize }

// UploadedAt returns the upload time as Unix milliseconds.
func (m *Material) UploadedAt() int64 { return m.uploadedAt }

// Status returns the approval state.
func (m *Material) Status() Status { return m.status }

// DownloadCount returns the number of downloads.
func (m *Material) DownloadCount() int { return m.downloadCount }

// ViewCount returns the number of views.
func (m *Material) ViewCount() int { return m.viewCount }
