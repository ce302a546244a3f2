// Package result defines the shapes a search produces: per-entity hits, the
// unified material/comment envelope, and the combined response.
package result

import (
	"github.com/studyfind/studyfind/internal/domain/comment"
	"github.com/studyfind/studyfind/internal/domain/material"
	"github.com/studyfind/studyfind/internal/domain/search/filter"
)

// Kind discriminates entries in the unified envelope.
type Kind string

const (
	// KindMaterial marks an envelope built from a material.
	KindMaterial Kind = "material"
	// KindComment marks an envelope built from a comment.
	KindComment Kind = "comment"
)

// MaterialHit is a scored material with its per-field highlights.
type MaterialHit struct {
	material   material.Material
	score      float64
	highlights map[string]string
}

// NewMaterialHit creates a material hit.
func NewMaterialHit(m material.Material, score float64, highlights map[string]string) MaterialHit {
	return MaterialHit{material: m, score: score, highlights: highlights}
}

// Material returns the underlying record.
func (h *MaterialHit) Material() *material.Material { return &h.material }

// Score returns the additive relevance score.
func (h *MaterialHit) Score() float64 { return h.score }

// Highlights returns highlighted field copies keyed by field name.
func (h *MaterialHit) Highlights() map[string]string { return h.highlights }

// CommentHit is a scored comment with its per-field highlights.
type CommentHit struct {
	comment    comment.Comment
	score      float64
	highlights map[string]string
}

// NewCommentHit creates a comment hit.
func NewCommentHit(c comment.Comment, score float64, highlights map[string]string) CommentHit {
	return CommentHit{comment: c, score: score, highlights: highlights}
}

// Comment returns the underlying record.
func (h *CommentHit) Comment() *comment.Comment { return &h.comment }

// Score returns the additive relevance score.
func (h *CommentHit) Score() float64 { return h.score }

// Highlights returns highlighted field copies keyed by field name.
func (h *CommentHit) Highlights() map[string]string { return h.highlights }

// SubjectResult is a scored subject. Subjects stay in their own shape and are
// never merged into the unified envelope list. MaterialCount is informational
// only: it is computed after scoring and truncation and takes no part in either.
type SubjectResult struct {
	code          string
	name          string
	programmeID   string
	semester      int
	description   string
	score         float64
	highlights    map[string]string
	materialCount int
}

// NewSubjectResult creates a subject result with a zero material count.
func NewSubjectResult(
	code, name, programmeID string, semester int, description string,
	score float64, highlights map[string]string,
) SubjectResult {
	return SubjectResult{
		code:        code,
		name:        name,
		programmeID: programmeID,
		semester:    semester,
		description: description,
		score:       score,
		highlights:  highlights,
	}
}

// WithMaterialCount returns a copy carrying the approved-material count.
func (r SubjectResult) WithMaterialCount(n int) SubjectResult {
	r.materialCount = n
	return r
}

// Code returns the subject code.
func (r *SubjectResult) Code() string { return r.code }

// Name returns the subject name.
func (r *SubjectResult) Name() string { return r.name }

// ProgrammeID returns the owning programme.
func (r *SubjectResult) ProgrammeID() string { return r.programmeID }

// Semester returns the semester number.
func (r *SubjectResult) Semester() int { return r.semester }

// Description returns the optional description.
func (r *SubjectResult) Description() string { return r.description }

// Score returns the additive relevance score.
func (r *SubjectResult) Score() float64 { return r.score }

// Highlights returns highlighted field copies keyed by field name.
func (r *SubjectResult) Highlights() map[string]string { return r.highlights }

// MaterialCount returns the number of approved materials referencing the subject.
func (r *SubjectResult) MaterialCount() int { return r.materialCount }

// Result is the unified envelope materials and comments are converted into for
// combined ranking. Passthrough fields not applicable to the kind are zero.
type Result struct {
	kind          Kind
	id            string
	title         string
	description   string
	snippet       string
	score         float64
	highlights    map[string]string
	programmeID   string
	subjectCode   string
	materialID    string
	authorName    string
	createdAt     int64
	fileName      string
	fileSize      int64
	materialType  string
	downloadCount int
}

// NewResult creates a unified envelope entry.
func NewResult(kind Kind, id, title, description, snippet string, score float64, highlights map[string]string) Result {
	return Result{
		kind:        kind,
		id:          id,
		title:       title,
		description: description,
		snippet:     snippet,
		score:       score,
		highlights:  highlights,
	}
}

// WithMaterialFields returns a copy carrying material passthrough fields.
func (r Result) WithMaterialFields(
	programmeID, subjectCode, materialType, fileName string,
	fileSize int64, downloadCount int, uploadedAt int64,
) Result {
	r.programmeID = programmeID
	r.subjectCode = subjectCode
	r.materialType = materialType
	r.fileName = fileName
	r.fileSize = fileSize
	r.downloadCount = downloadCount
	r.createdAt = uploadedAt
	return r
}

// WithCommentFields returns a copy carrying comment passthrough fields.
func (r Result) WithCommentFields(materialID, authorName string, createdAt int64) Result {
	r.materialID = materialID
	r.authorName = authorName
	r.createdAt = createdAt
	return r
}

// Type returns the envelope kind.
func (r *Result) Type() Kind { return r.kind }

// ID returns the entity id.
func (r *Result) ID() string { return r.id }

// Title returns the display title.
func (r *Result) Title() string { return r.title }

// Description returns the optional description.
func (r *Result) Description() string { return r.description }

// Snippet returns the highlighted excerpt.
func (r *Result) Snippet() string { return r.snippet }

// RelevanceScore returns the score used for combined ranking.
func (r *Result) RelevanceScore() float64 { return r.score }

// Highlights returns highlighted field copies keyed by field name.
func (r *Result) Highlights() map[string]string { return r.highlights }

// ProgrammeID returns the owning programme (materials).
func (r *Result) ProgrammeID() string { return r.programmeID }

// SubjectCode returns the subject code (materials).
func (r *Result) SubjectCode() string { return r.subjectCode }

// MaterialID returns the parent material (comments).
func (r *Result) MaterialID() string { return r.materialID }

// AuthorName returns the comment author name (comments).
func (r *Result) AuthorName() string { return r.authorName }

// CreatedAt returns the upload/creation time as Unix ms.
func (r *Result) CreatedAt() int64 { return r.createdAt }

// FileName returns the stored file name (materials).
func (r *Result) FileName() string { return r.fileName }

// FileSize returns the file size in bytes (materials).
func (r *Result) FileSize() int64 { return r.fileSize }

// MaterialType returns the material type (materials).
func (r *Result) MaterialType() string { return r.materialType }

// DownloadCount returns the download count (materials).
func (r *Result) DownloadCount() int { return r.downloadCount }

// MaterialPage is one page of material hits with the pre-pagination total.
type MaterialPage struct {
	Items []MaterialHit
	Total int
}

// CommentPage is one page of comment hits with the pre-pagination total.
type CommentPage struct {
	Items []CommentHit
	Total int
}

// SubjectPage is one page of subject results with the pre-pagination total.
type SubjectPage struct {
	Items []SubjectResult
	Total int
}

// Combined is the top-level search response: the globally re-ranked unified
// list, the subject list, per-entity totals, and the echoed query + filters.
type Combined struct {
	Results       []Result
	Subjects      []SubjectResult
	MaterialTotal int
	CommentTotal  int
	SubjectTotal  int
	Query         string
	Filters       filter.Filters
	HasMore       bool
}
