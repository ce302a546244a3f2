package chi

import (
	"github.com/studyfind/studyfind/internal/domain/search/result"
)

// errorCode identifies a machine-readable API error class.
type errorCode string

const (
	codeBadRequest       errorCode = "bad_request"
	codeValidationFailed errorCode = "validation_failed"
	codeInternalError    errorCode = "internal_error"
)

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Code    errorCode `json:"code"`
	Message string    `json:"message"`
}

// combinedResponse is the body of GET /api/v1/search.
type combinedResponse struct {
	Results  []combinedItem `json:"results"`
	Subjects []subjectItem  `json:"subjects"`
	Totals   combinedTotals `json:"totals"`
	Query    string         `json:"query"`
	HasMore  bool           `json:"has_more"`
}

type combinedTotals struct {
	Materials int `json:"materials"`
	Comments  int `json:"comments"`
	Subjects  int `json:"subjects"`
}

// combinedItem is a merged material or comment hit. Material-only and
// comment-only fields are omitted for the other kind.
type combinedItem struct {
	Type           string            `json:"type"`
	ID             string            `json:"id"`
	Title          string            `json:"title"`
	Description    string            `json:"description,omitempty"`
	Snippet        string            `json:"snippet,omitempty"`
	RelevanceScore float64           `json:"relevance_score"`
	Highlights     map[string]string `json:"highlights,omitempty"`

	ProgrammeID   string `json:"programme_id,omitempty"`
	SubjectCode   string `json:"subject_code,omitempty"`
	MaterialType  string `json:"material_type,omitempty"`
	FileName      string `json:"file_name,omitempty"`
	FileSize      int64  `json:"file_size,omitempty"`
	DownloadCount int    `json:"download_count,omitempty"`

	MaterialID string `json:"material_id,omitempty"`
	AuthorName string `json:"author_name,omitempty"`
	CreatedAt  int64  `json:"created_at,omitempty"`
}

type materialItem struct {
	ID             string            `json:"id"`
	Title          string            `json:"title"`
	Description    string            `json:"description,omitempty"`
	MaterialType   string            `json:"material_type"`
	ProgrammeID    string            `json:"programme_id"`
	Semester       int               `json:"semester"`
	SubjectCode    string            `json:"subject_code"`
	SubjectName    string            `json:"subject_name,omitempty"`
	UploaderID     string            `json:"uploader_id"`
	UploaderName   string            `json:"uploader_name,omitempty"`
	UploaderRole   string            `json:"uploader_role,omitempty"`
	FileName       string            `json:"file_name,omitempty"`
	FileSize       int64             `json:"file_size,omitempty"`
	UploadedAt     int64             `json:"uploaded_at"`
	DownloadCount  int               `json:"download_count"`
	ViewCount      int               `json:"view_count"`
	RelevanceScore float64           `json:"relevance_score"`
	Highlights     map[string]string `json:"highlights,omitempty"`
}

type commentItem struct {
	ID              string            `json:"id"`
	MaterialID      string            `json:"material_id"`
	Content         string            `json:"content"`
	AuthorID        string            `json:"author_id"`
	AuthorName      string            `json:"author_name,omitempty"`
	AuthorRole      string            `json:"author_role,omitempty"`
	AttachmentCount int               `json:"attachment_count,omitempty"`
	CreatedAt       int64             `json:"created_at"`
	RelevanceScore  float64           `json:"relevance_score"`
	Highlights      map[string]string `json:"highlights,omitempty"`
}

type subjectItem struct {
	Code           string            `json:"code"`
	Name           string            `json:"name"`
	ProgrammeID    string            `json:"programme_id"`
	Semester       int               `json:"semester"`
	Description    string            `json:"description,omitempty"`
	RelevanceScore float64           `json:"relevance_score"`
	Highlights     map[string]string `json:"highlights,omitempty"`
	MaterialCount  int               `json:"material_count"`
}

// pageResponse wraps a single-entity result page.
type pageResponse[T any] struct {
	Items  []T `json:"items"`
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

type suggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func combinedToDTO(c result.Combined) combinedResponse {
	items := make([]combinedItem, len(c.Results))
	for i := range c.Results {
		items[i] = combinedItemToDTO(&c.Results[i])
	}
	subjects := make([]subjectItem, len(c.Subjects))
	for i := range c.Subjects {
		subjects[i] = subjectToDTO(&c.Subjects[i])
	}
	return combinedResponse{
		Results:  items,
		Subjects: subjects,
		Totals: combinedTotals{
			Materials: c.MaterialTotal,
			Comments:  c.CommentTotal,
			Subjects:  c.SubjectTotal,
		},
		Query:   c.Query,
		HasMore: c.HasMore,
	}
}

func combinedItemToDTO(r *result.Result) combinedItem {
	item := combinedItem{
		Type:           string(r.Type()),
		ID:             r.ID(),
		Title:          r.Title(),
		Description:    r.Description(),
		Snippet:        r.Snippet(),
		RelevanceScore: r.RelevanceScore(),
		Highlights:     r.Highlights(),
	}
	switch r.Type() {
	case result.KindMaterial:
		item.ProgrammeID = r.ProgrammeID()
		item.SubjectCode = r.SubjectCode()
		item.MaterialType = r.MaterialType()
		item.FileName = r.FileName()
		item.FileSize = r.FileSize()
		item.DownloadCount = r.DownloadCount()
		item.CreatedAt = r.CreatedAt()
	case result.KindComment:
		item.MaterialID = r.MaterialID()
		item.AuthorName = r.AuthorName()
		item.CreatedAt = r.CreatedAt()
	}
	return item
}

func materialToDTO(h *result.MaterialHit) materialItem {
	m := h.Material()
	return materialItem{
		ID:             m.ID(),
		Title:          m.Title(),
		Description:    m.Description(),
		MaterialType:   string(m.MaterialType()),
		ProgrammeID:    m.ProgrammeID(),
		Semester:       m.Semester(),
		SubjectCode:    m.SubjectCode(),
		SubjectName:    m.SubjectName(),
		UploaderID:     m.UploaderID(),
		UploaderName:   m.UploaderName(),
		UploaderRole:   m.UploaderRole(),
		FileName:       m.FileName(),
		FileSize:       m.FileSize(),
		UploadedAt:     m.UploadedAt(),
		DownloadCount:  m.DownloadCount(),
		ViewCount:      m.ViewCount(),
		RelevanceScore: h.Score(),
		Highlights:     h.Highlights(),
	}
}

func commentToDTO(h *result.CommentHit) commentItem {
	c := h.Comment()
	return commentItem{
		ID:              c.ID(),
		MaterialID:      c.MaterialID(),
		Content:         c.Content(),
		AuthorID:        c.AuthorID(),
		AuthorName:      c.AuthorName(),
		AuthorRole:      c.AuthorRole(),
		AttachmentCount: c.AttachmentCount(),
		CreatedAt:       c.CreatedAt(),
		RelevanceScore:  h.Score(),
		Highlights:      h.Highlights(),
	}
}

func subjectToDTO(r *result.SubjectResult) subjectItem {
	return subjectItem{
		Code:           r.Code(),
		Name:           r.Name(),
		ProgrammeID:    r.ProgrammeID(),
		Semester:       r.Semester(),
		Description:    r.Description(),
		RelevanceScore: r.Score(),
		Highlights:     r.Highlights(),
		MaterialCount:  r.MaterialCount(),
	}
}
