package material

import (
	"encoding/json"
	"fmt"

	"github.com/studyfind/studyfind/internal/domain"
	dommat "github.com/studyfind/studyfind/internal/domain/material"
)

// Key layout and index name for the material collection.
const (
	keyPrefix = domain.KeyPrefix + "materials:"
	// IndexName is the FT index over material documents.
	IndexName = domain.KeyPrefix + "materials:idx"
)

// materialDoc is the stored JSON shape, written by the portal application.
// Only the fields listed here ever cross into the domain record; anything
// else in the document is dropped on read.
type materialDoc struct {
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	Type          string `json:"type"`
	ProgrammeID   string `json:"programme_id"`
	Semester      int    `json:"semester"`
	SubjectCode   string `json:"subject_code"`
	SubjectName   string `json:"subject_name"`
	UploaderID    string `json:"uploader_id"`
	UploaderName  string `json:"uploader_name"`
	UploaderRole  string `json:"uploader_role"`
	FileName      string `json:"file_name,omitempty"`
	FileSize      int64  `json:"file_size,omitempty"`
	UploadedAt    int64  `json:"uploaded_at"`
	Status        string `json:"status"`
	DownloadCount int    `json:"download_count"`
	ViewCount     int    `json:"view_count"`
}

// parseDoc maps a raw JSON document onto a domain Material.
// Missing optional fields become empty strings, never errors.
func parseDoc(id, raw string) (dommat.Material, error) {
	if raw == "" {
		return dommat.Material{}, fmt.Errorf("%w: empty document %s", domain.ErrInvalidRecord, id)
	}
	var d materialDoc
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		return dommat.Material{}, fmt.Errorf("%w: %s: %w", domain.ErrInvalidRecord, id, err)
	}
	return dommat.Reconstruct(
		id, d.Title, d.Description, dommat.Type(d.Type),
		d.ProgrammeID, d.Semester, d.SubjectCode, d.SubjectName,
		d.UploaderID, d.UploaderName, d.UploaderRole,
		d.FileName, d.FileSize, d.UploadedAt,
		dommat.Status(d.Status), d.DownloadCount, d.ViewCount,
	), nil
}
