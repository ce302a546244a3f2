// Package comment defines the discussion comment record nested under a material.
package comment

// Comment is a free-text remark attached to a material. Comments are fetched
// per material; there is no global comment collection in the portal schema.
type Comment struct {
	id              string
	materialID      string
	content         string
	authorID        string
	authorName      string
	authorRole      string
	attachmentCount int
	createdAt       int64
}

// Reconstruct rebuilds a Comment from stored fields without validation.
// The portal application owns comment creation; this service only reads.
func Reconstruct(
	id, materialID, content, authorID, authorName, authorRole string,
	attachmentCount int, createdAt int64,
) Comment {
	return Comment{
		id:              id,
		materialID:      materialID,
		content:         content,
		authorID:        authorID,
		authorName:      authorName,
		authorRole:      authorRole,
		attachmentCount: attachmentCount,
		createdAt:       createdAt,
	}
}

// ID returns the comment identifier.
func (c *Comment) ID() string { return c.id }

// MaterialID returns the parent material id.
func (c *Comment) MaterialID() string { return c.materialID }

// Content returns the comment text.
func (c *Comment) Content() string { return c.content }

// AuthorID returns the author's user id.
func (c *Comment) AuthorID() string { return c.authorID }

// AuthorName returns the author's display name.
func (c *Comment) AuthorName() string { return c.authorName }

// AuthorRole returns the author's role (student, lecturer).
func (c *Comment) AuthorRole() string { return c.authorRole }

// AttachmentCount returns the number of attachments on the comment.
func (c *Comment) AttachmentCount() int { return c.attachmentCount }

// CreatedAt returns the creation time as Unix milliseconds.
func (c *Comment) CreatedAt() int64 { return c.createdAt }
