package announcements

import "github.com/shoplite/shoplite-backend/pkg/enums"

// Post is an announcement or FAQ entry; Type tells the two apart inside the
// shared document.
type Post struct {
	ID        int64          `json:"id"`
	Type      enums.PostType `json:"type"`
	Title     string         `json:"title"`
	Content   string         `json:"content"`
	CreatedAt int64          `json:"created_at"`
	UpdatedAt int64          `json:"updated_at"`
}

// RecordID implements docstore.Record.
func (p Post) RecordID() int64 {
	return p.ID
}

// UpdateInput carries the whitelisted partial update fields.
type UpdateInput struct {
	Title   *string
	Content *string
	Type    *enums.PostType
}
