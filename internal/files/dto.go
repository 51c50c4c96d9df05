package files

// Record describes one uploaded binary stored under the uploads directory.
type Record struct {
	ID          int64          `json:"id"`
	Filename    string         `json:"filename"`
	Path        string         `json:"path"`
	Size        int64          `json:"size"`
	ContentType string         `json:"content_type"`
	Metadata    map[string]any `json:"metadata"`
	CreatedAt   int64          `json:"created_at"`
}

// RecordID implements docstore.Record.
func (r Record) RecordID() int64 {
	return r.ID
}

// SaveInput carries a decoded upload payload.
type SaveInput struct {
	Filename    string
	Content     []byte
	ContentType string
	Metadata    map[string]any
}
