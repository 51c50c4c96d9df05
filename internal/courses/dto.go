package courses

// Course groups an ordered set of chapters.
type Course struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CreatedAt   int64  `json:"created_at"`
	UpdatedAt   int64  `json:"updated_at"`
}

// RecordID implements docstore.Record.
func (c Course) RecordID() int64 {
	return c.ID
}

// Chapter is one unit of course content. OrderIndex controls display order
// among siblings.
type Chapter struct {
	ID         int64  `json:"id"`
	CourseID   int64  `json:"course_id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	OrderIndex int    `json:"order_index"`
	CreatedAt  int64  `json:"created_at"`
	UpdatedAt  int64  `json:"updated_at"`
}

// RecordID implements docstore.Record.
func (c Chapter) RecordID() int64 {
	return c.ID
}

// CourseInput carries the whitelisted course fields. Nil fields are left
// untouched on update.
type CourseInput struct {
	Title       *string
	Description *string
}

// ChapterCreateInput carries the fields accepted when adding a chapter. A nil
// OrderIndex appends after the current last sibling.
type ChapterCreateInput struct {
	CourseID   int64
	Title      string
	Content    string
	OrderIndex *int
}

// ChapterUpdateInput carries the whitelisted chapter update fields.
type ChapterUpdateInput struct {
	Title      *string
	Content    *string
	OrderIndex *int
}
