package enums

import "fmt"

// PostType separates announcements from FAQ entries within one document.
type PostType string

const (
	PostTypeAnnouncement PostType = "announcement"
	PostTypeFAQ          PostType = "faq"
)

var validPostTypes = []PostType{
	PostTypeAnnouncement,
	PostTypeFAQ,
}

// String implements fmt.Stringer.
func (p PostType) String() string {
	return string(p)
}

// IsValid reports whether the value is a known PostType.
func (p PostType) IsValid() bool {
	for _, candidate := range validPostTypes {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePostType converts raw input into a PostType.
func ParsePostType(value string) (PostType, error) {
	for _, candidate := range validPostTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid post type %q", value)
}
