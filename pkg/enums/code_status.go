package enums

import "fmt"

// CodeStatus tracks a redeemable code through the pool inventory.
type CodeStatus string

const (
	CodeStatusAvailable CodeStatus = "available"
	CodeStatusAssigned  CodeStatus = "assigned"
	CodeStatusUsed      CodeStatus = "used"
)

var validCodeStatuses = []CodeStatus{
	CodeStatusAvailable,
	CodeStatusAssigned,
	CodeStatusUsed,
}

// String implements fmt.Stringer.
func (s CodeStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known CodeStatus.
func (s CodeStatus) IsValid() bool {
	for _, candidate := range validCodeStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseCodeStatus converts raw input into a CodeStatus.
func ParseCodeStatus(value string) (CodeStatus, error) {
	for _, candidate := range validCodeStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid code status %q", value)
}
