package domain

import "strings"

// Role is the two-valued account tag shown in the dashboard.
type Role string

const (
	RoleStudent Role = "student"
	RoleTutor   Role = "tutor"
)

// ParseRole maps free-form input to a known role, falling back to student.
func ParseRole(s string) Role {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleTutor:
		return RoleTutor
	default:
		return RoleStudent
	}
}
