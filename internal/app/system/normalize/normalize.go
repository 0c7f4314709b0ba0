package normalize

import "strings"

// Role lowercases and trims a role value from a form or session.
func Role(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Email lowercases and trims an email address for lookups.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Target maps free-form announcement target input to a known value.
// Unknown input falls back to "all".
func Target(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "students":
		return "students"
	case "faculty":
		return "faculty"
	case "admins":
		return "admins"
	default:
		return "all"
	}
}

// Priority maps announcement priority input; unknown falls back to
// "normal".
func Priority(s string) string {
	if strings.ToLower(strings.TrimSpace(s)) == "important" {
		return "important"
	}
	return "normal"
}
