package formutil

import (
	"net/http"
	"strconv"
	"strings"
)

// Value returns the trimmed form value for key.
func Value(r *http.Request, key string) string {
	return strings.TrimSpace(r.FormValue(key))
}

// Checked reports whether a checkbox field was ticked.
func Checked(r *http.Request, key string) bool {
	v := strings.ToLower(strings.TrimSpace(r.FormValue(key)))
	return v == "on" || v == "true" || v == "1"
}

// Int64 parses a numeric id form value; 0 when absent or malformed.
func Int64(r *http.Request, key string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(r.FormValue(key)), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// SplitList splits comma-separated input (interests, skills) into
// trimmed non-empty items.
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
