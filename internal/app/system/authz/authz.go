package authz

import (
	"net/http"
	"strings"

	"github.com/campussphere/campussphere/internal/app/system/auth"
)

// UserCtx extracts the signed-in user's role, name, and id from the
// request context. ok is false when nobody is signed in.
func UserCtx(r *http.Request) (role, name, id string, ok bool) {
	u, ok := auth.CurrentUser(r)
	if !ok || u == nil {
		return "", "", "", false
	}
	return strings.ToLower(strings.TrimSpace(u.Role)), u.Name, u.ID, true
}

// IsAdmin reports whether the request is from an admin.
func IsAdmin(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && role == "admin"
}

// IsFaculty reports whether the request is from a faculty member.
func IsFaculty(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && role == "faculty"
}

// IsStudent reports whether the request is from a student.
func IsStudent(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && role == "student"
}
