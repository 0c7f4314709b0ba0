package models

import "time"

// Announcement targets.
const (
	TargetAll      = "all"
	TargetStudents = "students"
	TargetFaculty  = "faculty"
	TargetAdmins   = "admins"
)

// Announcement priorities.
const (
	PriorityNormal    = "normal"
	PriorityImportant = "important"
)

// Announcement is a portal-wide notice published by an admin.
// Banner announcements also surface at the top of dashboard pages.
type Announcement struct {
	ID        int64
	Title     string
	Message   string
	Target    string
	Priority  string
	Banner    bool
	CreatedAt time.Time
}

// VisibleTo reports whether the announcement targets the given role.
func (a Announcement) VisibleTo(role string) bool {
	switch a.Target {
	case TargetAll, "":
		return true
	case TargetStudents:
		return role == RoleStudent
	case TargetFaculty:
		return role == RoleFaculty
	case TargetAdmins:
		return role == RoleAdmin
	}
	return false
}
