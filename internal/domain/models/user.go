package models

// Roles recognized across the portal.
const (
	RoleStudent = "student"
	RoleFaculty = "faculty"
	RoleAdmin   = "admin"
)

// User statuses. New faculty accounts start Pending until an admin
// approves them; students are Verified on creation.
const (
	StatusVerified = "Verified"
	StatusPending  = "Pending"
)

// User is a portal member as it appears in the dashboard working set.
type User struct {
	ID        int64
	Name      string
	Email     string
	Role      string
	Dept      string
	Year      string
	Status    string
	Bio       string
	Interests []string
}

// DefaultSiteName is used when no site configuration is available.
const DefaultSiteName = "CampusSphere"
