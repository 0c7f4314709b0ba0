package models

// Event eligibility values.
const (
	EligibilityAll  = "all"
	EligibilityDept = "dept"
)

// Event is a campus event visible on the discover and admin pages.
type Event struct {
	ID            int64
	Title         string
	Date          string
	Time          string
	Venue         string
	Category      string
	Dept          string
	Description   string
	Eligibility   string // "all" or "dept"
	Featured      bool
	GFormLink     string
	Registrations int
}

// EligibleFor reports whether the event is open to a viewer from dept.
func (e Event) EligibleFor(dept string) bool {
	return e.Eligibility == EligibilityAll || e.Dept == dept
}
