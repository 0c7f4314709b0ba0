package models

// Achievement is an item on a student's achievements page.
type Achievement struct {
	ID     int64
	Title  string
	Issuer string
	Date   string
	Kind   string // certificate, award, participation
}
