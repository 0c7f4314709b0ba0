package models

// CollabPost is a collaboration post on the collab board.
//
// Interested is always kept equal to len(InterestedBy); the set is the
// source of truth and the count is derived from it.
type CollabPost struct {
	ID           int64
	Title        string
	Description  string
	Author       string
	AuthorID     int64
	AuthorRole   string
	Skills       []string
	GFormLink    string
	Interested   int
	InterestedBy []int64
}

// HasInterest reports whether userID already marked interest.
func (p CollabPost) HasInterest(userID int64) bool {
	for _, id := range p.InterestedBy {
		if id == userID {
			return true
		}
	}
	return false
}
