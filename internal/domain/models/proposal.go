package models

// Proposal statuses.
const (
	ProposalPending           = "pending"
	ProposalApproved          = "approved"
	ProposalDenied            = "denied"
	ProposalRevisionRequested = "revision_requested"
)

// Proposal is a faculty event proposal awaiting admin review.
type Proposal struct {
	ID          int64
	Title       string
	Date        string
	Venue       string
	Category    string
	Description string
	Submitter   string
	Status      string
	Feedback    string
}
