package models

// Notice kinds drive the styling of the transient notification.
const (
	NoticeSuccess = "success"
	NoticeWarning = "warning"
	NoticeError   = "error"
	NoticeInfo    = "info"
)

// Notice is a transient notification shown once after an action.
type Notice struct {
	Title   string
	Message string
	Kind    string
}
