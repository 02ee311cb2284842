package models

// NotificationType tags the record kind a feed item came from.
type NotificationType string

const (
	NotificationAnnouncement    NotificationType = "announcement"
	NotificationProject         NotificationType = "project"
	NotificationScholarship     NotificationType = "scholarship"
	NotificationActivity        NotificationType = "activity"
	NotificationBlotter         NotificationType = "blotter"
	NotificationDocumentRequest NotificationType = "document_request"
	NotificationFeedback        NotificationType = "feedback"
	NotificationOfficial        NotificationType = "official"
)

// NotificationItem is an ephemeral view model computed per request. It is
// never persisted; the ID is derived from the source record so the same data
// always yields the same ID.
type NotificationItem struct {
	ID      string           `json:"id"`
	Type    NotificationType `json:"type"`
	Title   string           `json:"title"`
	Message string           `json:"message"`
	Time    string           `json:"time"`
	Link    string           `json:"link"`
}

type NotificationFeed struct {
	Notifications []NotificationItem `json:"notifications"`
	Count         int                `json:"count"`
}
