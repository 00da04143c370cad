package model

// Message statuses. The submission path always creates messages as
// "unread"; later states are set by the admin endpoints.
const (
	MessageStatusUnread  = "unread"
	MessageStatusRead    = "read"
	MessageStatusReplied = "replied"
)

// Message represents a contact-form submission stored in the messages
// collection. Timestamps are ISO-8601 strings, matching the documents the
// admin dashboard already consumes.
type Message struct {
	ID          string `json:"id"`
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	ProjectType string `json:"projectType"`
	Message     string `json:"message"`
	Status      string `json:"status"` // "unread" | "read" | "replied"
	CreatedAt   string `json:"createdAt"`
	ReadAt      string `json:"readAt,omitempty"`
	RepliedAt   string `json:"repliedAt,omitempty"`
}
