package model

// NotificationType classifies a notification for the admin inbox.
type NotificationType string

const (
	NotificationTypeInfo    NotificationType = "info"
	NotificationTypeSuccess NotificationType = "success"
	NotificationTypeWarning NotificationType = "warning"
	NotificationTypeError   NotificationType = "error"
	NotificationTypeMessage NotificationType = "message"
	NotificationTypeSystem  NotificationType = "system"
)

// NotificationPriority orders notifications in the admin inbox.
type NotificationPriority string

const (
	PriorityLow    NotificationPriority = "low"
	PriorityMedium NotificationPriority = "medium"
	PriorityHigh   NotificationPriority = "high"
	PriorityUrgent NotificationPriority = "urgent"
)

// Notification statuses.
const (
	NotificationStatusUnread   = "unread"
	NotificationStatusRead     = "read"
	NotificationStatusArchived = "archived"
)

// NotificationSourceType tags what produced a notification.
type NotificationSourceType string

const (
	SourceContactForm   NotificationSourceType = "contact_form"
	SourceGalleryUpload NotificationSourceType = "gallery_upload"
	SourceSystem        NotificationSourceType = "system"
	SourceUserAction    NotificationSourceType = "user_action"
	SourceError         NotificationSourceType = "error"
)

// NotificationSource points back at the entity that caused the
// notification. The link is advisory; the store enforces no foreign key.
type NotificationSource struct {
	Type     NotificationSourceType `json:"type"`
	SourceID string                 `json:"sourceId,omitempty"`
}

// Notification is a derived record summarizing an event for the admin
// inbox. ReadAt is the empty string while unread; stored documents use ""
// as the sentinel rather than omitting the field.
type Notification struct {
	ID         string               `json:"id"`
	Title      string               `json:"title"`
	Message    string               `json:"message"`
	Type       NotificationType     `json:"type"`
	Priority   NotificationPriority `json:"priority"`
	Status     string               `json:"status"` // "unread" | "read" | "archived"
	CreatedAt  string               `json:"createdAt"`
	ReadAt     string               `json:"readAt"`
	ArchivedAt string               `json:"archivedAt,omitempty"`
	Source     NotificationSource   `json:"source"`
}
