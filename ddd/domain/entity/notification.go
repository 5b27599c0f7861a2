package entity

import "time"

// Notification is an append-only record signaling a lifecycle event to a
// user. It is mutated only by mark-as-read, never deleted.
type Notification struct {
	ID          uint64
	UserUUID    string
	Title       string
	Description string
	IsRead      bool
	CreatedAt   time.Time
	ReadAt      *time.Time
}

// NewNotification creates an unread notification.
func NewNotification(userUUID, title, description string) *Notification {
	return &Notification{
		UserUUID:    userUUID,
		Title:       title,
		Description: description,
		IsRead:      false,
	}
}
