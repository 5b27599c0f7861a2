package dto

import "time"

// NotificationDto is a notification as returned to clients.
type NotificationDto struct {
	ID          uint64     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	IsRead      bool       `json:"isRead"`
	CreatedAt   time.Time  `json:"createdAt"`
	ReadAt      *time.Time `json:"readAt,omitempty"`
}

// UnreadCountDto reports how many notifications are still unread.
type UnreadCountDto struct {
	UnreadCount int64 `json:"unreadCount"`
}
