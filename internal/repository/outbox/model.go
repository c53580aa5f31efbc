package outbox

import "time"

type NotificationDB struct {
	ID        int64
	Type      string
	Title     string
	Message   string
	OrderID   int64
	CreatedAt time.Time
	SentAt    *time.Time
}
