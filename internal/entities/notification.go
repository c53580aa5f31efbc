package entities

import "time"

type Notification struct {
	ID        int64
	Type      NotificationType
	Title     string
	Message   string
	OrderID   int64
	CreatedAt time.Time
	SentAt    *time.Time
}

type NotificationType string

const (
	NotificationOrderCreated   NotificationType = "order_created"
	NotificationOrderCompleted NotificationType = "order_completed"
	NotificationOrderCancelled NotificationType = "order_cancelled"
	NotificationOrderArchived  NotificationType = "order_archived"
)

func (t NotificationType) String() string {
	return string(t)
}
