//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
package notification

import (
	"context"

	"storefront/internal/entities"
)

type OutboxRepository interface {
	GetPending(ctx context.Context, limit int64) ([]entities.Notification, error)
	MarkSent(ctx context.Context, id int64) error
}

type Publisher interface {
	Send(key string, payload []byte) error
}
