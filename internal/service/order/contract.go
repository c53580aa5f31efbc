//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"
	"time"

	"storefront/internal/entities"
)

type Repository interface {
	Insert(ctx context.Context, draft entities.OrderDraft) (*entities.Order, error)
	GetByID(ctx context.Context, id int64) (*entities.Order, error)
	// GetByIDForUpdate блокирует строку заказа до конца транзакции,
	// переходы по одному заказу сериализуются на этой блокировке.
	GetByIDForUpdate(ctx context.Context, id int64) (*entities.Order, error)
	UpdateStatus(ctx context.Context, id int64, status entities.OrderStatusType) (*entities.Order, error)
	SetArchived(ctx context.Context, id int64, archived bool, archivedAt *time.Time) (*entities.Order, error)
	Delete(ctx context.Context, id int64) error
	ListByType(ctx context.Context, orderType entities.OrderType) ([]entities.Order, error)
	ListArchived(ctx context.Context) ([]entities.Order, error)
}

type InventoryService interface {
	DecrementBatch(ctx context.Context, items []entities.OrderItem) error
	IncrementBatch(ctx context.Context, items []entities.OrderItem) error
}

type NotificationSink interface {
	Emit(ctx context.Context, notification entities.Notification) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
