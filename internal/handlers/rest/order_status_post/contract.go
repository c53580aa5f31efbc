//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_status_post_test
package order_status_post

import (
	"context"

	"storefront/internal/entities"
	"storefront/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Transition(ctx context.Context, id int64, newStatus entities.OrderStatusType) (*entities.Order, error)
}
