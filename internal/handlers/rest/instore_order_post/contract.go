//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=instore_order_post_test
package instore_order_post

import (
	"context"

	"storefront/internal/entities"
	"storefront/internal/service/checkout"
	"storefront/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	SubmitInStore(ctx context.Context, req checkout.InStoreOrder) (*entities.Order, error)
}
