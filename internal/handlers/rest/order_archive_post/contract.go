//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_archive_post_test
package order_archive_post

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
	SetArchived(ctx context.Context, id int64, archived bool) (*entities.Order, error)
}
