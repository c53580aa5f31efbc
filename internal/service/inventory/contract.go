//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=inventory_test
package inventory

import (
	"context"
)

type Repository interface {
	GetStock(ctx context.Context, productID int64) (int64, error)
	// SubtractStock атомарно проверяет и списывает остаток одной строкой,
	// при нехватке возвращает ErrInsufficientStock и ничего не меняет.
	SubtractStock(ctx context.Context, productID, quantity int64) error
	AddStock(ctx context.Context, productID, quantity int64) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
