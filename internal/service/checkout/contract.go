//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=checkout_test
package checkout

import (
	"context"

	"storefront/internal/entities"
)

type CatalogRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Product, error)
	GetByIDs(ctx context.Context, ids []int64) ([]entities.Product, error)
}

type InventoryService interface {
	CheckAvailable(ctx context.Context, productID, quantity int64) (bool, error)
}

type OrderService interface {
	Create(ctx context.Context, draft entities.OrderDraft) (*entities.Order, error)
}
