package checkout

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/entities"
	"storefront/internal/service/inventory"
)

type OnlineCheckout struct {
	Items           []CartLine
	CustomerName    string
	CustomerPhone   string
	DeliveryOption  entities.DeliveryOptionType
	DeliveryAddress string
	PaymentMethod   string
}

type InStoreOrder struct {
	ProductID     int64
	Quantity      int64
	CustomerName  string
	CustomerPhone string
	PaymentMethod string
}

type CartLine struct {
	ProductID int64
	Quantity  int64
}

type Service struct {
	catalog   CatalogRepository
	inventory InventoryService
	orders    OrderService
}

func New(catalog CatalogRepository, inventory InventoryService, orders OrderService) *Service {
	return &Service{
		catalog:   catalog,
		inventory: inventory,
		orders:    orders,
	}
}

// SubmitOnline проверяет данные покупателя, снапшотит цены каталога и
// создает pending-заказ типа online. Остатки здесь не проверяются и не
// резервируются, списание произойдет при завершении заказа.
func (s *Service) SubmitOnline(ctx context.Context, req OnlineCheckout) (*entities.Order, error) {
	if err := validateCustomer(req.CustomerName, req.CustomerPhone, req.PaymentMethod); err != nil {
		return nil, err
	}
	switch req.DeliveryOption {
	case entities.DeliveryPickup:
	case entities.DeliveryCourier:
		if !isValidAddress(req.DeliveryAddress) {
			return nil, ErrInvalidAddress
		}
	default:
		return nil, ErrInvalidDelivery
	}
	if len(req.Items) == 0 {
		return nil, ErrEmptyCart
	}
	for _, line := range req.Items {
		if line.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
	}

	items, err := s.snapshotCart(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	address := req.DeliveryAddress
	if req.DeliveryOption == entities.DeliveryPickup {
		address = ""
	}

	created, err := s.orders.Create(ctx, entities.OrderDraft{
		Type:            entities.OrderTypeOnline,
		Items:           items,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		DeliveryOption:  req.DeliveryOption,
		DeliveryAddress: address,
		PaymentMethod:   req.PaymentMethod,
	})
	if err != nil {
		return nil, fmt.Errorf("create online order: %w", err)
	}
	return created, nil
}

// SubmitInStore создает pending-заказ, оформленный персоналом на месте.
// Проверка остатка тут только UX-фильтр на момент оформления, не резерв:
// два заказа на один дефицитный товар могут оба пройти эту проверку, и
// тогда второй упадет на списании при завершении.
func (s *Service) SubmitInStore(ctx context.Context, req InStoreOrder) (*entities.Order, error) {
	if err := validateCustomer(req.CustomerName, req.CustomerPhone, req.PaymentMethod); err != nil {
		return nil, err
	}
	if req.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	product, err := s.catalog.GetByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, inventory.ErrProductNotFound) {
			return nil, fmt.Errorf("%w: %d", ErrUnknownProduct, req.ProductID)
		}
		return nil, fmt.Errorf("load product: %w", err)
	}

	available, err := s.inventory.CheckAvailable(ctx, req.ProductID, req.Quantity)
	if err != nil {
		return nil, fmt.Errorf("check stock: %w", err)
	}
	if !available {
		return nil, fmt.Errorf("product %d: %w", req.ProductID, inventory.ErrInsufficientStock)
	}

	created, err := s.orders.Create(ctx, entities.OrderDraft{
		Type: entities.OrderTypeInStore,
		Items: []entities.OrderItem{{
			ProductID: product.ID,
			Name:      product.Name,
			UnitPrice: product.Price,
			Quantity:  req.Quantity,
		}},
		CustomerName:   req.CustomerName,
		CustomerPhone:  req.CustomerPhone,
		DeliveryOption: entities.DeliveryPickup,
		PaymentMethod:  req.PaymentMethod,
	})
	if err != nil {
		return nil, fmt.Errorf("create in-store order: %w", err)
	}
	return created, nil
}

func (s *Service) snapshotCart(ctx context.Context, lines []CartLine) ([]entities.OrderItem, error) {
	ids := make([]int64, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ProductID)
	}

	products, err := s.catalog.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}

	byID := make(map[int64]entities.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	items := make([]entities.OrderItem, 0, len(lines))
	for _, line := range lines {
		product, ok := byID[line.ProductID]
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrUnknownProduct, line.ProductID)
		}
		items = append(items, entities.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			UnitPrice: product.Price,
			Quantity:  line.Quantity,
		})
	}
	return items, nil
}

func validateCustomer(name, phone, payment string) error {
	if !isValidName(name) {
		return ErrInvalidName
	}
	if !isValidPhone(phone) {
		return ErrInvalidPhone
	}
	if !isValidPayment(payment) {
		return ErrInvalidPayment
	}
	return nil
}
