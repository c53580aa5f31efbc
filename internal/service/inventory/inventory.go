package inventory

import (
	"context"
	"fmt"

	"storefront/internal/entities"
)

type Ledger struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Ledger {
	return &Ledger{
		repository: repository,
		txManager:  txManager,
	}
}

// CheckAvailable только читает остаток и ничего не резервирует,
// между проверкой и списанием остаток может измениться.
func (l *Ledger) CheckAvailable(ctx context.Context, productID, quantity int64) (bool, error) {
	if quantity <= 0 {
		return false, ErrInvalidQuantity
	}

	stock, err := l.repository.GetStock(ctx, productID)
	if err != nil {
		return false, fmt.Errorf("get stock: %w", err)
	}

	return stock >= quantity, nil
}

func (l *Ledger) Decrement(ctx context.Context, productID, quantity int64) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	err := l.repository.SubtractStock(ctx, productID, quantity)
	if err != nil {
		return fmt.Errorf("subtract stock for product %d: %w", productID, err)
	}

	return nil
}

// DecrementBatch списывает остатки по всем позициям заказа как единое целое,
// при нехватке по любой позиции транзакция откатывается и ни одна строка
// не меняется.
func (l *Ledger) DecrementBatch(ctx context.Context, items []entities.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	for _, item := range items {
		if item.Quantity <= 0 {
			return ErrInvalidQuantity
		}
	}

	return l.txManager.Do(ctx, func(ctx context.Context) error {
		for _, item := range items {
			err := l.repository.SubtractStock(ctx, item.ProductID, item.Quantity)
			if err != nil {
				return fmt.Errorf("subtract stock for product %d: %w", item.ProductID, err)
			}
		}
		return nil
	})
}

// Increment безусловно возвращает остаток, это компенсация и она не
// должна падать из-за состояния счетчика.
func (l *Ledger) Increment(ctx context.Context, productID, quantity int64) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	err := l.repository.AddStock(ctx, productID, quantity)
	if err != nil {
		return fmt.Errorf("add stock for product %d: %w", productID, err)
	}

	return nil
}

func (l *Ledger) IncrementBatch(ctx context.Context, items []entities.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	for _, item := range items {
		if item.Quantity <= 0 {
			return ErrInvalidQuantity
		}
	}

	return l.txManager.Do(ctx, func(ctx context.Context) error {
		for _, item := range items {
			err := l.repository.AddStock(ctx, item.ProductID, item.Quantity)
			if err != nil {
				return fmt.Errorf("add stock for product %d: %w", item.ProductID, err)
			}
		}
		return nil
	})
}
