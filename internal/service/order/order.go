package order

import (
	"context"
	"fmt"
	"time"

	"storefront/internal/entities"
)

// Coordinator единственная точка записи для заказов и единственное место,
// откуда заказ может повлиять на остатки. Переход в completed и удаление
// completed-заказа выполняют изменение статуса и батч по остаткам в одной
// транзакции.
type Coordinator struct {
	repository    Repository
	inventory     InventoryService
	notifications NotificationSink
	txManager     TxManager
}

func New(
	repository Repository,
	inventory InventoryService,
	notifications NotificationSink,
	txManager TxManager,
) *Coordinator {
	return &Coordinator{
		repository:    repository,
		inventory:     inventory,
		notifications: notifications,
		txManager:     txManager,
	}
}

func (c *Coordinator) Create(ctx context.Context, draft entities.OrderDraft) (*entities.Order, error) {
	if draft.Type != entities.OrderTypeOnline && draft.Type != entities.OrderTypeInStore {
		return nil, fmt.Errorf("%w: order type", ErrMissingRequiredFields)
	}
	if len(draft.Items) == 0 {
		return nil, fmt.Errorf("%w: items", ErrMissingRequiredFields)
	}
	for _, item := range draft.Items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("%w: item quantity", ErrMissingRequiredFields)
		}
	}

	// итог фиксируется один раз по снапшот-ценам и дальше не пересчитывается
	var total int64
	for _, item := range draft.Items {
		total += item.UnitPrice * item.Quantity
	}
	draft.Total = total

	var created *entities.Order
	err := c.txManager.Do(ctx, func(ctx context.Context) error {
		inserted, err := c.repository.Insert(ctx, draft)
		if err != nil {
			return fmt.Errorf("insert order: %w", err)
		}

		err = c.notifications.Emit(ctx, newNotification(entities.NotificationOrderCreated, inserted))
		if err != nil {
			return fmt.Errorf("emit order_created: %w", err)
		}

		created = inserted
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Transition переводит заказ в newStatus. Вход в completed списывает
// остатки по всем позициям заказа в той же транзакции, при нехватке
// переход отменяется целиком и заказ остается в прежнем статусе.
// Повторный перевод в текущий статус это no-op без эффекта по остаткам.
func (c *Coordinator) Transition(ctx context.Context, id int64, newStatus entities.OrderStatusType) (*entities.Order, error) {
	if !isValidStatus(newStatus) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, newStatus)
	}

	var result *entities.Order
	err := c.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := c.repository.GetByIDForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		if current.Status == newStatus {
			result = current
			return nil
		}

		if current.Archived {
			return ErrOrderArchived
		}
		if !canTransition(current.Status, newStatus) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, newStatus)
		}

		if newStatus == entities.OrderCompleted {
			err = c.inventory.DecrementBatch(ctx, current.Items)
			if err != nil {
				return fmt.Errorf("decrement stock for order %d: %w", id, err)
			}
		}

		updated, err := c.repository.UpdateStatus(ctx, id, newStatus)
		if err != nil {
			return fmt.Errorf("update status: %w", err)
		}

		switch newStatus {
		case entities.OrderCompleted:
			err = c.notifications.Emit(ctx, newNotification(entities.NotificationOrderCompleted, updated))
		case entities.OrderCancelled:
			err = c.notifications.Emit(ctx, newNotification(entities.NotificationOrderCancelled, updated))
		}
		if err != nil {
			return fmt.Errorf("emit status notification: %w", err)
		}

		result = updated
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// SetArchived прячет не-pending заказ из активной админки или возвращает
// его обратно, статус при этом не меняется.
func (c *Coordinator) SetArchived(ctx context.Context, id int64, archived bool) (*entities.Order, error) {
	var result *entities.Order
	err := c.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := c.repository.GetByIDForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		if current.Archived == archived {
			result = current
			return nil
		}

		var archivedAt *time.Time
		if archived {
			if current.Status == entities.OrderPending {
				return ErrOrderPending
			}
			now := time.Now().UTC()
			archivedAt = &now
		}

		updated, err := c.repository.SetArchived(ctx, id, archived, archivedAt)
		if err != nil {
			return fmt.Errorf("set archived: %w", err)
		}

		if archived {
			err = c.notifications.Emit(ctx, newNotification(entities.NotificationOrderArchived, updated))
			if err != nil {
				return fmt.Errorf("emit order_archived: %w", err)
			}
		}

		result = updated
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Delete удаляет заказ. Для completed-заказа сперва возвращает остатки по
// всем позициям (компенсация) в той же транзакции, для остальных статусов
// остатки не трогаются.
func (c *Coordinator) Delete(ctx context.Context, id int64) error {
	return c.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := c.repository.GetByIDForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		if current.Status == entities.OrderCompleted {
			err = c.inventory.IncrementBatch(ctx, current.Items)
			if err != nil {
				return fmt.Errorf("restore stock for order %d: %w", id, err)
			}
		}

		err = c.repository.Delete(ctx, id)
		if err != nil {
			return fmt.Errorf("delete order: %w", err)
		}
		return nil
	})
}

func (c *Coordinator) GetOrder(ctx context.Context, id int64) (*entities.Order, error) {
	result, err := c.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return result, nil
}

func (c *Coordinator) ListOrders(ctx context.Context, orderType entities.OrderType) ([]entities.Order, error) {
	if orderType != entities.OrderTypeOnline && orderType != entities.OrderTypeInStore {
		return nil, fmt.Errorf("%w: order type", ErrMissingRequiredFields)
	}

	orders, err := c.repository.ListByType(ctx, orderType)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

func (c *Coordinator) ListArchived(ctx context.Context) ([]entities.Order, error) {
	orders, err := c.repository.ListArchived(ctx)
	if err != nil {
		return nil, fmt.Errorf("list archived orders: %w", err)
	}
	return orders, nil
}

func newNotification(t entities.NotificationType, o *entities.Order) entities.Notification {
	var title string
	switch t {
	case entities.NotificationOrderCreated:
		title = "New order"
	case entities.NotificationOrderCompleted:
		title = "Order completed"
	case entities.NotificationOrderCancelled:
		title = "Order cancelled"
	case entities.NotificationOrderArchived:
		title = "Order archived"
	}

	return entities.Notification{
		Type:    t,
		Title:   title,
		Message: fmt.Sprintf("Order #%d (%s) for %s", o.ID, o.Type, o.CustomerName),
		OrderID: o.ID,
	}
}
