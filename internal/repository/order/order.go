package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"storefront/internal/entities"
	"storefront/internal/repository"
	"storefront/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderColumns = `id, type, status, total, customer_name, customer_phone,
		delivery_option, delivery_address, payment_method, created_at, archived, archived_at`

type Querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Insert сохраняет заказ и его позиции. Статус всегда pending, archived
// всегда false, items и total пишутся как есть без пересчета.
func (r *Repository) Insert(ctx context.Context, draft entities.OrderDraft) (*entities.Order, error) {
	query := `INSERT INTO orders (type, status, total, customer_name, customer_phone,
			delivery_option, delivery_address, payment_method)
		VALUES ($1, 'pending', $2, $3, $4, $5, $6, $7)
		RETURNING ` + orderColumns

	var orderDB OrderDB
	err := r.querier.QueryRow(
		ctx,
		query,
		draft.Type.String(),
		draft.Total,
		draft.CustomerName,
		draft.CustomerPhone,
		draft.DeliveryOption.String(),
		draft.DeliveryAddress,
		draft.PaymentMethod,
	).Scan(
		&orderDB.ID,
		&orderDB.Type,
		&orderDB.Status,
		&orderDB.Total,
		&orderDB.CustomerName,
		&orderDB.CustomerPhone,
		&orderDB.DeliveryOption,
		&orderDB.DeliveryAddress,
		&orderDB.PaymentMethod,
		&orderDB.CreatedAt,
		&orderDB.Archived,
		&orderDB.ArchivedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository insert error: %w", err)
	}

	itemsDB := FromDomainItems(orderDB.ID, draft.Items)

	builder := qb.
		Insert("order_items").
		Columns("order_id", "product_id", "position", "name", "unit_price", "quantity")
	for _, itemDB := range itemsDB {
		builder = builder.Values(itemDB.OrderID, itemDB.ProductID, itemDB.Position, itemDB.Name, itemDB.UnitPrice, itemDB.Quantity)
	}

	itemsQuery, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository insert error: %w", err)
	}

	_, err = r.querier.Exec(ctx, itemsQuery, args...)
	if err != nil {
		// PK (order_id, product_id) ловит повтор товара в корзине
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, order.ErrDuplicateProduct
		}
		return nil, fmt.Errorf("unexpected order repository insert items error: %w", err)
	}

	return ToDomain(&orderDB, itemsDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Order, error) {
	return r.getByID(ctx, id, false)
}

// GetByIDForUpdate то же что GetByID, но строка заказа блокируется до
// конца текущей транзакции.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*entities.Order, error) {
	return r.getByID(ctx, id, true)
}

func (r *Repository) getByID(ctx context.Context, id int64, forUpdate bool) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1`
	if forUpdate {
		query += `
		FOR UPDATE`
	}

	var orderDB OrderDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&orderDB.ID,
		&orderDB.Type,
		&orderDB.Status,
		&orderDB.Total,
		&orderDB.CustomerName,
		&orderDB.CustomerPhone,
		&orderDB.DeliveryOption,
		&orderDB.DeliveryAddress,
		&orderDB.PaymentMethod,
		&orderDB.CreatedAt,
		&orderDB.Archived,
		&orderDB.ArchivedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	items, err := r.loadItems(ctx, []int64{orderDB.ID})
	if err != nil {
		return nil, err
	}

	return ToDomain(&orderDB, items[orderDB.ID]), nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id int64, status entities.OrderStatusType) (*entities.Order, error) {
	query := `UPDATE orders
		SET status = $2
		WHERE id = $1
		RETURNING ` + orderColumns

	return r.returningOne(ctx, query, id, status.String())
}

func (r *Repository) SetArchived(ctx context.Context, id int64, archived bool, archivedAt *time.Time) (*entities.Order, error) {
	query := `UPDATE orders
		SET archived = $2, archived_at = $3
		WHERE id = $1
		RETURNING ` + orderColumns

	return r.returningOne(ctx, query, id, archived, archivedAt)
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM orders WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected order repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return order.ErrOrderNotFound
	}
	return nil
}

func (r *Repository) ListByType(ctx context.Context, orderType entities.OrderType) ([]entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE type = $1 AND archived = FALSE
		ORDER BY created_at DESC, id DESC`

	return r.list(ctx, query, orderType.String())
}

func (r *Repository) ListArchived(ctx context.Context) ([]entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE archived = TRUE
		ORDER BY archived_at DESC, id DESC`

	return r.list(ctx, query)
}

func (r *Repository) returningOne(ctx context.Context, query string, args ...interface{}) (*entities.Order, error) {
	var orderDB OrderDB
	err := r.querier.QueryRow(ctx, query, args...).Scan(
		&orderDB.ID,
		&orderDB.Type,
		&orderDB.Status,
		&orderDB.Total,
		&orderDB.CustomerName,
		&orderDB.CustomerPhone,
		&orderDB.DeliveryOption,
		&orderDB.DeliveryAddress,
		&orderDB.PaymentMethod,
		&orderDB.CreatedAt,
		&orderDB.Archived,
		&orderDB.ArchivedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	items, err := r.loadItems(ctx, []int64{orderDB.ID})
	if err != nil {
		return nil, err
	}

	return ToDomain(&orderDB, items[orderDB.ID]), nil
}

func (r *Repository) list(ctx context.Context, query string, args ...interface{}) ([]entities.Order, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}
	defer rows.Close()

	ordersDB := make([]OrderDB, 0, 8)
	for rows.Next() {
		var orderDB OrderDB
		err := rows.Scan(
			&orderDB.ID,
			&orderDB.Type,
			&orderDB.Status,
			&orderDB.Total,
			&orderDB.CustomerName,
			&orderDB.CustomerPhone,
			&orderDB.DeliveryOption,
			&orderDB.DeliveryAddress,
			&orderDB.PaymentMethod,
			&orderDB.CreatedAt,
			&orderDB.Archived,
			&orderDB.ArchivedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository list error: %w", err)
		}
		ordersDB = append(ordersDB, orderDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	ids := make([]int64, len(ordersDB))
	for i, orderDB := range ordersDB {
		ids[i] = orderDB.ID
	}

	itemsByOrder, err := r.loadItems(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]entities.Order, len(ordersDB))
	for i, orderDB := range ordersDB {
		result[i] = *ToDomain(&orderDB, itemsByOrder[orderDB.ID])
	}
	return result, nil
}

// loadItems одним запросом достает позиции сразу для пачки заказов.
func (r *Repository) loadItems(ctx context.Context, orderIDs []int64) (map[int64][]OrderItemDB, error) {
	if len(orderIDs) == 0 {
		return map[int64][]OrderItemDB{}, nil
	}

	// position хранит порядок корзины на момент оформления.
	query, args, err := qb.
		Select("order_id", "product_id", "position", "name", "unit_price", "quantity").
		From("order_items").
		Where(sq.Eq{"order_id": orderIDs}).
		OrderBy("order_id", "position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository loaditems error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository loaditems error: %w", err)
	}
	defer rows.Close()

	result := make(map[int64][]OrderItemDB, len(orderIDs))
	for rows.Next() {
		var itemDB OrderItemDB
		err := rows.Scan(
			&itemDB.OrderID,
			&itemDB.ProductID,
			&itemDB.Position,
			&itemDB.Name,
			&itemDB.UnitPrice,
			&itemDB.Quantity,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository loaditems error: %w", err)
		}
		result[itemDB.OrderID] = append(result[itemDB.OrderID], itemDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository loaditems error: %w", err)
	}

	return result, nil
}
