package product

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"storefront/internal/entities"
	"storefront/internal/service/inventory"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

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

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Product, error) {
	query := `SELECT id, name, price, stock, created_at, updated_at
		FROM products
		WHERE id = $1`

	var productDB ProductDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&productDB.ID,
		&productDB.Name,
		&productDB.Price,
		&productDB.Stock,
		&productDB.CreatedAt,
		&productDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, inventory.ErrProductNotFound
		}
		return nil, fmt.Errorf("unexpected product repository getbyid error: %w", err)
	}

	return ToDomain(&productDB), nil
}

func (r *Repository) GetByIDs(ctx context.Context, ids []int64) ([]entities.Product, error) {
	query, args, err := qb.
		Select("id", "name", "price", "stock", "created_at", "updated_at").
		From("products").
		Where(sq.Eq{"id": ids}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected product repository getbyids error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected product repository getbyids error: %w", err)
	}
	defer rows.Close()

	productsDB := make([]ProductDB, 0, len(ids))
	for rows.Next() {
		var productDB ProductDB
		err := rows.Scan(
			&productDB.ID,
			&productDB.Name,
			&productDB.Price,
			&productDB.Stock,
			&productDB.CreatedAt,
			&productDB.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected product repository getbyids error: %w", err)
		}
		productsDB = append(productsDB, productDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected product repository getbyids error: %w", err)
	}

	return ToDomainList(productsDB), nil
}

func (r *Repository) GetStock(ctx context.Context, productID int64) (int64, error) {
	query := `SELECT stock FROM products WHERE id = $1`

	var stock int64
	err := r.querier.QueryRow(ctx, query, productID).Scan(&stock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, inventory.ErrProductNotFound
		}
		return 0, fmt.Errorf("unexpected product repository getstock error: %w", err)
	}

	return stock, nil
}

// SubtractStock проверка и списание одной командой, условие stock >= $2
// не дает счетчику уйти в минус даже при конкурентных списаниях.
func (r *Repository) SubtractStock(ctx context.Context, productID, quantity int64) error {
	query := `UPDATE products
		SET stock = stock - $2, updated_at = NOW()
		WHERE id = $1 AND stock >= $2`

	result, err := r.querier.Exec(ctx, query, productID, quantity)
	if err != nil {
		return fmt.Errorf("unexpected product repository subtractstock error: %w", err)
	}

	if result.RowsAffected() == 0 {
		// либо товара нет, либо не хватило остатка
		_, err := r.GetStock(ctx, productID)
		if err != nil {
			return err
		}
		return inventory.ErrInsufficientStock
	}
	return nil
}

func (r *Repository) AddStock(ctx context.Context, productID, quantity int64) error {
	query := `UPDATE products
		SET stock = stock + $2, updated_at = NOW()
		WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, productID, quantity)
	if err != nil {
		return fmt.Errorf("unexpected product repository addstock error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return inventory.ErrProductNotFound
	}
	return nil
}
