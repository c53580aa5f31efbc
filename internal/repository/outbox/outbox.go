package outbox

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"storefront/internal/entities"
	"storefront/internal/service/notification"
)

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

// Emit пишет уведомление в outbox-таблицу. Вызывается координатором
// внутри транзакции перехода, поэтому событие коммитится атомарно с
// самим переходом и не может пережить его откат.
func (r *Repository) Emit(ctx context.Context, n entities.Notification) error {
	query := `INSERT INTO notifications_outbox (type, title, message, order_id)
		VALUES ($1, $2, $3, $4)`

	_, err := r.querier.Exec(ctx, query, n.Type.String(), n.Title, n.Message, n.OrderID)
	if err != nil {
		return fmt.Errorf("unexpected outbox repository emit error: %w", err)
	}
	return nil
}

func (r *Repository) GetPending(ctx context.Context, limit int64) ([]entities.Notification, error) {
	query := `SELECT id, type, title, message, order_id, created_at, sent_at
		FROM notifications_outbox
		WHERE sent_at IS NULL
		ORDER BY id
		LIMIT $1`

	rows, err := r.querier.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("unexpected outbox repository getpending error: %w", err)
	}
	defer rows.Close()

	notificationsDB := make([]NotificationDB, 0, limit)
	for rows.Next() {
		var notificationDB NotificationDB
		err := rows.Scan(
			&notificationDB.ID,
			&notificationDB.Type,
			&notificationDB.Title,
			&notificationDB.Message,
			&notificationDB.OrderID,
			&notificationDB.CreatedAt,
			&notificationDB.SentAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected outbox repository getpending error: %w", err)
		}
		notificationsDB = append(notificationsDB, notificationDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected outbox repository getpending error: %w", err)
	}

	return toDomainList(notificationsDB), nil
}

func (r *Repository) MarkSent(ctx context.Context, id int64) error {
	query := `UPDATE notifications_outbox
		SET sent_at = NOW()
		WHERE id = $1 AND sent_at IS NULL`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected outbox repository marksent error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return notification.ErrNotificationNotFound
	}
	return nil
}

func toDomainList(notificationsDB []NotificationDB) []entities.Notification {
	if len(notificationsDB) == 0 {
		return []entities.Notification{}
	}

	result := make([]entities.Notification, len(notificationsDB))
	for i, notificationDB := range notificationsDB {
		result[i] = entities.Notification{
			ID:        notificationDB.ID,
			Type:      entities.NotificationType(notificationDB.Type),
			Title:     notificationDB.Title,
			Message:   notificationDB.Message,
			OrderID:   notificationDB.OrderID,
			CreatedAt: notificationDB.CreatedAt,
			SentAt:    notificationDB.SentAt,
		}
	}
	return result
}
