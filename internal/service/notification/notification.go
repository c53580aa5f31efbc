package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Service доставляет уведомления из транзакционного outbox в Kafka.
// Запись в outbox делает координатор заказов в одной транзакции с
// переходом, здесь только доставка записанного. Сбой доставки никогда
// не влияет на сам переход, строки просто остаются pending до
// следующего тика.
type Service struct {
	repository OutboxRepository
	publisher  Publisher
}

func New(repository OutboxRepository, publisher Publisher) *Service {
	return &Service{
		repository: repository,
		publisher:  publisher,
	}
}

type event struct {
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	OrderID   int64     `json:"order_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *Service) DispatchPending(ctx context.Context, limit int64) (int64, error) {
	pending, err := s.repository.GetPending(ctx, limit)
	if err != nil {
		return 0, fmt.Errorf("get pending notifications: %w", err)
	}

	var dispatched int64
	for _, n := range pending {
		payload, err := json.Marshal(event{
			Type:      n.Type.String(),
			Title:     n.Title,
			Message:   n.Message,
			OrderID:   n.OrderID,
			CreatedAt: n.CreatedAt,
		})
		if err != nil {
			return dispatched, fmt.Errorf("marshal notification %d: %w", n.ID, err)
		}

		// ключ = id заказа, события одного заказа попадают в одну партицию
		err = s.publisher.Send(strconv.FormatInt(n.OrderID, 10), payload)
		if err != nil {
			return dispatched, fmt.Errorf("publish notification %d: %w", n.ID, err)
		}

		err = s.repository.MarkSent(ctx, n.ID)
		if err != nil {
			return dispatched, fmt.Errorf("mark notification %d sent: %w", n.ID, err)
		}
		dispatched++
	}

	return dispatched, nil
}
