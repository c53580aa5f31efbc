package outbox_dispatch

import (
	"context"
	"time"

	"storefront/pkg/logger"
)

type Service interface {
	DispatchPending(ctx context.Context, limit int64) (int64, error)
}

type OutboxDispatch struct {
	log       logger.Logger
	service   Service
	interval  time.Duration
	batchSize int64
}

func NewOutboxDispatch(log logger.Logger, service Service, interval time.Duration, batchSize int64) *OutboxDispatch {
	return &OutboxDispatch{
		log:       log,
		service:   service,
		interval:  interval,
		batchSize: batchSize,
	}
}

func (d *OutboxDispatch) TTL() time.Duration {
	return d.interval
}

func (d *OutboxDispatch) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, d.interval)
	defer cancel()

	dispatched, err := d.service.DispatchPending(ctxWithTimeout, d.batchSize)

	if dispatched > 0 {
		d.log.With(
			logger.NewField("dispatched_notifications", dispatched),
		).Info("outbox dispatch")
	}

	return err
}

func (d *OutboxDispatch) Info() string {
	return "notification outbox dispatch"
}
