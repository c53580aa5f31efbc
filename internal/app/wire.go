//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"storefront/internal/handlers/rest/checkout_post"
	"storefront/internal/handlers/rest/instore_order_post"
	"storefront/internal/handlers/rest/order_archive_post"
	"storefront/internal/handlers/rest/order_delete"
	"storefront/internal/handlers/rest/order_get"
	"storefront/internal/handlers/rest/order_status_post"
	"storefront/internal/handlers/rest/orders_get"
	"storefront/internal/handlers/tasks/outbox_dispatch"
	"storefront/internal/pkg/config"
	"storefront/internal/pkg/kafka"

	orderRepo "storefront/internal/repository/order"
	outboxRepo "storefront/internal/repository/outbox"
	productRepo "storefront/internal/repository/product"
	checkoutService "storefront/internal/service/checkout"
	inventoryService "storefront/internal/service/inventory"
	notificationService "storefront/internal/service/notification"
	orderService "storefront/internal/service/order"

	"storefront/pkg/background"
	"storefront/pkg/logger"
	"storefront/pkg/querier"
	"storefront/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	OutboxDispatchInterval  time.Duration
	OutboxDispatchBatchSize int64
)

type Application struct {
	ServiceOrder    ServiceOrder
	ServiceCheckout ServiceCheckout
}

type ServiceOrder interface {
	order_get.Service
	orders_get.Service
	order_status_post.Service
	order_archive_post.Service
	order_delete.Service
}

type ServiceCheckout interface {
	checkout_post.Service
	instore_order_post.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideOrderRepository,
		provideProductRepository,
		provideOutboxRepository,

		provideInventoryLedger,
		provideOrderCoordinator,
		provideCheckoutService,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Coordinator)),
		wire.Bind(new(ServiceCheckout), new(*checkoutService.Service)),

		wire.Bind(new(inventoryService.Repository), new(*productRepo.Repository)),
		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.InventoryService), new(*inventoryService.Ledger)),
		wire.Bind(new(orderService.NotificationSink), new(*outboxRepo.Repository)),
		wire.Bind(new(checkoutService.CatalogRepository), new(*productRepo.Repository)),
		wire.Bind(new(checkoutService.InventoryService), new(*inventoryService.Ledger)),
		wire.Bind(new(checkoutService.OrderService), new(*orderService.Coordinator)),

		wire.Bind(new(inventoryService.TxManager), new(*tx.Manager)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
	)
	return &Application{}, nil
}

type OutboxWorkerApp struct {
	BackgroundWorkers *background.Worker
}

// InitializeOutboxWorkerApp для воркера доставки уведомлений (cmd/worker-notification-outbox)
func InitializeOutboxWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer *kafka.Producer,
	cfg *config.Config,
) (*OutboxWorkerApp, error) {
	wire.Build(
		provideQuerier,
		provideOutboxRepository,
		provideNotificationService,

		provideOutboxDispatchInterval,
		provideOutboxDispatchBatchSize,
		provideOutboxDispatchTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(OutboxWorkerApp), "*"),

		wire.Bind(new(notificationService.OutboxRepository), new(*outboxRepo.Repository)),
		wire.Bind(new(notificationService.Publisher), new(*kafka.Producer)),
		wire.Bind(new(outbox_dispatch.Service), new(*notificationService.Service)),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideProductRepository(querier *querier.Querier) *productRepo.Repository {
	return productRepo.New(querier)
}

func provideOutboxRepository(querier *querier.Querier) *outboxRepo.Repository {
	return outboxRepo.New(querier)
}

func provideInventoryLedger(
	repository inventoryService.Repository,
	txManager inventoryService.TxManager,
) *inventoryService.Ledger {
	return inventoryService.New(repository, txManager)
}

func provideOrderCoordinator(
	repository orderService.Repository,
	inventory orderService.InventoryService,
	notifications orderService.NotificationSink,
	txManager orderService.TxManager,
) *orderService.Coordinator {
	return orderService.New(repository, inventory, notifications, txManager)
}

func provideCheckoutService(
	catalog checkoutService.CatalogRepository,
	inventory checkoutService.InventoryService,
	orders checkoutService.OrderService,
) *checkoutService.Service {
	return checkoutService.New(catalog, inventory, orders)
}

func provideNotificationService(
	repository notificationService.OutboxRepository,
	publisher notificationService.Publisher,
) *notificationService.Service {
	return notificationService.New(repository, publisher)
}

func provideOutboxDispatchInterval(cfg *config.Config) OutboxDispatchInterval {
	return OutboxDispatchInterval(cfg.Tasks.OutboxDispatchInterval)
}

func provideOutboxDispatchBatchSize(cfg *config.Config) OutboxDispatchBatchSize {
	return OutboxDispatchBatchSize(cfg.Tasks.OutboxDispatchBatchSize)
}

func provideOutboxDispatchTask(
	log logger.Logger,
	notificationService outbox_dispatch.Service,
	interval OutboxDispatchInterval,
	batchSize OutboxDispatchBatchSize,
) *outbox_dispatch.OutboxDispatch {
	return outbox_dispatch.NewOutboxDispatch(log, notificationService, time.Duration(interval), int64(batchSize))
}

func provideTaskList(
	outboxDispatchTask *outbox_dispatch.OutboxDispatch,
) []background.Task {
	return []background.Task{
		outboxDispatchTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
