package cmd

import (
	"log/slog"

	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	orderStore *orderrepo.GormOrderStore
	notifier   ports.ReadyNotifier
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, notifier ports.ReadyNotifier, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		orderStore: orderrepo.NewGormOrderStore(gormDB),
		notifier:   notifier,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateAdvanceOrderStatusCommandHandler() commands.AdvanceOrderStatusCommandHandler {
	return commands.NewAdvanceOrderStatusCommandHandler(c.orderStore, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderStore)
}

func (c *CompositionRoot) CreateFulfillLocationCommandHandler() commands.FulfillLocationCommandHandler {
	return commands.NewFulfillLocationCommandHandler(c.orderStore, c.logger)
}

func (c *CompositionRoot) CreateRecordShipmentCommandHandler() commands.RecordShipmentCommandHandler {
	return commands.NewRecordShipmentCommandHandler(c.orderStore)
}

func (c *CompositionRoot) CreateGetFulfillmentBoardQueryHandler() queries.GetFulfillmentBoardQueryHandler {
	return queries.NewGetFulfillmentBoardQueryHandler(c.orderStore)
}

func (c *CompositionRoot) CreateGetOrderFulfillmentQueryHandler() queries.GetOrderFulfillmentQueryHandler {
	return queries.NewGetOrderFulfillmentQueryHandler(c.orderStore)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetFulfillmentBoardQueryHandler(),
		c.orderStore,
		c.notifier,
		c.logger,
	)
}
