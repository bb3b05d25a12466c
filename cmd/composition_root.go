package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"ordertracker/internal/adapters/out/kafka"
	"ordertracker/internal/adapters/out/memory"
	"ordertracker/internal/adapters/out/postgres"
	"ordertracker/internal/core/application/usecases/commands"
	"ordertracker/internal/core/application/usecases/queries"
	"ordertracker/internal/core/ports"

	"gorm.io/gorm"
)

type eventPublisher interface {
	ports.OrderEventPublisher
	Close() error
}

// CompositionRoot owns the store and the event publisher for the lifetime of
// the process and builds the use case handlers on top of them.
type CompositionRoot struct {
	logger     *slog.Logger
	uowFactory ports.UnitOfWorkFactory
	reader     queries.OrderReader
	publisher  eventPublisher
	closers    []func() error
}

// NewCompositionRoot opens the configured store and publisher.
// Close must be called to release them.
func NewCompositionRoot(config Config, logger *slog.Logger) (*CompositionRoot, error) {
	root := &CompositionRoot{logger: logger}

	switch config.StorageDriver {
	case StoragePostgres:
		db, err := postgres.Open(config.connectionSettings().DSN())
		if err != nil {
			return nil, err
		}
		if err = postgres.Migrate(db); err != nil {
			_ = postgres.Close(db)
			return nil, err
		}
		root.usePostgres(db)
	case StorageMemory:
		root.useMemory(memory.NewStore())
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", config.StorageDriver)
	}

	if brokers := config.KafkaBrokers(); len(brokers) > 0 {
		root.publisher = kafka.NewOrderEventPublisher(brokers, config.KafkaOrderChangedTopic)
		logger.Info("Publishing order events", "brokers", brokers, "topic", config.KafkaOrderChangedTopic)
	} else {
		root.publisher = kafka.NoopPublisher{}
	}
	root.closers = append([]func() error{root.publisher.Close}, root.closers...)

	logger.Info("Order store ready", "driver", config.StorageDriver)
	return root, nil
}

func (c *CompositionRoot) useMemory(store *memory.Store) {
	c.uowFactory = memory.NewUnitOfWorkFactory(store)
	c.reader = store
	c.closers = append(c.closers, store.Close)
}

func (c *CompositionRoot) usePostgres(db *gorm.DB) {
	factory := postgres.NewGormUnitOfWorkFactory(db)
	c.uowFactory = factory
	c.reader = factory.Create().OrderRepository()
	c.closers = append(c.closers, func() error { return postgres.Close(db) })
}

// Close flushes the publisher and releases the store.
func (c *CompositionRoot) Close(_ context.Context) error {
	var closeErrs []error
	for _, closeFn := range c.closers {
		if err := closeFn(); err != nil {
			closeErrs = append(closeErrs, err)
		}
	}
	c.closers = nil
	return errors.Join(closeErrs...)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.reader)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.reader)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
