package cmd

import (
	"context"
	"fmt"
	"log/slog"

	storefront_amqp "storefront/internal/adapters/out/amqp"
	"storefront/internal/adapters/out/localstore"
	"storefront/internal/adapters/out/mongodb"
	mongo_orderrepo "storefront/internal/adapters/out/mongodb/orderrepo"
	mongo_sequencerepo "storefront/internal/adapters/out/mongodb/sequencerepo"
	"storefront/internal/adapters/out/postgres"
	pg_orderrepo "storefront/internal/adapters/out/postgres/orderrepo"
	pg_sequencerepo "storefront/internal/adapters/out/postgres/sequencerepo"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/pricing"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"

	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// CompositionRoot wires the storage backend, domain services and message
// publisher behind the handler factory methods consumed by the HTTP server
// and the job manager.
type CompositionRoot struct {
	catalog    *catalog.Catalog
	pricing    pricing.Table
	checkout   services.CheckoutService
	uowFactory ports.UnitOfWorkFactory
	orderRepo  ports.OrderRepository
	sequence   ports.SequenceRepository
	publisher  commands.OrderEventPublisher
	closer     func()
}

// NewCompositionRoot builds the dependency graph for the configured storage
// backend. The returned close function releases broker and store resources.
func NewCompositionRoot(ctx context.Context, config Config, logger *slog.Logger) (*CompositionRoot, func(), error) {
	productCatalog, err := catalog.NewCatalog(catalog.DefaultProducts())
	if err != nil {
		return nil, nil, err
	}

	table, err := pricing.NewTable()
	if err != nil {
		return nil, nil, err
	}

	checkout, err := services.NewCheckoutService(table)
	if err != nil {
		return nil, nil, err
	}

	root := &CompositionRoot{
		catalog:  productCatalog,
		pricing:  table,
		checkout: checkout,
		closer:   func() {},
	}

	switch config.StorageBackend {
	case BackendPostgres:
		gormDB, openErr := gorm.Open(gorm_postgres.Open(config.PostgresDSN()), &gorm.Config{})
		if openErr != nil {
			return nil, nil, openErr
		}

		if migrateErr := gormDB.AutoMigrate(&pg_orderrepo.OrderDTO{}, &pg_sequencerepo.SequenceDTO{}); migrateErr != nil {
			return nil, nil, migrateErr
		}

		uowFactory := postgres.NewGormUnitOfWorkFactory(gormDB)
		root.uowFactory = uowFactory
		root.orderRepo = uowFactory.Create().OrderRepository()
		root.sequence = pg_sequencerepo.NewGormSequenceRepository(gormDB)

	case BackendMongo:
		client, connectErr := mongodb.Connect(ctx, config.MongoURI)
		if connectErr != nil {
			return nil, nil, connectErr
		}

		db := client.Database(config.MongoDB)
		orderRepo, repoErr := mongo_orderrepo.NewMongoOrderRepository(ctx, db.Collection(config.MongoOrdersCollection))
		if repoErr != nil {
			_ = client.Disconnect(ctx)
			return nil, nil, repoErr
		}

		root.uowFactory = mongodb.NewMongoUnitOfWorkFactory(orderRepo)
		root.orderRepo = orderRepo
		root.sequence = mongo_sequencerepo.NewMongoSequenceRepository(db.Collection(config.MongoCountersCollection))
		root.closer = func() { _ = client.Disconnect(context.Background()) }

	case BackendLocal:
		store, storeErr := localstore.NewStore(config.LocalStorePath)
		if storeErr != nil {
			return nil, nil, storeErr
		}

		root.uowFactory = localstore.NewLocalUnitOfWorkFactory(store)
		root.orderRepo = store
		root.sequence = store

	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", config.StorageBackend)
	}

	root.publisher = commands.NopEventPublisher{}
	if config.AmqpURL != "" {
		publisher, closePublisher, amqpErr := storefront_amqp.NewPublisher(config.AmqpURL, config.AmqpExchange, logger)
		if amqpErr != nil {
			root.closer()
			return nil, nil, amqpErr
		}

		root.publisher = publisher
		storeCloser := root.closer
		root.closer = func() {
			closePublisher()
			storeCloser()
		}
	}

	return root, root.closer, nil
}

// Catalog returns the product reference data.
func (c *CompositionRoot) Catalog() *catalog.Catalog {
	return c.catalog
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.orderUoWFactory(), c.sequence, c.checkout, c.publisher)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateListProductsQueryHandler() queries.ListProductsQueryHandler {
	return queries.NewListProductsQueryHandler(c.catalog)
}

func (c *CompositionRoot) CreateListRegionsQueryHandler() queries.ListRegionsQueryHandler {
	return queries.NewListRegionsQueryHandler(c.pricing)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.orderRepo)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orderRepo)
}

func (c *CompositionRoot) CreateGetOrderStatsQueryHandler() queries.GetOrderStatsQueryHandler {
	return queries.NewGetOrderStatsQueryHandler(c.orderRepo)
}

func (c *CompositionRoot) CreateExportOrdersQueryHandler() queries.ExportOrdersQueryHandler {
	return queries.NewExportOrdersQueryHandler(c.orderRepo)
}

// FuncOrderUoWFactory adapts a closure to the command layer's factory contract.
type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
