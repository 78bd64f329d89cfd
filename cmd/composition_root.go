package cmd

import (
	"log/slog"

	httpadapter "sellerdesk/internal/adapters/in/http"
	"sellerdesk/internal/adapters/out/postgres"
	"sellerdesk/internal/adapters/out/restapi"
	"sellerdesk/internal/core/application/usecases/commands"
	"sellerdesk/internal/core/application/usecases/queries"
	"sellerdesk/internal/core/application/workflow"
	"sellerdesk/internal/core/domain/model/product"
	"sellerdesk/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger

	orders     *restapi.OrderClient
	products   *restapi.ProductClient
	users      *restapi.UserClient
	engine     *workflow.Engine
	categories product.CategoryDirectory
}

// NewCompositionRoot builds the remote API clients and the order workflow
// engine. The engine holds the order cache and lives as long as the process.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	client, err := restapi.NewClient(config.UpstreamAPIURL, restapi.NewHTTPClient(config.UpstreamTimeout))
	if err != nil {
		return CompositionRoot{}, err
	}

	orders := restapi.NewOrderClient(client, logger)
	engine, err := workflow.NewEngine(orders,
		workflow.WithUnrecognizedStatusPolicy(config.UnknownStatusPolicy),
		workflow.WithPaidFlagPolicy(config.PaidFlagPolicy),
		workflow.WithLogger(logger),
	)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
		orders:     orders,
		products:   restapi.NewProductClient(client),
		users:      restapi.NewUserClient(client),
		engine:     engine,
		categories: product.DefaultCategoryDirectory(),
	}, nil
}

func (c *CompositionRoot) sessionUoWFactory() commands.SessionUoWFactory {
	return FuncSessionUoWFactory(func() commands.SessionUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) journalUoWFactory() commands.JournalUoWFactory {
	return FuncJournalUoWFactory(func() commands.JournalUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateSignInCommandHandler() commands.SignInCommandHandler {
	return commands.NewSignInCommandHandler(c.users, c.sessionUoWFactory(), c.config.SessionTTL, c.logger)
}

func (c *CompositionRoot) CreateSignOutCommandHandler() commands.SignOutCommandHandler {
	return commands.NewSignOutCommandHandler(c.users, c.sessionUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateRegisterOperatorCommandHandler() commands.RegisterOperatorCommandHandler {
	return commands.NewRegisterOperatorCommandHandler(c.users)
}

func (c *CompositionRoot) CreatePurgeExpiredSessionsCommandHandler() commands.PurgeExpiredSessionsCommandHandler {
	return commands.NewPurgeExpiredSessionsCommandHandler(c.sessionUoWFactory())
}

func (c *CompositionRoot) CreateAdvanceOrderStatusCommandHandler() commands.AdvanceOrderStatusCommandHandler {
	return commands.NewAdvanceOrderStatusCommandHandler(c.engine, c.journalUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateProductCommandHandler() commands.ProductCommandHandler {
	return commands.NewProductCommandHandler(c.products, c.logger)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.engine)
}

func (c *CompositionRoot) CreateGetInFlightQueryHandler() queries.GetInFlightQueryHandler {
	return queries.NewGetInFlightQueryHandler(c.engine)
}

func (c *CompositionRoot) CreateGetOrderTransitionsQueryHandler() queries.GetOrderTransitionsQueryHandler {
	return queries.NewGetOrderTransitionsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSessionQueryHandler() queries.GetSessionQueryHandler {
	return queries.NewGetSessionQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateProductQueryHandler() queries.ProductQueryHandler {
	return queries.NewProductQueryHandler(c.products, c.categories, c.config.LowStockThreshold)
}

func (c *CompositionRoot) CreateGetDashboardSummaryQueryHandler() queries.GetDashboardSummaryQueryHandler {
	return queries.NewGetDashboardSummaryQueryHandler(
		c.engine,
		c.products,
		c.categories,
		services.NewOrderStatistics(c.config.RecentOrdersLimit),
		services.NewStockMonitor(c.config.LowStockThreshold, c.config.LowStockLimit),
	)
}

func (c *CompositionRoot) CreateGetSettingsQueryHandler() queries.GetSettingsQueryHandler {
	return queries.NewGetSettingsQueryHandler(queries.Settings{
		UpstreamAPIURL:           c.config.UpstreamAPIURL,
		UnrecognizedStatusPolicy: c.config.UnknownStatusPolicy.String(),
		PaidFlagPolicy:           c.config.PaidFlagPolicy.String(),
		RecentOrdersLimit:        c.config.RecentOrdersLimit,
		LowStockThreshold:        c.config.LowStockThreshold,
		LowStockLimit:            c.config.LowStockLimit,
		SessionTTL:               c.config.SessionTTL,
		Categories:               c.categories.Known(),
		Theme:                    "light",
		NotificationsEnabled:     true,
	})
}

// CreateHTTPHandlers wires every use case behind the console HTTP API.
func (c *CompositionRoot) CreateHTTPHandlers() httpadapter.Handlers {
	return httpadapter.Handlers{
		SignIn:              c.CreateSignInCommandHandler(),
		SignOut:             c.CreateSignOutCommandHandler(),
		RegisterOperator:    c.CreateRegisterOperatorCommandHandler(),
		AdvanceOrderStatus:  c.CreateAdvanceOrderStatusCommandHandler(),
		Products:            c.CreateProductCommandHandler(),
		GetOrders:           c.CreateGetOrdersQueryHandler(),
		GetInFlight:         c.CreateGetInFlightQueryHandler(),
		GetOrderTransitions: c.CreateGetOrderTransitionsQueryHandler(),
		ProductQueries:      c.CreateProductQueryHandler(),
		GetDashboard:        c.CreateGetDashboardSummaryQueryHandler(),
		GetSettings:         c.CreateGetSettingsQueryHandler(),
	}
}

type FuncSessionUoWFactory func() commands.SessionUoW

func (f FuncSessionUoWFactory) Create() commands.SessionUoW {
	return f()
}

type FuncJournalUoWFactory func() commands.JournalUoW

func (f FuncJournalUoWFactory) Create() commands.JournalUoW {
	return f()
}
