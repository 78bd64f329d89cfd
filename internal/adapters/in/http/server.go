package http

import (
	"context"
	"log/slog"
	"net/http"

	"sellerdesk/internal/core/application/usecases/commands"
	"sellerdesk/internal/core/application/usecases/queries"
	"sellerdesk/internal/core/application/workflow"
	"sellerdesk/internal/core/domain/model/product"
	"sellerdesk/internal/core/domain/model/session"
	"sellerdesk/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// Use case contracts consumed by the HTTP adapter.
type (
	SignInHandler interface {
		Handle(ctx context.Context, cmd commands.SignInCommand) (session.Session, error)
	}

	SignOutHandler interface {
		Handle(ctx context.Context, cmd commands.SignOutCommand) error
	}

	RegisterOperatorHandler interface {
		Handle(ctx context.Context, cmd commands.RegisterOperatorCommand) (session.Operator, error)
	}

	AdvanceOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.AdvanceOrderStatusCommand) (workflow.Advancement, error)
	}

	ProductCommandHandler interface {
		HandleCreate(ctx context.Context, cmd commands.CreateProductCommand) (product.Product, error)
		HandleUpdate(ctx context.Context, cmd commands.UpdateProductCommand) (product.Product, error)
		HandleDelete(ctx context.Context, cmd commands.DeleteProductCommand) error
	}

	GetOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetOrdersQuery) ([]queries.OrderView, error)
	}

	GetInFlightHandler interface {
		Handle(ctx context.Context, query queries.GetInFlightQuery) (queries.GetInFlightQueryResponse, error)
	}

	GetOrderTransitionsHandler interface {
		Handle(ctx context.Context, query queries.GetOrderTransitionsQuery) ([]queries.GetOrderTransitionsQueryResponse, error)
	}

	ProductQueryHandler interface {
		HandleList(ctx context.Context, query queries.GetProductsQuery) ([]queries.ProductView, error)
		HandleGet(ctx context.Context, query queries.GetProductQuery) (queries.ProductView, error)
		View(p product.Product) queries.ProductView
	}

	GetDashboardSummaryHandler interface {
		Handle(ctx context.Context, query queries.GetDashboardSummaryQuery) (queries.GetDashboardSummaryQueryResponse, error)
	}

	GetSettingsHandler interface {
		Handle(ctx context.Context, query queries.GetSettingsQuery) (queries.Settings, error)
	}
)

// Handlers groups the use cases behind the console API.
type Handlers struct {
	// Command handlers
	SignIn             SignInHandler
	SignOut            SignOutHandler
	RegisterOperator   RegisterOperatorHandler
	AdvanceOrderStatus AdvanceOrderStatusHandler
	Products           ProductCommandHandler

	// Query handlers
	GetOrders           GetOrdersHandler
	GetInFlight         GetInFlightHandler
	GetOrderTransitions GetOrderTransitionsHandler
	ProductQueries      ProductQueryHandler
	GetDashboard        GetDashboardSummaryHandler
	GetSettings         GetSettingsHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http_server"),
	}
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}
