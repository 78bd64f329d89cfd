package http_test

import (
	"context"

	"sellerdesk/internal/core/application/usecases/commands"
	"sellerdesk/internal/core/application/usecases/queries"
	"sellerdesk/internal/core/application/workflow"
	"sellerdesk/internal/core/domain/model/product"
	"sellerdesk/internal/core/domain/model/session"

	"github.com/stretchr/testify/mock"
)

type MockSessionResolver struct{ mock.Mock }

func (m *MockSessionResolver) Handle(ctx context.Context, q queries.GetSessionQuery) (queries.GetSessionQueryResponse, error) {
	args := m.Called(ctx, q)
	resp, _ := args.Get(0).(queries.GetSessionQueryResponse)
	return resp, args.Error(1)
}

type MockSignInHandler struct{ mock.Mock }

func (m *MockSignInHandler) Handle(ctx context.Context, cmd commands.SignInCommand) (session.Session, error) {
	args := m.Called(ctx, cmd)
	s, _ := args.Get(0).(session.Session)
	return s, args.Error(1)
}

type MockSignOutHandler struct{ mock.Mock }

func (m *MockSignOutHandler) Handle(ctx context.Context, cmd commands.SignOutCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockRegisterOperatorHandler struct{ mock.Mock }

func (m *MockRegisterOperatorHandler) Handle(ctx context.Context, cmd commands.RegisterOperatorCommand) (session.Operator, error) {
	args := m.Called(ctx, cmd)
	op, _ := args.Get(0).(session.Operator)
	return op, args.Error(1)
}

type MockAdvanceOrderStatusHandler struct{ mock.Mock }

func (m *MockAdvanceOrderStatusHandler) Handle(ctx context.Context, cmd commands.AdvanceOrderStatusCommand) (workflow.Advancement, error) {
	args := m.Called(ctx, cmd)
	adv, _ := args.Get(0).(workflow.Advancement)
	return adv, args.Error(1)
}

type MockProductCommandHandler struct{ mock.Mock }

func (m *MockProductCommandHandler) HandleCreate(ctx context.Context, cmd commands.CreateProductCommand) (product.Product, error) {
	args := m.Called(ctx, cmd)
	p, _ := args.Get(0).(product.Product)
	return p, args.Error(1)
}

func (m *MockProductCommandHandler) HandleUpdate(ctx context.Context, cmd commands.UpdateProductCommand) (product.Product, error) {
	args := m.Called(ctx, cmd)
	p, _ := args.Get(0).(product.Product)
	return p, args.Error(1)
}

func (m *MockProductCommandHandler) HandleDelete(ctx context.Context, cmd commands.DeleteProductCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockGetOrdersHandler struct{ mock.Mock }

func (m *MockGetOrdersHandler) Handle(ctx context.Context, q queries.GetOrdersQuery) ([]queries.OrderView, error) {
	args := m.Called(ctx, q)
	views, _ := args.Get(0).([]queries.OrderView)
	return views, args.Error(1)
}

type MockGetInFlightHandler struct{ mock.Mock }

func (m *MockGetInFlightHandler) Handle(ctx context.Context, q queries.GetInFlightQuery) (queries.GetInFlightQueryResponse, error) {
	args := m.Called(ctx, q)
	resp, _ := args.Get(0).(queries.GetInFlightQueryResponse)
	return resp, args.Error(1)
}

type MockGetOrderTransitionsHandler struct{ mock.Mock }

func (m *MockGetOrderTransitionsHandler) Handle(
	ctx context.Context,
	q queries.GetOrderTransitionsQuery,
) ([]queries.GetOrderTransitionsQueryResponse, error) {
	args := m.Called(ctx, q)
	resp, _ := args.Get(0).([]queries.GetOrderTransitionsQueryResponse)
	return resp, args.Error(1)
}

type MockProductQueryHandler struct{ mock.Mock }

func (m *MockProductQueryHandler) HandleList(ctx context.Context, q queries.GetProductsQuery) ([]queries.ProductView, error) {
	args := m.Called(ctx, q)
	views, _ := args.Get(0).([]queries.ProductView)
	return views, args.Error(1)
}

func (m *MockProductQueryHandler) HandleGet(ctx context.Context, q queries.GetProductQuery) (queries.ProductView, error) {
	args := m.Called(ctx, q)
	view, _ := args.Get(0).(queries.ProductView)
	return view, args.Error(1)
}

func (m *MockProductQueryHandler) View(p product.Product) queries.ProductView {
	return m.Called(p).Get(0).(queries.ProductView)
}

type MockGetDashboardSummaryHandler struct{ mock.Mock }

func (m *MockGetDashboardSummaryHandler) Handle(
	ctx context.Context,
	q queries.GetDashboardSummaryQuery,
) (queries.GetDashboardSummaryQueryResponse, error) {
	args := m.Called(ctx, q)
	resp, _ := args.Get(0).(queries.GetDashboardSummaryQueryResponse)
	return resp, args.Error(1)
}

type MockGetSettingsHandler struct{ mock.Mock }

func (m *MockGetSettingsHandler) Handle(ctx context.Context, q queries.GetSettingsQuery) (queries.Settings, error) {
	args := m.Called(ctx, q)
	resp, _ := args.Get(0).(queries.Settings)
	return resp, args.Error(1)
}
