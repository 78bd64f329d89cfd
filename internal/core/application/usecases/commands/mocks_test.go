package commands_test

import (
	"context"
	"time"

	"sellerdesk/internal/core/application/usecases/commands"
	"sellerdesk/internal/core/application/workflow"
	"sellerdesk/internal/core/domain/model/kernel"
	"sellerdesk/internal/core/domain/model/order"
	"sellerdesk/internal/core/domain/model/product"
	"sellerdesk/internal/core/domain/model/session"
	"sellerdesk/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockSessionRepository struct{ mock.Mock }

func (m *MockSessionRepository) Add(ctx context.Context, s session.Session) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockSessionRepository) Get(ctx context.Context, id kernel.UUID) (session.Session, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(session.Session)
	return s, args.Error(1)
}

func (m *MockSessionRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockSessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

type MockTransitionRepository struct{ mock.Mock }

func (m *MockTransitionRepository) Add(ctx context.Context, t order.Transition) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockTransitionRepository) ListByOrder(ctx context.Context, orderID string) ([]order.Transition, error) {
	args := m.Called(ctx, orderID)
	list, _ := args.Get(0).([]order.Transition)
	return list, args.Error(1)
}

type MockTxManager struct{ mock.Mock }

func (m *MockTxManager) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockTxManager) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockTxManager) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

type MockSessionUoW struct{ MockTxManager }

func (m *MockSessionUoW) SessionRepository() ports.SessionRepository {
	return m.Called().Get(0).(ports.SessionRepository)
}

type MockSessionUoWFactory struct{ mock.Mock }

func (m *MockSessionUoWFactory) Create() commands.SessionUoW {
	return m.Called().Get(0).(commands.SessionUoW)
}

type MockJournalUoW struct{ MockTxManager }

func (m *MockJournalUoW) TransitionRepository() ports.TransitionRepository {
	return m.Called().Get(0).(ports.TransitionRepository)
}

type MockJournalUoWFactory struct{ mock.Mock }

func (m *MockJournalUoWFactory) Create() commands.JournalUoW {
	return m.Called().Get(0).(commands.JournalUoW)
}

type MockAuthenticator struct{ mock.Mock }

func (m *MockAuthenticator) Login(ctx context.Context, c ports.Credentials) (string, session.Operator, error) {
	args := m.Called(ctx, c)
	op, _ := args.Get(1).(session.Operator)
	return args.String(0), op, args.Error(2)
}

func (m *MockAuthenticator) Register(ctx context.Context, r ports.Registration) (session.Operator, error) {
	args := m.Called(ctx, r)
	op, _ := args.Get(0).(session.Operator)
	return op, args.Error(1)
}

func (m *MockAuthenticator) Logout(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type MockStatusAdvancer struct{ mock.Mock }

func (m *MockStatusAdvancer) AdvanceStatus(ctx context.Context, orderID string) (workflow.Advancement, error) {
	args := m.Called(ctx, orderID)
	adv, _ := args.Get(0).(workflow.Advancement)
	return adv, args.Error(1)
}

type MockProductCatalog struct{ mock.Mock }

func (m *MockProductCatalog) List(ctx context.Context) ([]product.Product, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]product.Product)
	return list, args.Error(1)
}

func (m *MockProductCatalog) Get(ctx context.Context, id string) (product.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(product.Product)
	return p, args.Error(1)
}

func (m *MockProductCatalog) Create(ctx context.Context, d product.Draft) (product.Product, error) {
	args := m.Called(ctx, d)
	p, _ := args.Get(0).(product.Product)
	return p, args.Error(1)
}

func (m *MockProductCatalog) Update(ctx context.Context, id string, d product.Draft) (product.Product, error) {
	args := m.Called(ctx, id, d)
	p, _ := args.Get(0).(product.Product)
	return p, args.Error(1)
}

func (m *MockProductCatalog) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
