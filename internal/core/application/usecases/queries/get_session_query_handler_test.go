package queries_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "sellerdesk/internal/adapters/out/postgres"
	"sellerdesk/internal/adapters/out/postgres/sessionrepo"
	"sellerdesk/internal/core/application/usecases/queries"
	"sellerdesk/internal/core/domain/model/kernel"
	"sellerdesk/internal/core/domain/model/session"
	"sellerdesk/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

type GetSessionQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetSessionQueryHandler
	repo      *sessionrepo.GormSessionRepository
}

func (suite *GetSessionQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := postgres_adapter.Open(dsn)
	suite.Require().NoError(err)
	suite.db = db
	suite.Require().NoError(postgres_adapter.Migrate(db))

	suite.handler = queries.NewGetSessionQueryHandler(db)
	suite.repo = sessionrepo.NewGormSessionRepository(db, noopTracker{})
}

func (suite *GetSessionQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE sessions").Error)
}

func (suite *GetSessionQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetSessionQueryHandlerTestSuite) addSession(createdAt time.Time, ttl time.Duration) session.Session {
	operator := session.Operator{ID: "u1", Name: "Ada", Email: "ada@shop.test", Role: session.AdminRole}
	s, err := session.NewSession("upstream-jwt", operator, createdAt, ttl)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.Add(context.Background(), s))
	return s
}

func (suite *GetSessionQueryHandlerTestSuite) TestHandle_LiveSession() {
	s := suite.addSession(time.Now().UTC(), time.Hour)

	query, err := queries.NewGetSessionQuery(s.ID())
	suite.Require().NoError(err)
	resp, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.True(resp.SessionID.IsEqual(s.ID()))
	suite.Equal("upstream-jwt", resp.UpstreamToken)
	suite.Equal(s.Operator(), resp.Operator)
	suite.WithinDuration(s.ExpiresAt(), resp.ExpiresAt, time.Millisecond)
}

func (suite *GetSessionQueryHandlerTestSuite) TestHandle_ExpiredSession() {
	s := suite.addSession(time.Now().UTC().Add(-2*time.Hour), time.Hour)

	query, err := queries.NewGetSessionQuery(s.ID())
	suite.Require().NoError(err)
	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, session.ErrSessionExpired)
	suite.True(queries.IsSessionUnavailable(err))
}

func (suite *GetSessionQueryHandlerTestSuite) TestHandle_UnknownSession() {
	query, err := queries.NewGetSessionQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.True(queries.IsSessionUnavailable(err))
}

func (suite *GetSessionQueryHandlerTestSuite) TestNewGetSessionQuery_RejectsZeroID() {
	_, err := queries.NewGetSessionQuery(kernel.UUID{})

	suite.Require().Error(err)
}

func TestGetSessionQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetSessionQueryHandlerTestSuite))
}
