package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpadapter "sellerdesk/internal/adapters/in/http"
	"sellerdesk/internal/adapters/out/restapi"
	"sellerdesk/internal/core/application/usecases/commands"
	"sellerdesk/internal/core/application/usecases/queries"
	"sellerdesk/internal/core/application/workflow"
	"sellerdesk/internal/core/domain/model/kernel"
	"sellerdesk/internal/core/domain/model/order"
	"sellerdesk/internal/core/domain/model/product"
	"sellerdesk/internal/core/domain/model/session"
	"sellerdesk/internal/generated/servers"
	"sellerdesk/internal/pkg/bearer"
	"sellerdesk/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	e         *echo.Echo
	sessionID kernel.UUID
	sessions  *MockSessionResolver

	signIn      *MockSignInHandler
	signOut     *MockSignOutHandler
	register    *MockRegisterOperatorHandler
	advance     *MockAdvanceOrderStatusHandler
	products    *MockProductCommandHandler
	orders      *MockGetOrdersHandler
	inFlight    *MockGetInFlightHandler
	transitions *MockGetOrderTransitionsHandler
	catalog     *MockProductQueryHandler
	dashboard   *MockGetDashboardSummaryHandler
	settings    *MockGetSettingsHandler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		sessionID:   kernel.NewUUID(),
		sessions:    &MockSessionResolver{},
		signIn:      &MockSignInHandler{},
		signOut:     &MockSignOutHandler{},
		register:    &MockRegisterOperatorHandler{},
		advance:     &MockAdvanceOrderStatusHandler{},
		products:    &MockProductCommandHandler{},
		orders:      &MockGetOrdersHandler{},
		inFlight:    &MockGetInFlightHandler{},
		transitions: &MockGetOrderTransitionsHandler{},
		catalog:     &MockProductQueryHandler{},
		dashboard:   &MockGetDashboardSummaryHandler{},
		settings:    &MockGetSettingsHandler{},
	}

	live := queries.GetSessionQueryResponse{
		SessionID:     f.sessionID,
		UpstreamToken: "upstream-jwt",
		Operator:      session.Operator{ID: "u1", Name: "Ada", Email: "ada@shop.test", Role: session.AdminRole},
		ExpiresAt:     time.Now().Add(time.Hour),
	}
	f.sessions.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetSessionQuery) bool {
		return q.SessionID().IsEqual(f.sessionID)
	})).Return(live, nil).Maybe()
	f.sessions.On("Handle", mock.Anything, mock.Anything).
		Return(queries.GetSessionQueryResponse{}, errs.NewObjectNotFoundError("session", "unknown")).Maybe()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	server := httpadapter.NewServer(httpadapter.Handlers{
		SignIn:              f.signIn,
		SignOut:             f.signOut,
		RegisterOperator:    f.register,
		AdvanceOrderStatus:  f.advance,
		Products:            f.products,
		GetOrders:           f.orders,
		GetInFlight:         f.inFlight,
		GetOrderTransitions: f.transitions,
		ProductQueries:      f.catalog,
		GetDashboard:        f.dashboard,
		GetSettings:         f.settings,
	}, logger)

	e, err := httpadapter.NewRouter(server, f.sessions, logger)
	require.NoError(t, err)
	f.e = e
	return f
}

func (f *fixture) do(method, path, token, contentType string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

func (f *fixture) authed(method, path string) *httptest.ResponseRecorder {
	return f.do(method, path, f.sessionID.String(), "", nil)
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) servers.Error {
	t.Helper()
	var body servers.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func carriesUpstreamToken(ctx context.Context) bool {
	token, ok := bearer.TokenFromContext(ctx)
	return ok && token == "upstream-jwt" && bearer.ActorFromContext(ctx) == "u1"
}

func sampleOrder(t *testing.T, status order.Status) order.Order {
	t.Helper()
	total, err := kernel.MoneyFromFloat(149.99)
	require.NoError(t, err)
	o, err := order.RestoreOrder("65f1c0a2b3d4e5f6a7b8c9d0",
		order.ShippingSnapshot{FullName: "Ada Lovelace", City: "London", Country: "UK"},
		total, time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC), status, order.Flags{Paid: true})
	require.NoError(t, err)
	return o
}

func TestHealth(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/health", "", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestAuthentication(t *testing.T) {
	t.Run("missing_token", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodGet, "/api/v1/orders", "", "", nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, http.StatusUnauthorized, decodeError(t, rec).Code)
		f.orders.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("malformed_token", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodGet, "/api/v1/orders", "not-a-uuid", "", nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unknown_session", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodGet, "/api/v1/orders", kernel.NewUUID().String(), "", nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, decodeError(t, rec).Message, "session is invalid or expired")
	})

	t.Run("unknown_route", func(t *testing.T) {
		f := newFixture(t)

		rec := f.authed(http.MethodGet, "/api/v1/nothing")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestGetOrders(t *testing.T) {
	t.Run("serves_cache_with_upstream_token", func(t *testing.T) {
		f := newFixture(t)
		created := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
		f.orders.On("Handle", mock.MatchedBy(carriesUpstreamToken), mock.MatchedBy(func(q queries.GetOrdersQuery) bool {
			return !q.Refresh()
		})).Return([]queries.OrderView{{
			ID:           "65f1c0a2b3d4e5f6a7b8c9d0",
			Reference:    "#B8C9D0",
			CustomerName: "Ada Lovelace",
			City:         "London",
			Total:        149.99,
			CreatedAt:    created,
			Status:       "Shipped",
			RawStatus:    order.Shipped,
			IsPaid:       true,
			CanAdvance:   true,
			InFlight:     true,
		}}, nil).Once()

		rec := f.authed(http.MethodGet, "/api/v1/orders")

		require.Equal(t, http.StatusOK, rec.Code)
		var body []servers.Order
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(t, body, 1)
		assert.Equal(t, "#B8C9D0", body[0].Reference)
		assert.Equal(t, servers.Shipped, body[0].Status)
		assert.True(t, body[0].InFlight)
		assert.Nil(t, body[0].Country)
		assert.True(t, created.Equal(body[0].CreatedAt))
		f.orders.AssertExpectations(t)
	})

	t.Run("refresh_flag", func(t *testing.T) {
		f := newFixture(t)
		f.orders.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetOrdersQuery) bool {
			return q.Refresh()
		})).Return([]queries.OrderView{}, nil).Once()

		rec := f.authed(http.MethodGet, "/api/v1/orders?refresh=true")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
		f.orders.AssertExpectations(t)
	})

	t.Run("invalid_refresh_flag", func(t *testing.T) {
		f := newFixture(t)

		rec := f.authed(http.MethodGet, "/api/v1/orders?refresh=maybe")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("upstream_failure_is_bad_gateway", func(t *testing.T) {
		f := newFixture(t)
		f.orders.On("Handle", mock.Anything, mock.Anything).
			Return(nil, &restapi.APIError{StatusCode: http.StatusInternalServerError, Message: "Failed to fetch orders"}).Once()

		rec := f.authed(http.MethodGet, "/api/v1/orders")

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Equal(t, "Failed to fetch orders", decodeError(t, rec).Message)
	})
}

func TestGetInFlightOrders(t *testing.T) {
	f := newFixture(t)
	f.inFlight.On("Handle", mock.Anything, mock.Anything).Return(queries.GetInFlightQueryResponse{
		OrderIDs:  []string{"a", "b"},
		LastError: "Failed to update order",
		Loaded:    true,
	}, nil).Once()

	rec := f.authed(http.MethodGet, "/api/v1/orders/in-flight")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"orderIds": ["a", "b"], "lastError": "Failed to update order", "loaded": true}`, rec.Body.String())
}

func TestAdvanceOrderStatus(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newFixture(t)
		advanced := sampleOrder(t, order.Processing)
		f.advance.On("Handle", mock.MatchedBy(carriesUpstreamToken), mock.MatchedBy(func(cmd commands.AdvanceOrderStatusCommand) bool {
			return cmd.OrderID() == "65f1c0a2b3d4e5f6a7b8c9d0" && cmd.ActorID() == "u1"
		})).Return(workflow.Advancement{From: order.Pending, To: order.Processing, Paid: true, Order: advanced}, nil).Once()

		rec := f.authed(http.MethodPost, "/api/v1/orders/65f1c0a2b3d4e5f6a7b8c9d0/advance")

		require.Equal(t, http.StatusOK, rec.Code)
		var body servers.Advancement
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Pending", body.From)
		assert.Equal(t, "Processing", body.To)
		assert.True(t, body.IsPaid)
		assert.Equal(t, servers.Processing, body.Order.Status)
		assert.True(t, body.Order.CanAdvance)
		f.advance.AssertExpectations(t)
	})

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "delivered_is_final", err: order.ErrStatusIsFinal, status: http.StatusConflict},
		{name: "same_order_in_flight", err: workflow.ErrTransitionInFlight, status: http.StatusConflict},
		{
			name:   "not_cached",
			err:    fmt.Errorf("%w: %w", workflow.ErrOrderNotCached, errs.NewObjectNotFoundError("orderId", "x")),
			status: http.StatusNotFound,
		},
		{
			name:   "unrecognized_status_rejected",
			err:    errs.NewValueIsInvalidErrorWithCause("status is invalid", errors.New("OnHold")),
			status: http.StatusBadRequest,
		},
		{
			name:   "store_rejected",
			err:    &restapi.APIError{StatusCode: http.StatusUnprocessableEntity, Message: "Invalid status"},
			status: http.StatusBadGateway,
		},
		{name: "unexpected", err: errors.New("boom"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.advance.On("Handle", mock.Anything, mock.Anything).Return(workflow.Advancement{}, tt.err).Once()

			rec := f.authed(http.MethodPost, "/api/v1/orders/x/advance")

			assert.Equal(t, tt.status, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, tt.status, body.Code)
			if tt.status == http.StatusInternalServerError {
				assert.Equal(t, "Internal server error", body.Message)
			} else {
				assert.Equal(t, tt.err.Error(), body.Message)
			}
		})
	}
}

func TestGetOrderTransitions(t *testing.T) {
	f := newFixture(t)
	at := time.Date(2026, 5, 2, 9, 0, 0, 0, time.UTC)
	f.transitions.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetOrderTransitionsQuery) bool {
		return q.OrderID() == "o1"
	})).Return([]queries.GetOrderTransitionsQueryResponse{
		{ID: "t2", OrderID: "o1", From: "Processing", To: "Shipped", Paid: true, ActorID: "u1", OccurredAt: at},
		{ID: "t1", OrderID: "o1", From: "Pending", To: "Processing", Paid: true, OccurredAt: at.Add(-time.Hour)},
	}, nil).Once()

	rec := f.authed(http.MethodGet, "/api/v1/orders/o1/transitions")

	require.Equal(t, http.StatusOK, rec.Code)
	var body []servers.Transition
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 2)
	assert.Equal(t, "t2", body[0].Id)
	require.NotNil(t, body[0].ActorId)
	assert.Equal(t, "u1", *body[0].ActorId)
	assert.Nil(t, body[1].ActorId)
}

func TestSignIn(t *testing.T) {
	t.Run("opens_session", func(t *testing.T) {
		f := newFixture(t)
		operator := session.Operator{ID: "u1", Name: "Ada", Email: "ada@shop.test", Role: "admin"}
		opened, err := session.NewSession("upstream-jwt", operator, time.Now().UTC(), time.Hour)
		require.NoError(t, err)
		f.signIn.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.SignInCommand) bool {
			return cmd.Email() == "ada@shop.test" && cmd.Password() == "secret1"
		})).Return(opened, nil).Once()

		rec := f.do(http.MethodPost, "/api/v1/session", "", echo.MIMEApplicationJSON,
			strings.NewReader(`{"email": "ada@shop.test", "password": "secret1"}`))

		require.Equal(t, http.StatusCreated, rec.Code)
		var body servers.Session
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, opened.ID().String(), body.Token)
		assert.Equal(t, "admin", body.User.Role)
	})

	t.Run("missing_password_fails_validation", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/api/v1/session", "", echo.MIMEApplicationJSON,
			strings.NewReader(`{"email": "ada@shop.test"}`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		f.signIn.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("non_admin_is_forbidden", func(t *testing.T) {
		f := newFixture(t)
		f.signIn.On("Handle", mock.Anything, mock.Anything).Return(session.Session{}, session.ErrNotAdmin).Once()

		rec := f.do(http.MethodPost, "/api/v1/session", "", echo.MIMEApplicationJSON,
			strings.NewReader(`{"email": "user@shop.test", "password": "secret1"}`))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, session.ErrNotAdmin.Error(), decodeError(t, rec).Message)
	})

	t.Run("bad_credentials", func(t *testing.T) {
		f := newFixture(t)
		f.signIn.On("Handle", mock.Anything, mock.Anything).
			Return(session.Session{}, &restapi.APIError{StatusCode: http.StatusUnauthorized, Message: "Invalid email or password"}).Once()

		rec := f.do(http.MethodPost, "/api/v1/session", "", echo.MIMEApplicationJSON,
			strings.NewReader(`{"email": "ada@shop.test", "password": "wrong"}`))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Invalid email or password", decodeError(t, rec).Message)
	})
}

func TestSignOut(t *testing.T) {
	f := newFixture(t)
	f.signOut.On("Handle", mock.MatchedBy(carriesUpstreamToken), mock.MatchedBy(func(cmd commands.SignOutCommand) bool {
		return cmd.SessionID().IsEqual(f.sessionID)
	})).Return(nil).Once()

	rec := f.authed(http.MethodDelete, "/api/v1/session")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	f.signOut.AssertExpectations(t)
}

func TestRegisterUser(t *testing.T) {
	f := newFixture(t)
	f.register.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.RegisterOperatorCommand) bool {
		return cmd.Name() == "Grace" && cmd.Address().City == "Lagos"
	})).Return(session.Operator{ID: "u2", Name: "Grace", Email: "g@shop.test", Role: "user"}, nil).Once()

	rec := f.do(http.MethodPost, "/api/v1/users", "", echo.MIMEApplicationJSON, strings.NewReader(
		`{"name": "Grace", "email": "g@shop.test", "password": "secret1", "address": {"city": "Lagos"}}`))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id": "u2", "name": "Grace", "email": "g@shop.test", "role": "user"}`, rec.Body.String())
}

func productForm(t *testing.T, fields map[string]string, withImage bool) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if withImage {
		part, err := w.CreateFormFile("images", "front.png")
		require.NoError(t, err)
		_, err = part.Write([]byte("png-bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf, w.FormDataContentType()
}

func TestCreateProduct(t *testing.T) {
	t.Run("creates_from_multipart_form", func(t *testing.T) {
		f := newFixture(t)
		created, err := product.RestoreProduct("new1", product.Attributes{Name: "Rose Serum", Brand: "Bloom", Price: kernel.ZeroMoney()}, nil)
		require.NoError(t, err)

		f.products.On("HandleCreate", mock.MatchedBy(carriesUpstreamToken), mock.MatchedBy(func(cmd commands.CreateProductCommand) bool {
			attrs := cmd.Draft().Attributes()
			images := cmd.Draft().Images()
			return attrs.Name == "Rose Serum" &&
				attrs.Price.Cents() == 2550 &&
				attrs.DiscountPrice != nil && attrs.DiscountPrice.Cents() == 1999 &&
				attrs.Stock == 0 &&
				attrs.Active &&
				attrs.Category.ID == "6998b744c465cfbcbf767e4f" &&
				len(images) == 1 && string(images[0].Data) == "png-bytes"
		})).Return(created, nil).Once()
		f.catalog.On("View", created).Return(queries.ProductView{ID: "new1", Name: "Rose Serum", Brand: "Bloom", Category: "Cosmetics"}).Once()

		body, contentType := productForm(t, map[string]string{
			"name":          "Rose Serum",
			"brand":         "Bloom",
			"price":         "25.50",
			"discountPrice": "19.99",
			"category":      "6998b744c465cfbcbf767e4f",
		}, true)

		rec := f.do(http.MethodPost, "/api/v1/products", f.sessionID.String(), contentType, body)

		require.Equal(t, http.StatusCreated, rec.Code)
		var resp servers.Product
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "new1", resp.Id)
		assert.Equal(t, "Cosmetics", resp.Category)
		assert.Equal(t, []string{}, resp.Images)
		f.products.AssertExpectations(t)
	})

	t.Run("invalid_form_is_rejected", func(t *testing.T) {
		f := newFixture(t)
		body, contentType := productForm(t, map[string]string{
			"name":          "Rose Serum",
			"price":         "10",
			"discountPrice": "12",
			"stock":         "-1",
		}, false)

		rec := f.do(http.MethodPost, "/api/v1/products", f.sessionID.String(), contentType, body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		msg := decodeError(t, rec).Message
		assert.Contains(t, msg, "brand")
		assert.Contains(t, msg, "stock")
		assert.Contains(t, msg, "discountPrice")
		f.products.AssertNotCalled(t, "HandleCreate", mock.Anything, mock.Anything)
	})

	t.Run("non_numeric_price", func(t *testing.T) {
		f := newFixture(t)
		body, contentType := productForm(t, map[string]string{"name": "A", "brand": "B", "price": "ten"}, false)

		rec := f.do(http.MethodPost, "/api/v1/products", f.sessionID.String(), contentType, body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUpdateAndDeleteProduct(t *testing.T) {
	t.Run("update", func(t *testing.T) {
		f := newFixture(t)
		updated, err := product.RestoreProduct("p1", product.Attributes{Name: "Linen Shirt", Brand: "Weave", Price: kernel.ZeroMoney()}, nil)
		require.NoError(t, err)
		f.products.On("HandleUpdate", mock.Anything, mock.MatchedBy(func(cmd commands.UpdateProductCommand) bool {
			return cmd.ProductID() == "p1" && !cmd.Draft().Attributes().Active && cmd.Draft().Attributes().Stock == 4
		})).Return(updated, nil).Once()
		f.catalog.On("View", updated).Return(queries.ProductView{ID: "p1", Name: "Linen Shirt", Brand: "Weave"}).Once()

		body, contentType := productForm(t, map[string]string{
			"name": "Linen Shirt", "brand": "Weave", "price": "40", "stock": "4", "isActive": "false",
		}, false)
		rec := f.do(http.MethodPut, "/api/v1/products/p1", f.sessionID.String(), contentType, body)

		assert.Equal(t, http.StatusOK, rec.Code)
		f.products.AssertExpectations(t)
	})

	t.Run("delete", func(t *testing.T) {
		f := newFixture(t)
		f.products.On("HandleDelete", mock.Anything, mock.MatchedBy(func(cmd commands.DeleteProductCommand) bool {
			return cmd.ProductID() == "p1"
		})).Return(nil).Once()

		rec := f.authed(http.MethodDelete, "/api/v1/products/p1")

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("get_not_found_upstream", func(t *testing.T) {
		f := newFixture(t)
		f.catalog.On("HandleGet", mock.Anything, mock.Anything).
			Return(queries.ProductView{}, &restapi.APIError{StatusCode: http.StatusNotFound, Message: "Product not found"}).Once()

		rec := f.authed(http.MethodGet, "/api/v1/products/missing")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Product not found", decodeError(t, rec).Message)
	})
}

func TestGetProducts(t *testing.T) {
	f := newFixture(t)
	discount := 19.99
	f.catalog.On("HandleList", mock.Anything, mock.Anything).Return([]queries.ProductView{
		{ID: "p1", Name: "Rose Serum", Brand: "Bloom", Price: 25.5, DiscountPrice: &discount, Category: "Cosmetics",
			Images: []string{"https://cdn.example.com/p1.jpg"}, Stock: 3, IsActive: true, LowStock: true},
	}, nil).Once()

	rec := f.authed(http.MethodGet, "/api/v1/products")

	require.Equal(t, http.StatusOK, rec.Code)
	var body []servers.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.True(t, body[0].LowStock)
	require.NotNil(t, body[0].DiscountPrice)
	assert.InDelta(t, 19.99, *body[0].DiscountPrice, 0.001)
}

func TestGetDashboard(t *testing.T) {
	f := newFixture(t)
	f.dashboard.On("Handle", mock.Anything, mock.Anything).Return(queries.GetDashboardSummaryQueryResponse{
		TotalRevenue:    300,
		OrderCount:      4,
		ProductCount:    2,
		UniqueCustomers: 3,
		StatusCounts:    map[string]int{"Pending": 2, "Delivered": 2},
	}, nil).Once()

	rec := f.authed(http.MethodGet, "/api/v1/dashboard")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"totalRevenue": 300,
		"orderCount": 4,
		"productCount": 2,
		"uniqueCustomers": 3,
		"statusCounts": {"Pending": 2, "Delivered": 2},
		"recentOrders": [],
		"lowStock": []
	}`, rec.Body.String())
}

func TestGetSettings(t *testing.T) {
	f := newFixture(t)
	f.settings.On("Handle", mock.Anything, mock.Anything).Return(queries.Settings{
		UpstreamAPIURL:           "http://localhost:3001",
		UnrecognizedStatusPolicy: "coerce",
		PaidFlagPolicy:           "every-transition",
		RecentOrdersLimit:        10,
		LowStockThreshold:        5,
		LowStockLimit:            5,
		SessionTTL:               12 * time.Hour,
		Categories:               map[string]string{"6998b744c465cfbcbf767e4f": "Cosmetics"},
		Theme:                    "light",
		NotificationsEnabled:     true,
	}, nil).Once()

	rec := f.authed(http.MethodGet, "/api/v1/settings")

	require.Equal(t, http.StatusOK, rec.Code)
	var body servers.Settings
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 43200, body.SessionTtlSeconds)
	assert.Equal(t, "coerce", body.UnknownStatusPolicy)
	assert.Equal(t, "Cosmetics", body.Categories["6998b744c465cfbcbf767e4f"])
}
