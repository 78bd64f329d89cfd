package http

import (
	"net/http"

	"sellerdesk/internal/core/application/usecases/commands"
	"sellerdesk/internal/core/application/usecases/queries"
	"sellerdesk/internal/generated/servers"
	"sellerdesk/internal/pkg/bearer"

	"github.com/labstack/echo/v4"
)

// GetOrders handles GET /api/v1/orders - serves the cached orders, refetching
// when refresh is set or nothing was loaded yet.
func (s *Server) GetOrders(ctx echo.Context, params servers.GetOrdersParams) error {
	refresh := params.Refresh != nil && *params.Refresh

	orders, err := s.handlers.GetOrders.Handle(ctx.Request().Context(), queries.NewGetOrdersQuery(refresh))
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrders(orders))
}

// GetInFlightOrders handles GET /api/v1/orders/in-flight.
func (s *Server) GetInFlightOrders(ctx echo.Context) error {
	resp, err := s.handlers.GetInFlight.Handle(ctx.Request().Context(), queries.NewGetInFlightQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	ids := resp.OrderIDs
	if ids == nil {
		ids = []string{}
	}
	return ctx.JSON(http.StatusOK, servers.InFlight{
		OrderIds:  ids,
		LastError: resp.LastError,
		Loaded:    resp.Loaded,
	})
}

// AdvanceOrderStatus handles POST /api/v1/orders/{orderId}/advance.
func (s *Server) AdvanceOrderStatus(ctx echo.Context, orderID servers.OrderId) error {
	reqCtx := ctx.Request().Context()

	cmd, err := commands.NewAdvanceOrderStatusCommand(orderID, bearer.ActorFromContext(reqCtx))
	if err != nil {
		return s.fail(ctx, err)
	}

	adv, err := s.handlers.AdvanceOrderStatus.Handle(reqCtx, cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Advancement{
		From:   adv.From.Display().String(),
		To:     adv.To.String(),
		IsPaid: adv.Paid,
		Order:  toOrder(queries.NewOrderView(adv.Order, false)),
	})
}

// GetOrderTransitions handles GET /api/v1/orders/{orderId}/transitions.
func (s *Server) GetOrderTransitions(ctx echo.Context, orderID servers.OrderId) error {
	query, err := queries.NewGetOrderTransitionsQuery(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	transitions, err := s.handlers.GetOrderTransitions.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Transition, len(transitions))
	for i, t := range transitions {
		response[i] = servers.Transition{
			Id:         t.ID,
			OrderId:    t.OrderID,
			From:       t.From,
			To:         t.To,
			Paid:       t.Paid,
			ActorId:    optional(t.ActorID),
			OccurredAt: t.OccurredAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func toOrders(views []queries.OrderView) []servers.Order {
	response := make([]servers.Order, len(views))
	for i, v := range views {
		response[i] = toOrder(v)
	}
	return response
}

func toOrder(v queries.OrderView) servers.Order {
	return servers.Order{
		Id:           v.ID,
		Reference:    v.Reference,
		CustomerName: v.CustomerName,
		City:         optional(v.City),
		Country:      optional(v.Country),
		Total:        float32(v.Total),
		CreatedAt:    v.CreatedAt,
		Status:       servers.OrderStatus(v.Status),
		IsPaid:       v.IsPaid,
		IsDelivered:  v.IsDelivered,
		CanAdvance:   v.CanAdvance,
		InFlight:     v.InFlight,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
