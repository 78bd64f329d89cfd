package restapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"sellerdesk/internal/core/domain/model/kernel"
	"sellerdesk/internal/core/domain/model/order"
)

const (
	fetchOrdersFailed = "Failed to fetch orders"
	updateOrderFailed = "Failed to update order"
)

// OrderClient implements ports.OrderStore over /api/orders.
type OrderClient struct {
	client *Client
	logger *slog.Logger
}

// NewOrderClient uses slog.Default when logger is nil.
func NewOrderClient(client *Client, logger *slog.Logger) *OrderClient {
	if logger == nil {
		logger = slog.Default()
	}
	return &OrderClient{client: client, logger: logger.With("component", "order_client")}
}

type shippingAddressPayload struct {
	FullName string `json:"fullName"`
	City     string `json:"city"`
	Country  string `json:"country"`
}

type orderPayload struct {
	ID              string                  `json:"_id"`
	AltID           string                  `json:"id"`
	ShippingAddress *shippingAddressPayload `json:"shippingAddress"`
	TotalPrice      float64                 `json:"totalPrice"`
	CreatedAt       string                  `json:"createdAt"`
	OrderStatus     *string                 `json:"orderStatus"`
	Status          *string                 `json:"status"`
	IsPaid          bool                    `json:"isPaid"`
	IsDelivered     bool                    `json:"isDelivered"`
}

type updateStatusPayload struct {
	Status string `json:"status"`
	IsPaid bool   `json:"isPaid"`
}

// List fetches GET /api/orders. The server may answer with a bare array or
// with {"data": [...]}. Rows that cannot be decoded are logged and skipped.
func (c *OrderClient) List(ctx context.Context) ([]order.Order, error) {
	body, err := c.client.do(ctx, request{method: http.MethodGet, path: "/api/orders", fallback: fetchOrdersFailed})
	if err != nil {
		return nil, err
	}

	items, err := unwrapList(body, "data")
	if err != nil {
		return nil, decodeError(fetchOrdersFailed, err)
	}

	orders := make([]order.Order, 0, len(items))
	for i, raw := range items {
		var payload orderPayload
		if err = json.Unmarshal(raw, &payload); err != nil {
			c.logger.Warn("skipping undecodable order", "index", i, "error", err)
			continue
		}
		o, err := payload.toDomain()
		if err != nil {
			c.logger.Warn("skipping invalid order", "index", i, "error", err)
			continue
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// UpdateStatus sends PUT /api/orders/{id}/status with {"status", "isPaid"}.
func (c *OrderClient) UpdateStatus(ctx context.Context, orderID string, target order.Status, paid bool) error {
	req, err := jsonRequest(
		http.MethodPut,
		"/api/orders/"+url.PathEscape(orderID)+"/status",
		updateStatusPayload{Status: target.String(), IsPaid: paid},
		updateOrderFailed,
	)
	if err != nil {
		return err
	}
	_, err = c.client.do(ctx, req)
	return err
}

func (p orderPayload) toDomain() (order.Order, error) {
	id := p.ID
	if id == "" {
		id = p.AltID
	}

	total, err := kernel.MoneyFromFloat(p.TotalPrice)
	if err != nil {
		return order.Order{}, fmt.Errorf("order %s: %w", id, err)
	}

	var shipping order.ShippingSnapshot
	if p.ShippingAddress != nil {
		shipping = order.ShippingSnapshot{
			FullName: p.ShippingAddress.FullName,
			City:     p.ShippingAddress.City,
			Country:  p.ShippingAddress.Country,
		}
	}

	return order.RestoreOrder(
		id,
		shipping,
		total,
		parseTimestamp(p.CreatedAt),
		order.ParseStatus(p.wireStatus()),
		order.Flags{Paid: p.IsPaid, Delivered: p.IsDelivered},
	)
}

// wireStatus reads orderStatus, falling back to status when orderStatus is absent.
func (p orderPayload) wireStatus() string {
	switch {
	case p.OrderStatus != nil:
		return *p.OrderStatus
	case p.Status != nil:
		return *p.Status
	default:
		return ""
	}
}

// parseTimestamp accepts RFC 3339 with or without fractional seconds. An
// unparsable value yields the zero time.
func parseTimestamp(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}
