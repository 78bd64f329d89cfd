package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"sellerdesk/internal/core/domain/model/order"
	"sellerdesk/internal/core/ports"
	"sellerdesk/internal/pkg/errs"
)

var (
	// ErrOrderNotCached is returned when advancing an order that is not in the
	// cached list.
	ErrOrderNotCached = errors.New("order is not in the loaded order list")
	// ErrTransitionInFlight is returned when an order already has a status
	// update outstanding.
	ErrTransitionInFlight = errors.New("a status update for this order is already in progress")
	// ErrStoreIsRequired is returned by NewEngine without an order store.
	ErrStoreIsRequired = errs.NewValueIsRequiredError("order store")
)

// Advancement describes a status change confirmed by the store.
type Advancement struct {
	From  order.Status
	To    order.Status
	Paid  bool
	Order order.Order
}

// Snapshot is a consistent view of the engine bookkeeping.
type Snapshot struct {
	InFlight  []string
	LastError string
	Loaded    bool
	Count     int
}

// Option configures an Engine.
type Option func(*Engine)

// WithUnrecognizedStatusPolicy sets how unknown statuses are advanced.
func WithUnrecognizedStatusPolicy(p order.UnrecognizedStatusPolicy) Option {
	return func(e *Engine) { e.unrecognized = p }
}

// WithPaidFlagPolicy sets the isPaid value sent with status updates.
func WithPaidFlagPolicy(p order.PaidFlagPolicy) Option {
	return func(e *Engine) { e.paid = p }
}

// WithLogger sets the engine logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// Engine owns the order cache and drives status transitions.
type Engine struct {
	store        ports.OrderStore
	unrecognized order.UnrecognizedStatusPolicy
	paid         order.PaidFlagPolicy
	logger       *slog.Logger

	mu        sync.Mutex
	orders    []order.Order
	index     map[string]int
	inFlight  map[string]struct{}
	lastError string
	loaded    bool
}

// NewEngine creates an engine with an empty cache.
func NewEngine(store ports.OrderStore, opts ...Option) (*Engine, error) {
	if store == nil {
		return nil, ErrStoreIsRequired
	}

	e := &Engine{
		store:        store,
		unrecognized: order.CoerceUnrecognizedForward,
		paid:         order.PaidOnEveryTransition,
		logger:       slog.Default(),
		index:        map[string]int{},
		inFlight:     map[string]struct{}{},
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.With("component", "order_workflow")

	return e, nil
}

// ListOrders fetches all orders from the store and replaces the cache. On
// failure the cache is left as it was and the error is recorded.
func (e *Engine) ListOrders(ctx context.Context) ([]order.Order, error) {
	orders, err := e.store.List(ctx)
	if err != nil {
		e.recordError(err)
		e.logger.WarnContext(ctx, "Failed to fetch orders", "error", err)
		return nil, err
	}

	e.mu.Lock()
	e.orders = append([]order.Order(nil), orders...)
	e.index = make(map[string]int, len(orders))
	for i, o := range e.orders {
		e.index[o.ID()] = i
	}
	e.loaded = true
	e.lastError = ""
	snapshot := e.copyOrders()
	e.mu.Unlock()

	e.logger.DebugContext(ctx, "Orders loaded", "count", len(snapshot))
	return snapshot, nil
}

// EnsureLoaded returns the cached orders, fetching them first if the cache has
// never been filled.
func (e *Engine) EnsureLoaded(ctx context.Context) ([]order.Order, error) {
	e.mu.Lock()
	if e.loaded {
		snapshot := e.copyOrders()
		e.mu.Unlock()
		return snapshot, nil
	}
	e.mu.Unlock()

	return e.ListOrders(ctx)
}

// AdvanceStatus moves orderID to its next status.
//
// The order must be cached and not Delivered. Only one update per order may be
// outstanding; updates for different orders run concurrently. The cache is
// changed only when the store confirms the update, and only for orderID.
func (e *Engine) AdvanceStatus(ctx context.Context, orderID string) (Advancement, error) {
	current, target, paid, err := e.begin(orderID)
	if err != nil {
		e.logger.InfoContext(ctx, "Status advance rejected", "order_id", orderID, "error", err)
		return Advancement{}, err
	}

	if err = e.store.UpdateStatus(ctx, orderID, target, paid); err != nil {
		e.finish(orderID, err)
		e.logger.WarnContext(ctx, "Failed to update order status",
			"order_id", orderID, "target", target.String(), "error", err)
		return Advancement{}, err
	}

	updated, err := e.confirm(current, target, paid)
	if err != nil {
		return Advancement{}, err
	}

	e.logger.InfoContext(ctx, "Order status advanced",
		"order_id", orderID, "from", current.Status().String(), "to", target.String(), "paid", paid)

	return Advancement{
		From:  current.Status(),
		To:    target,
		Paid:  paid,
		Order: updated,
	}, nil
}

// Orders returns a copy of the cached orders in server order.
func (e *Engine) Orders() []order.Order {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.copyOrders()
}

// Order returns the cached order with id.
func (e *Engine) Order(id string) (order.Order, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	i, ok := e.index[id]
	if !ok {
		return order.Order{}, false
	}
	return e.orders[i], true
}

// InFlight returns the ids of orders with an outstanding update, sorted.
func (e *Engine) InFlight() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.inFlightIDs()
}

// IsInFlight reports whether orderID has an outstanding update.
func (e *Engine) IsInFlight(orderID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, ok := e.inFlight[orderID]
	return ok
}

// LastError returns the message of the last failure, or "" when the last
// operation succeeded.
func (e *Engine) LastError() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastError
}

// Snapshot returns the bookkeeping state under a single lock.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Snapshot{
		InFlight:  e.inFlightIDs(),
		LastError: e.lastError,
		Loaded:    e.loaded,
		Count:     len(e.orders),
	}
}

func (e *Engine) UnrecognizedStatusPolicy() order.UnrecognizedStatusPolicy {
	return e.unrecognized
}

func (e *Engine) PaidFlagPolicy() order.PaidFlagPolicy {
	return e.paid
}

// begin validates the request and marks orderID in flight.
func (e *Engine) begin(orderID string) (order.Order, order.Status, bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.lastError = ""

	i, ok := e.index[orderID]
	if !ok {
		err := fmt.Errorf("%w: %w", ErrOrderNotCached, errs.NewObjectNotFoundError("orderId", orderID))
		e.lastError = err.Error()
		return order.Order{}, 0, false, err
	}
	current := e.orders[i]

	target, err := current.NextStatus(e.unrecognized)
	if err != nil {
		e.lastError = err.Error()
		return order.Order{}, 0, false, err
	}

	if _, busy := e.inFlight[orderID]; busy {
		e.lastError = ErrTransitionInFlight.Error()
		return order.Order{}, 0, false, ErrTransitionInFlight
	}
	e.inFlight[orderID] = struct{}{}

	return current, target, e.paid.PaidFlag(current, target), nil
}

// confirm applies an acknowledged update to the cached copy of the order and
// clears its in-flight mark. A refetch may have replaced the cache meanwhile;
// the newest cached copy is updated, and nothing is added if it disappeared.
func (e *Engine) confirm(sent order.Order, target order.Status, paid bool) (order.Order, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	delete(e.inFlight, sent.ID())

	base := sent
	i, cached := e.index[sent.ID()]
	if cached {
		base = e.orders[i]
	}

	updated, err := base.WithConfirmedStatus(target, paid)
	if err != nil {
		e.lastError = err.Error()
		return order.Order{}, err
	}

	if cached {
		e.orders[i] = updated
	}
	return updated, nil
}

func (e *Engine) finish(orderID string, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.inFlight, orderID)
	e.lastError = err.Error()
}

func (e *Engine) recordError(err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.lastError = err.Error()
}

func (e *Engine) copyOrders() []order.Order {
	return append([]order.Order(nil), e.orders...)
}

func (e *Engine) inFlightIDs() []string {
	ids := make([]string, 0, len(e.inFlight))
	for id := range e.inFlight {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
