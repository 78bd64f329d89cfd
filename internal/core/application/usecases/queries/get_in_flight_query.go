package queries

import (
	"context"
	"errors"

	"sellerdesk/internal/pkg/guard"
)

var ErrGetInFlightQueryIsNotConstructed = errors.New("GetInFlightQuery must be created via NewGetInFlightQuery constructor")

// GetInFlightQuery reports outstanding status updates and the last error.
type GetInFlightQuery struct {
	guard guard.ConstructorGuard
}

func NewGetInFlightQuery() GetInFlightQuery {
	return GetInFlightQuery{guard: guard.NewConstructorGuard()}
}

func (q GetInFlightQuery) Validate() error {
	return q.guard.Validate(ErrGetInFlightQueryIsNotConstructed)
}

// GetInFlightQueryResponse is the engine bookkeeping.
type GetInFlightQueryResponse struct {
	OrderIDs  []string
	LastError string
	Loaded    bool
}

type GetInFlightQueryHandler struct {
	orders OrderReader
}

func NewGetInFlightQueryHandler(orders OrderReader) GetInFlightQueryHandler {
	return GetInFlightQueryHandler{orders: orders}
}

func (h GetInFlightQueryHandler) Handle(_ context.Context, query GetInFlightQuery) (GetInFlightQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetInFlightQueryResponse{}, err
	}
	s := h.orders.Snapshot()
	return GetInFlightQueryResponse{OrderIDs: s.InFlight, LastError: s.LastError, Loaded: s.Loaded}, nil
}
