package queries

import (
	"errors"

	"sellerdesk/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New("GetOrdersQuery must be created via NewGetOrdersQuery constructor")

// GetOrdersQuery lists orders. With refresh set the cache is refetched;
// otherwise it is fetched only if it was never loaded.
type GetOrdersQuery struct {
	refresh bool

	guard guard.ConstructorGuard
}

func NewGetOrdersQuery(refresh bool) GetOrdersQuery {
	return GetOrdersQuery{refresh: refresh, guard: guard.NewConstructorGuard()}
}

func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

func (q GetOrdersQuery) Refresh() bool {
	return q.refresh
}
