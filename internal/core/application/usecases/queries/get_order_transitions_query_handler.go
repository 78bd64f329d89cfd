package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrderTransitionsQueryHandler reads the transition journal directly from
// the database, newest entry first.
type GetOrderTransitionsQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderTransitionsQueryHandler(db *gorm.DB) GetOrderTransitionsQueryHandler {
	return GetOrderTransitionsQueryHandler{db: db}
}

func (h GetOrderTransitionsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderTransitionsQuery,
) ([]GetOrderTransitionsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	transitions := make([]GetOrderTransitionsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			from_status,
			to_status,
			paid,
			actor_id,
			occurred_at
		FROM order_transitions
		WHERE order_id = ?
		ORDER BY occurred_at DESC, id
	`, query.OrderID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetOrderTransitionsQueryResponse

		if err = rows.Scan(
			&resp.ID,
			&resp.OrderID,
			&resp.From,
			&resp.To,
			&resp.Paid,
			&resp.ActorID,
			&resp.OccurredAt,
		); err != nil {
			return nil, err
		}
		resp.OccurredAt = resp.OccurredAt.UTC()
		transitions = append(transitions, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return transitions, nil
}
