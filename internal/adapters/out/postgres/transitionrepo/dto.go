// Package transitionrepo persists the order status transition journal with GORM.
package transitionrepo

import (
	"time"

	"sellerdesk/internal/core/domain/model/kernel"
	"sellerdesk/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// TransitionDTO is one journal row. Statuses are stored by name.
type TransitionDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    string    `gorm:"type:varchar(64);not null;index:idx_order_transitions_order_time,priority:1"`
	FromStatus string    `gorm:"type:varchar(32);not null"`
	ToStatus   string    `gorm:"type:varchar(32);not null"`
	Paid       bool      `gorm:"not null"`
	ActorID    string    `gorm:"type:varchar(64)"`
	OccurredAt time.Time `gorm:"not null;index:idx_order_transitions_order_time,priority:2"`
}

// TableName overrides GORM's default naming convention.
func (TransitionDTO) TableName() string {
	return "order_transitions"
}

func fromDomain(t order.Transition) TransitionDTO {
	return TransitionDTO{
		ID:         t.ID().Bytes(),
		OrderID:    t.OrderID(),
		FromStatus: t.From().String(),
		ToStatus:   t.To().String(),
		Paid:       t.Paid(),
		ActorID:    t.ActorID(),
		OccurredAt: t.OccurredAt().UTC(),
	}
}

func toDomain(dto TransitionDTO) (order.Transition, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.Transition{}, err
	}

	return order.RestoreTransition(
		id,
		dto.OrderID,
		order.ParseStatus(dto.FromStatus),
		order.ParseStatus(dto.ToStatus),
		dto.Paid,
		dto.ActorID,
		dto.OccurredAt.UTC(),
	)
}
