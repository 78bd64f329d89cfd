package transitionrepo

import (
	"context"

	"sellerdesk/internal/core/domain/model/kernel"
	"sellerdesk/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GormTransitionRepository implements ports.TransitionRepository using GORM.
type GormTransitionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTransitionRepository creates a new GORM transition repository.
func NewGormTransitionRepository(db *gorm.DB, tracker aggregateTracker) *GormTransitionRepository {
	return &GormTransitionRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add appends a journal entry.
func (r *GormTransitionRepository) Add(ctx context.Context, t order.Transition) error {
	if err := t.Validate(); err != nil {
		return err
	}

	dto := fromDomain(t)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(t.ID(), t)
	return nil
}

// ListByOrder returns the journal of orderID, newest first.
func (r *GormTransitionRepository) ListByOrder(ctx context.Context, orderID string) ([]order.Transition, error) {
	var dtos []TransitionDTO
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("occurred_at DESC").
		Order("id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	transitions := make([]order.Transition, 0, len(dtos))
	for _, dto := range dtos {
		t, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		transitions = append(transitions, t)
	}

	return transitions, nil
}
