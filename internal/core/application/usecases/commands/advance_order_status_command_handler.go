package commands

import (
	"context"
	"log/slog"
	"time"

	"sellerdesk/internal/core/application/workflow"
	"sellerdesk/internal/core/domain/model/order"
)

// AdvanceOrderStatusCommandHandler advances an order through the workflow
// engine and appends the confirmed transition to the journal.
//
// The remote store is the system of record: once it confirms the update the
// command succeeds, and a journal write failure is only logged.
//
// Example:
//
//	handler := NewAdvanceOrderStatusCommandHandler(engine, journalFactory, logger)
//	cmd, _ := NewAdvanceOrderStatusCommand("65f1c0a2b3d4e5f6a7b8c9d0", operator.ID)
//	adv, err := handler.Handle(ctx, cmd)
type AdvanceOrderStatusCommandHandler struct {
	engine     StatusAdvancer
	uowFactory JournalUoWFactory
	logger     *slog.Logger
	now        func() time.Time
}

// NewAdvanceOrderStatusCommandHandler creates the handler.
func NewAdvanceOrderStatusCommandHandler(
	engine StatusAdvancer,
	uowFactory JournalUoWFactory,
	logger *slog.Logger,
) AdvanceOrderStatusCommandHandler {
	return AdvanceOrderStatusCommandHandler{
		engine:     engine,
		uowFactory: uowFactory,
		logger:     logger.With("component", "advance_order_status"),
		now:        time.Now,
	}
}

// Handle advances the order and journals the result.
func (h AdvanceOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd AdvanceOrderStatusCommand,
) (workflow.Advancement, error) {
	if err := cmd.Validate(); err != nil {
		return workflow.Advancement{}, err
	}

	adv, err := h.engine.AdvanceStatus(ctx, cmd.OrderID())
	if err != nil {
		return workflow.Advancement{}, err
	}

	if err = h.journal(ctx, cmd, adv); err != nil {
		h.logger.ErrorContext(ctx, "Failed to journal status transition",
			"order_id", cmd.OrderID(), "to", adv.To.String(), "error", err)
	}

	return adv, nil
}

func (h AdvanceOrderStatusCommandHandler) journal(
	ctx context.Context,
	cmd AdvanceOrderStatusCommand,
	adv workflow.Advancement,
) error {
	transition, err := order.NewTransition(cmd.OrderID(), adv.From, adv.To, adv.Paid, cmd.ActorID(), h.now().UTC())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.TransitionRepository().Add(ctx, transition); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
