package commands_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"sellerdesk/internal/core/application/usecases/commands"
	"sellerdesk/internal/core/application/workflow"
	"sellerdesk/internal/core/domain/model/order"
	"sellerdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewAdvanceOrderStatusCommand(t *testing.T) {
	cmd, err := commands.NewAdvanceOrderStatusCommand(" 65f1c0a2 ", "u1")
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, "65f1c0a2", cmd.OrderID())
	assert.Equal(t, "u1", cmd.ActorID())

	_, err = commands.NewAdvanceOrderStatusCommand("", "u1")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	var zero commands.AdvanceOrderStatusCommand
	require.ErrorIs(t, zero.Validate(), commands.ErrAdvanceOrderStatusCommandIsNotConstructed)
}

func TestAdvanceOrderStatusCommandHandler_Handle(t *testing.T) {
	adv := workflow.Advancement{From: order.Pending, To: order.Processing, Paid: true}

	t.Run("should advance and journal", func(t *testing.T) {
		ctx := t.Context()
		cmd, _ := commands.NewAdvanceOrderStatusCommand("o1", "u1")

		engine := new(MockStatusAdvancer)
		engine.On("AdvanceStatus", ctx, "o1").Return(adv, nil).Once()

		repo := new(MockTransitionRepository)
		uow := new(MockJournalUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("TransitionRepository").Return(repo).Once(),
			repo.On("Add", ctx, mock.MatchedBy(func(tr order.Transition) bool {
				return tr.OrderID() == "o1" && tr.From() == order.Pending && tr.To() == order.Processing &&
					tr.Paid() && tr.ActorID() == "u1"
			})).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory := new(MockJournalUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewAdvanceOrderStatusCommandHandler(engine, factory, discardLogger())
		got, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, order.Processing, got.To)
		engine.AssertExpectations(t)
		repo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("engine failure is returned and nothing is journaled", func(t *testing.T) {
		ctx := t.Context()
		cmd, _ := commands.NewAdvanceOrderStatusCommand("o1", "u1")

		engine := new(MockStatusAdvancer)
		engine.On("AdvanceStatus", ctx, "o1").Return(nil, order.ErrStatusIsFinal).Once()
		factory := new(MockJournalUoWFactory)

		h := commands.NewAdvanceOrderStatusCommandHandler(engine, factory, discardLogger())
		_, err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, order.ErrStatusIsFinal)
		factory.AssertNotCalled(t, "Create")
	})

	t.Run("journal failure does not fail the command", func(t *testing.T) {
		ctx := t.Context()
		cmd, _ := commands.NewAdvanceOrderStatusCommand("o1", "")

		engine := new(MockStatusAdvancer)
		engine.On("AdvanceStatus", ctx, "o1").Return(adv, nil).Once()
		uow := new(MockJournalUoW)
		uow.On("Begin", ctx).Return(errors.New("db down")).Once()
		factory := new(MockJournalUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewAdvanceOrderStatusCommandHandler(engine, factory, discardLogger())
		got, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, order.Processing, got.To)
	})

	t.Run("unconstructed command is rejected", func(t *testing.T) {
		h := commands.NewAdvanceOrderStatusCommandHandler(new(MockStatusAdvancer), new(MockJournalUoWFactory), discardLogger())

		_, err := h.Handle(t.Context(), commands.AdvanceOrderStatusCommand{})

		require.ErrorIs(t, err, commands.ErrAdvanceOrderStatusCommandIsNotConstructed)
	})
}
