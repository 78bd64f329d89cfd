package commands

import (
	"context"
	"log/slog"

	"sellerdesk/internal/core/ports"
)

// SignOutCommandHandler logs the operator out upstream and deletes the
// console session. The upstream logout is best effort: its failure is logged
// and the local session is removed anyway.
type SignOutCommandHandler struct {
	auth       ports.Authenticator
	uowFactory SessionUoWFactory
	logger     *slog.Logger
}

func NewSignOutCommandHandler(auth ports.Authenticator, uowFactory SessionUoWFactory, logger *slog.Logger) SignOutCommandHandler {
	return SignOutCommandHandler{
		auth:       auth,
		uowFactory: uowFactory,
		logger:     logger.With("component", "sign_out"),
	}
}

// Handle expects ctx to carry the upstream token of the session.
func (h SignOutCommandHandler) Handle(ctx context.Context, cmd SignOutCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.auth.Logout(ctx); err != nil {
		h.logger.WarnContext(ctx, "Upstream logout failed", "session_id", cmd.SessionID().String(), "error", err)
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.SessionRepository().Delete(ctx, cmd.SessionID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
