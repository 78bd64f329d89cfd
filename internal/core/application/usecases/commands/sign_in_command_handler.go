package commands

import (
	"context"
	"log/slog"
	"time"

	"sellerdesk/internal/core/domain/model/session"
	"sellerdesk/internal/core/ports"
)

// SignInCommandHandler authenticates an operator against the remote API and
// opens a console session. Accounts without the admin role are refused and no
// session is stored.
type SignInCommandHandler struct {
	auth       ports.Authenticator
	uowFactory SessionUoWFactory
	ttl        time.Duration
	logger     *slog.Logger
	now        func() time.Time
}

func NewSignInCommandHandler(
	auth ports.Authenticator,
	uowFactory SessionUoWFactory,
	ttl time.Duration,
	logger *slog.Logger,
) SignInCommandHandler {
	return SignInCommandHandler{
		auth:       auth,
		uowFactory: uowFactory,
		ttl:        ttl,
		logger:     logger.With("component", "sign_in"),
		now:        time.Now,
	}
}

// Handle returns the stored session on success.
func (h SignInCommandHandler) Handle(ctx context.Context, cmd SignInCommand) (session.Session, error) {
	if err := cmd.Validate(); err != nil {
		return session.Session{}, err
	}

	token, operator, err := h.auth.Login(ctx, ports.Credentials{Email: cmd.Email(), Password: cmd.Password()})
	if err != nil {
		return session.Session{}, err
	}

	s, err := session.NewSession(token, operator, h.now().UTC(), h.ttl)
	if err != nil {
		h.logger.WarnContext(ctx, "Sign-in refused", "user_id", operator.ID, "role", operator.Role, "error", err)
		return session.Session{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return session.Session{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.SessionRepository().Add(ctx, s); err != nil {
		return session.Session{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return session.Session{}, err
	}

	h.logger.InfoContext(ctx, "Operator signed in", "user_id", operator.ID, "session_id", s.ID().String())
	return s, nil
}
