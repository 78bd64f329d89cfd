package commands

import (
	"context"

	"sellerdesk/internal/core/domain/model/session"
	"sellerdesk/internal/core/ports"
)

// RegisterOperatorCommandHandler creates an account in the remote API.
// Registration does not sign the new user in.
type RegisterOperatorCommandHandler struct {
	auth ports.Authenticator
}

func NewRegisterOperatorCommandHandler(auth ports.Authenticator) RegisterOperatorCommandHandler {
	return RegisterOperatorCommandHandler{auth: auth}
}

func (h RegisterOperatorCommandHandler) Handle(ctx context.Context, cmd RegisterOperatorCommand) (session.Operator, error) {
	if err := cmd.Validate(); err != nil {
		return session.Operator{}, err
	}

	return h.auth.Register(ctx, ports.Registration{
		Name:     cmd.Name(),
		Email:    cmd.Email(),
		Password: cmd.Password(),
		Address:  cmd.Address(),
	})
}
