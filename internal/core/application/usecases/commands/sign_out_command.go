package commands

import (
	"errors"

	"sellerdesk/internal/core/domain/model/kernel"
	"sellerdesk/internal/pkg/guard"
)

var ErrSignOutCommandIsNotConstructed = errors.New("SignOutCommand must be created via NewSignOutCommand constructor")

// SignOutCommand closes a console session.
type SignOutCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

func NewSignOutCommand(sessionID kernel.UUID) (SignOutCommand, error) {
	if err := sessionID.Validate(); err != nil {
		return SignOutCommand{}, err
	}
	return SignOutCommand{sessionID: sessionID, guard: guard.NewConstructorGuard()}, nil
}

func (c SignOutCommand) Validate() error {
	return c.guard.Validate(ErrSignOutCommandIsNotConstructed)
}

func (c SignOutCommand) SessionID() kernel.UUID {
	return c.sessionID
}
