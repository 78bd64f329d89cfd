package commands

import (
	"errors"

	"sellerdesk/internal/pkg/guard"
)

var ErrPurgeExpiredSessionsCommandIsNotConstructed = errors.New(
	"PurgeExpiredSessionsCommand must be created via NewPurgeExpiredSessionsCommand constructor",
)

// PurgeExpiredSessionsCommand removes sessions past their expiry.
// It is issued on a schedule by the session purge job.
type PurgeExpiredSessionsCommand struct {
	guard guard.ConstructorGuard
}

func NewPurgeExpiredSessionsCommand() PurgeExpiredSessionsCommand {
	return PurgeExpiredSessionsCommand{guard: guard.NewConstructorGuard()}
}

func (c PurgeExpiredSessionsCommand) Validate() error {
	return c.guard.Validate(ErrPurgeExpiredSessionsCommandIsNotConstructed)
}
