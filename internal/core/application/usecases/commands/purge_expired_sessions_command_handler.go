package commands

import (
	"context"
	"time"
)

// PurgeExpiredSessionsCommandHandler deletes expired sessions in one transaction.
type PurgeExpiredSessionsCommandHandler struct {
	uowFactory SessionUoWFactory
	now        func() time.Time
}

func NewPurgeExpiredSessionsCommandHandler(uowFactory SessionUoWFactory) PurgeExpiredSessionsCommandHandler {
	return PurgeExpiredSessionsCommandHandler{uowFactory: uowFactory, now: time.Now}
}

// Handle returns the number of purged sessions.
func (h PurgeExpiredSessionsCommandHandler) Handle(ctx context.Context, cmd PurgeExpiredSessionsCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	purged, err := uow.SessionRepository().DeleteExpired(ctx, h.now().UTC())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return purged, nil
}
