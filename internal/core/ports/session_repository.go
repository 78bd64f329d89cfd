package ports

import (
	"context"
	"time"

	"sellerdesk/internal/core/domain/model/kernel"
	"sellerdesk/internal/core/domain/model/session"
)

// SessionRepository persists console sessions.
type SessionRepository interface {
	Add(ctx context.Context, s session.Session) error

	// Get returns errs.ObjectNotFoundError when id is unknown.
	Get(ctx context.Context, id kernel.UUID) (session.Session, error)

	Delete(ctx context.Context, id kernel.UUID) error

	// DeleteExpired removes sessions that expired at or before now and
	// returns how many were removed.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
