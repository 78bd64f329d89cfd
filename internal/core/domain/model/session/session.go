package session

import (
	"errors"
	"strings"
	"time"

	"sellerdesk/internal/core/domain/model/kernel"
	"sellerdesk/internal/pkg/errs"
	"sellerdesk/internal/pkg/guard"
)

var (
	// ErrSessionIsNotConstructed is returned when a Session was not built by a constructor.
	ErrSessionIsNotConstructed = errors.New("Session must be created via NewSession or RestoreSession constructor")
	// ErrSessionExpired is returned when resolving a session past its expiry.
	ErrSessionExpired = errors.New("session expired")
)

// Session is a console sign-in.
type Session struct { //nolint:recvcheck //using for validation
	id            kernel.UUID
	upstreamToken string
	operator      Operator
	createdAt     time.Time
	expiresAt     time.Time

	guard guard.ConstructorGuard
}

// NewSession opens a session for an admin operator that lives for ttl.
func NewSession(upstreamToken string, operator Operator, now time.Time, ttl time.Duration) (Session, error) {
	if err := operator.RequireAdmin(); err != nil {
		return Session{}, err
	}
	if ttl <= 0 {
		return Session{}, errs.NewValueIsOutOfRangeError("ttl", ttl, time.Nanosecond, time.Duration(1<<63-1))
	}
	return RestoreSession(kernel.NewUUID(), upstreamToken, operator, now, now.Add(ttl))
}

// RestoreSession rebuilds a session from storage.
func RestoreSession(
	id kernel.UUID,
	upstreamToken string,
	operator Operator,
	createdAt time.Time,
	expiresAt time.Time,
) (Session, error) {
	var tokenErr, expiryErr error
	if strings.TrimSpace(upstreamToken) == "" {
		tokenErr = errs.NewValueIsRequiredError("upstream token")
	}
	if !expiresAt.After(createdAt) {
		expiryErr = errs.NewValueIsInvalidErrorWithCause("expiresAt", errors.New("expiry must follow creation"))
	}
	if err := errors.Join(id.Validate(), tokenErr, expiryErr); err != nil {
		return Session{}, err
	}

	return Session{
		id:            id,
		upstreamToken: upstreamToken,
		operator:      operator,
		createdAt:     createdAt,
		expiresAt:     expiresAt,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (s Session) Validate() error {
	return s.guard.Validate(ErrSessionIsNotConstructed)
}

func (s Session) ID() kernel.UUID {
	return s.id
}

func (s Session) UpstreamToken() string {
	return s.upstreamToken
}

func (s Session) Operator() Operator {
	return s.operator
}

func (s Session) CreatedAt() time.Time {
	return s.createdAt
}

func (s Session) ExpiresAt() time.Time {
	return s.expiresAt
}

// IsExpired reports whether the session has expired at now.
func (s Session) IsExpired(now time.Time) bool {
	return !now.Before(s.expiresAt)
}
