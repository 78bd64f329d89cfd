package queries

import (
	"errors"
	"time"

	"sellerdesk/internal/core/domain/model/kernel"
	"sellerdesk/internal/core/domain/model/session"
	"sellerdesk/internal/pkg/guard"
)

var ErrGetSessionQueryIsNotConstructed = errors.New("GetSessionQuery must be created via NewGetSessionQuery constructor")

// GetSessionQuery resolves a console bearer token to its session.
type GetSessionQuery struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetSessionQuery(sessionID kernel.UUID) (GetSessionQuery, error) {
	if err := sessionID.Validate(); err != nil {
		return GetSessionQuery{}, err
	}
	return GetSessionQuery{sessionID: sessionID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetSessionQuery) Validate() error {
	return q.guard.Validate(ErrGetSessionQueryIsNotConstructed)
}

func (q GetSessionQuery) SessionID() kernel.UUID {
	return q.sessionID
}

// GetSessionQueryResponse is a live session.
type GetSessionQueryResponse struct {
	SessionID     kernel.UUID
	UpstreamToken string
	Operator      session.Operator
	ExpiresAt     time.Time
}
