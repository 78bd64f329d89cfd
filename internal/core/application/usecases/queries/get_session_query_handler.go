package queries

import (
	"context"
	"errors"
	"time"

	"sellerdesk/internal/core/domain/model/session"
	"sellerdesk/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetSessionQueryHandler looks a session up by id. Unknown ids return
// errs.ObjectNotFoundError and expired ones session.ErrSessionExpired.
type GetSessionQueryHandler struct {
	db  *gorm.DB
	now func() time.Time
}

func NewGetSessionQueryHandler(db *gorm.DB) GetSessionQueryHandler {
	return GetSessionQueryHandler{db: db, now: time.Now}
}

func (h GetSessionQueryHandler) Handle(ctx context.Context, query GetSessionQuery) (GetSessionQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSessionQueryResponse{}, err
	}

	var row struct {
		UpstreamToken string
		UserID        string
		UserName      string
		UserEmail     string
		UserRole      string
		ExpiresAt     time.Time
	}

	result := h.db.WithContext(ctx).Raw(`
		SELECT
			upstream_token,
			user_id,
			user_name,
			user_email,
			user_role,
			expires_at
		FROM sessions
		WHERE id = ?
	`, query.SessionID().Bytes()).Scan(&row)
	if result.Error != nil {
		return GetSessionQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return GetSessionQueryResponse{}, errs.NewObjectNotFoundError("session", query.SessionID().String())
	}

	if !h.now().Before(row.ExpiresAt) {
		return GetSessionQueryResponse{}, session.ErrSessionExpired
	}

	return GetSessionQueryResponse{
		SessionID:     query.SessionID(),
		UpstreamToken: row.UpstreamToken,
		Operator: session.Operator{
			ID:    row.UserID,
			Name:  row.UserName,
			Email: row.UserEmail,
			Role:  row.UserRole,
		},
		ExpiresAt: row.ExpiresAt.UTC(),
	}, nil
}

// IsSessionUnavailable reports lookup failures that require signing in again.
func IsSessionUnavailable(err error) bool {
	return errors.Is(err, errs.ErrObjectNotFound) || errors.Is(err, session.ErrSessionExpired)
}
