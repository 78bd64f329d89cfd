// Package sessionrepo persists console sessions with GORM.
package sessionrepo

import (
	"time"

	"sellerdesk/internal/core/domain/model/kernel"
	"sellerdesk/internal/core/domain/model/session"

	"github.com/google/uuid"
)

// SessionDTO is the database row of a console session.
type SessionDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	UpstreamToken string    `gorm:"type:text;not null"`
	UserID        string    `gorm:"type:varchar(64);index"`
	UserName      string    `gorm:"type:varchar(255)"`
	UserEmail     string    `gorm:"type:varchar(255)"`
	UserRole      string    `gorm:"type:varchar(32)"`
	CreatedAt     time.Time `gorm:"not null"`
	ExpiresAt     time.Time `gorm:"not null;index"`
}

// TableName overrides GORM's default naming convention.
func (SessionDTO) TableName() string {
	return "sessions"
}

func fromDomain(s session.Session) SessionDTO {
	op := s.Operator()
	return SessionDTO{
		ID:            s.ID().Bytes(),
		UpstreamToken: s.UpstreamToken(),
		UserID:        op.ID,
		UserName:      op.Name,
		UserEmail:     op.Email,
		UserRole:      op.Role,
		CreatedAt:     s.CreatedAt().UTC(),
		ExpiresAt:     s.ExpiresAt().UTC(),
	}
}

func toDomain(dto SessionDTO) (session.Session, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return session.Session{}, err
	}

	return session.RestoreSession(
		id,
		dto.UpstreamToken,
		session.Operator{ID: dto.UserID, Name: dto.UserName, Email: dto.UserEmail, Role: dto.UserRole},
		dto.CreatedAt.UTC(),
		dto.ExpiresAt.UTC(),
	)
}
