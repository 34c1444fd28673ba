package repository

import (
	"context"
	"time"

	"github.com/dkwak/sleepcoach/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	// GetValid returns the session for token if it has not expired.
	GetValid(ctx context.Context, token uuid.UUID, now time.Time) (*domain.Session, error)
	Delete(ctx context.Context, token uuid.UUID) error
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(ctx context.Context, session *domain.Session) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *sessionRepository) GetValid(ctx context.Context, token uuid.UUID, now time.Time) (*domain.Session, error) {
	var session domain.Session
	err := r.db.WithContext(ctx).
		Where("token = ? AND expires_at > ?", token, now).
		First(&session).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) Delete(ctx context.Context, token uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Session{}, "token = ?", token).Error
}
