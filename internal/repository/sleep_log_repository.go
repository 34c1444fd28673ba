package repository

import (
	"context"

	"github.com/dkwak/sleepcoach/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SleepLogRepository interface {
	// GetByDate returns nil, nil when no record exists for the date.
	GetByDate(ctx context.Context, userID uuid.UUID, date string) (*domain.SleepLog, error)
	Create(ctx context.Context, log *domain.SleepLog) error
	Update(ctx context.Context, log *domain.SleepLog) error
}

type sleepLogRepository struct {
	db *gorm.DB
}

func NewSleepLogRepository(db *gorm.DB) SleepLogRepository {
	return &sleepLogRepository{db: db}
}

func (r *sleepLogRepository) GetByDate(ctx context.Context, userID uuid.UUID, date string) (*domain.SleepLog, error) {
	var log domain.SleepLog
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		First(&log).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &log, nil
}

func (r *sleepLogRepository) Create(ctx context.Context, log *domain.SleepLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *sleepLogRepository) Update(ctx context.Context, log *domain.SleepLog) error {
	return r.db.WithContext(ctx).Save(log).Error
}
