package repository

import (
	"context"

	"github.com/dkwak/sleepcoach/internal/domain"
	"github.com/dkwak/sleepcoach/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FatigueRepository interface {
	Create(ctx context.Context, log *domain.FatigueLog) error
	Update(ctx context.Context, log *domain.FatigueLog) error
	// GetByDate returns nil, nil when no log exists for the date.
	GetByDate(ctx context.Context, userID uuid.UUID, date string) (*domain.FatigueLog, error)
	// ListRange returns logs with from <= date <= to, date ascending.
	ListRange(ctx context.Context, userID uuid.UUID, from, to string) ([]domain.FatigueLog, error)
	// List returns logs matching the filter, date ascending, fetching one
	// extra row past the limit so callers can detect further pages.
	List(ctx context.Context, userID uuid.UUID, filter domain.FatigueFilter) ([]domain.FatigueLog, error)
}

type fatigueRepository struct {
	db *gorm.DB
}

func NewFatigueRepository(db *gorm.DB) FatigueRepository {
	return &fatigueRepository{db: db}
}

func (r *fatigueRepository) Create(ctx context.Context, log *domain.FatigueLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *fatigueRepository) Update(ctx context.Context, log *domain.FatigueLog) error {
	return r.db.WithContext(ctx).Save(log).Error
}

func (r *fatigueRepository) GetByDate(ctx context.Context, userID uuid.UUID, date string) (*domain.FatigueLog, error) {
	var log domain.FatigueLog
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

func (r *fatigueRepository) ListRange(ctx context.Context, userID uuid.UUID, from, to string) ([]domain.FatigueLog, error) {
	var logs []domain.FatigueLog
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).
		Order("date ASC").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *fatigueRepository) List(ctx context.Context, userID uuid.UUID, filter domain.FatigueFilter) ([]domain.FatigueLog, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date ASC")

	if filter.From != "" {
		query = query.Where("date >= ?", filter.From)
	}
	if filter.To != "" {
		query = query.Where("date <= ?", filter.To)
	}

	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			// Ascending order: resume past the cursor row.
			query = query.Where(
				"(date > ?) OR (date = ? AND id > ?)",
				cursor.Date, cursor.Date, cursor.ID,
			)
		}
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var logs []domain.FatigueLog
	if err := query.Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
