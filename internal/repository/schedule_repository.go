package repository

import (
	"context"
	"time"

	"github.com/dkwak/sleepcoach/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ScheduleRepository interface {
	Create(ctx context.Context, event *domain.ScheduleEvent) error
	// ListOverlapping returns events intersecting [from, to), ordered by
	// start ascending. Events without an end time count as 30 minutes wide,
	// matching how the recommendation engine resolves them.
	ListOverlapping(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.ScheduleEvent, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type scheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) ScheduleRepository {
	return &scheduleRepository{db: db}
}

func (r *scheduleRepository) Create(ctx context.Context, event *domain.ScheduleEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *scheduleRepository) ListOverlapping(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.ScheduleEvent, error) {
	var events []domain.ScheduleEvent
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("start_at < ?", to).
		Where("COALESCE(end_at, start_at + INTERVAL '30 minutes') > ?", from).
		Order("start_at ASC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *scheduleRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&domain.ScheduleEvent{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
