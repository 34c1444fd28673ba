package service

import (
	"context"
	"time"

	"github.com/dkwak/sleepcoach/internal/domain"
	"github.com/dkwak/sleepcoach/internal/engine"
	"github.com/dkwak/sleepcoach/internal/repository"
	"github.com/google/uuid"
)

// ScheduleService manages the user's fixed calendar commitments.
type ScheduleService interface {
	Create(ctx context.Context, userID uuid.UUID, req *domain.CreateScheduleEventRequest) (*domain.ScheduleEvent, error)
	// ListRange returns events overlapping the inclusive civil-date range.
	ListRange(ctx context.Context, userID uuid.UUID, fromDate, toDate string) ([]domain.ScheduleEvent, error)
	Delete(ctx context.Context, userID, eventID uuid.UUID) error
}

type scheduleService struct {
	repo repository.ScheduleRepository
	loc  *time.Location
}

func NewScheduleService(repo repository.ScheduleRepository, loc *time.Location) ScheduleService {
	return &scheduleService{repo: repo, loc: loc}
}

func (s *scheduleService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateScheduleEventRequest) (*domain.ScheduleEvent, error) {
	event := &domain.ScheduleEvent{
		UserID:  userID,
		Title:   req.Title,
		StartAt: req.StartAt,
		EndAt:   req.EndAt,
	}
	if err := s.repo.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *scheduleService) ListRange(ctx context.Context, userID uuid.UUID, fromDate, toDate string) ([]domain.ScheduleEvent, error) {
	from, _, err := engine.DayWindow(fromDate, s.loc)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	_, to, err := engine.DayWindow(toDate, s.loc)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if to.Before(from) {
		return nil, domain.ErrInvalidInput
	}
	return s.repo.ListOverlapping(ctx, userID, from, to)
}

func (s *scheduleService) Delete(ctx context.Context, userID, eventID uuid.UUID) error {
	return s.repo.Delete(ctx, userID, eventID)
}
