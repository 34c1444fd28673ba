package service

import (
	"context"

	"github.com/dkwak/sleepcoach/internal/domain"
	"github.com/dkwak/sleepcoach/internal/repository"
	"github.com/google/uuid"
)

// SleepLogService manages the user's own per-date sleep records.
type SleepLogService interface {
	// Get returns the record for a date; a date without one yields an empty
	// record rather than an error.
	Get(ctx context.Context, userID uuid.UUID, date string) (*domain.SleepLogResponse, error)
	// Upsert merges the supplied fields into the record for the date.
	Upsert(ctx context.Context, userID uuid.UUID, req *domain.UpsertSleepLogRequest) (*domain.SleepLog, error)
}

type sleepLogService struct {
	repo repository.SleepLogRepository
}

func NewSleepLogService(repo repository.SleepLogRepository) SleepLogService {
	return &sleepLogService{repo: repo}
}

func (s *sleepLogService) Get(ctx context.Context, userID uuid.UUID, date string) (*domain.SleepLogResponse, error) {
	log, err := s.repo.GetByDate(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	if log == nil {
		return &domain.SleepLogResponse{Date: date}, nil
	}
	resp := log.ToResponse()
	return &resp, nil
}

func (s *sleepLogService) Upsert(ctx context.Context, userID uuid.UUID, req *domain.UpsertSleepLogRequest) (*domain.SleepLog, error) {
	log, err := s.repo.GetByDate(ctx, userID, req.Date)
	if err != nil {
		return nil, err
	}

	if log == nil {
		log = &domain.SleepLog{
			UserID:     userID,
			Date:       req.Date,
			SleepStart: req.SleepStart,
			SleepEnd:   req.SleepEnd,
		}
		if err := s.repo.Create(ctx, log); err != nil {
			return nil, err
		}
		return log, nil
	}

	if req.SleepStart != nil {
		log.SleepStart = req.SleepStart
	}
	if req.SleepEnd != nil {
		log.SleepEnd = req.SleepEnd
	}
	if err := s.repo.Update(ctx, log); err != nil {
		return nil, err
	}
	return log, nil
}
