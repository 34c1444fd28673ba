package service

import (
	"context"
	"time"

	"github.com/dkwak/sleepcoach/internal/domain"
	"github.com/dkwak/sleepcoach/internal/engine"
	"github.com/dkwak/sleepcoach/internal/repository"
	"github.com/dkwak/sleepcoach/pkg/pagination"
	"github.com/google/uuid"
)

// Upsert outcomes reported to the client, matching the three paths a
// submission can take.
const (
	FatigueOutcomeCreated   = "created"
	FatigueOutcomeUpdated   = "updated"
	FatigueOutcomeUnchanged = "unchanged"
)

// FatigueService manages daily fatigue ratings.
type FatigueService interface {
	// Upsert records a rating for a date, updating any existing one. The
	// returned outcome reports whether the row was created, updated, or
	// left unchanged because the score matched.
	Upsert(ctx context.Context, userID uuid.UUID, req *domain.UpsertFatigueRequest) (*domain.FatigueLog, string, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.FatigueFilter) (*domain.FatigueListResponse, error)
}

type fatigueService struct {
	repo repository.FatigueRepository
	loc  *time.Location
	now  func() time.Time
}

func NewFatigueService(repo repository.FatigueRepository, loc *time.Location) FatigueService {
	return &fatigueService{repo: repo, loc: loc, now: time.Now}
}

func (s *fatigueService) Upsert(ctx context.Context, userID uuid.UUID, req *domain.UpsertFatigueRequest) (*domain.FatigueLog, string, error) {
	date := engine.FormatDate(s.now(), s.loc)
	if req.Date != nil && *req.Date != "" {
		date = *req.Date
	}

	score := req.Score
	if score < domain.FatigueScoreMin {
		score = domain.FatigueScoreMin
	}
	if score > domain.FatigueScoreMax {
		score = domain.FatigueScoreMax
	}

	existing, err := s.repo.GetByDate(ctx, userID, date)
	if err != nil {
		return nil, "", err
	}

	if existing != nil {
		if existing.Score == score {
			return existing, FatigueOutcomeUnchanged, nil
		}
		existing.Score = score
		if err := s.repo.Update(ctx, existing); err != nil {
			return nil, "", err
		}
		return existing, FatigueOutcomeUpdated, nil
	}

	log := &domain.FatigueLog{
		UserID: userID,
		Date:   date,
		Score:  score,
	}
	if err := s.repo.Create(ctx, log); err != nil {
		return nil, "", err
	}
	return log, FatigueOutcomeCreated, nil
}

func (s *fatigueService) List(ctx context.Context, userID uuid.UUID, filter domain.FatigueFilter) (*domain.FatigueListResponse, error) {
	logs, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(logs) > limit
	if hasMore {
		logs = logs[:limit]
	}

	resp := &domain.FatigueListResponse{
		Data: make([]domain.FatigueLogResponse, 0, len(logs)),
	}
	for i := range logs {
		resp.Data = append(resp.Data, logs[i].ToResponse())
	}
	resp.Pagination.HasMore = hasMore
	if hasMore && len(logs) > 0 {
		last := logs[len(logs)-1]
		cursor := pagination.Cursor{ID: last.ID, Date: last.Date}
		resp.Pagination.NextCursor = cursor.Encode()
	}
	return resp, nil
}
