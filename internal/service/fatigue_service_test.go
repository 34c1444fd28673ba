package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/dkwak/sleepcoach/internal/domain"
	"github.com/google/uuid"
)

func newTestFatigueService(repo *MockFatigueRepository) *fatigueService {
	svc := NewFatigueService(repo, recTestLoc).(*fatigueService)
	svc.now = func() time.Time { return time.Date(2025, 3, 10, 12, 0, 0, 0, recTestLoc) }
	return svc
}

func TestFatigueUpsert_Outcomes(t *testing.T) {
	repo := NewMockFatigueRepository()
	svc := newTestFatigueService(repo)
	userID := uuid.New()

	req := &domain.UpsertFatigueRequest{Date: strPtr("2025-03-10"), Score: 60}

	log, outcome, err := svc.Upsert(context.Background(), userID, req)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if outcome != FatigueOutcomeCreated {
		t.Errorf("expected created, got %q", outcome)
	}
	if log.Score != 60 {
		t.Errorf("expected score 60, got %d", log.Score)
	}

	// Same score again is a no-op.
	_, outcome, err = svc.Upsert(context.Background(), userID, req)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if outcome != FatigueOutcomeUnchanged {
		t.Errorf("expected unchanged, got %q", outcome)
	}

	req.Score = 75
	log, outcome, err = svc.Upsert(context.Background(), userID, req)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if outcome != FatigueOutcomeUpdated {
		t.Errorf("expected updated, got %q", outcome)
	}
	if log.Score != 75 {
		t.Errorf("expected score 75, got %d", log.Score)
	}

	if n := len(repo.logs); n != 1 {
		t.Errorf("expected a single row per date, got %d", n)
	}
}

func TestFatigueUpsert_DefaultsDateToToday(t *testing.T) {
	svc := newTestFatigueService(NewMockFatigueRepository())

	log, _, err := svc.Upsert(context.Background(), uuid.New(), &domain.UpsertFatigueRequest{Score: 40})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if log.Date != "2025-03-10" {
		t.Errorf("expected today's date, got %q", log.Date)
	}
}

func TestFatigueUpsert_ClampsScore(t *testing.T) {
	svc := newTestFatigueService(NewMockFatigueRepository())

	log, _, err := svc.Upsert(context.Background(), uuid.New(), &domain.UpsertFatigueRequest{Date: strPtr("2025-03-10"), Score: 140})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if log.Score != domain.FatigueScoreMax {
		t.Errorf("expected score clamped to %d, got %d", domain.FatigueScoreMax, log.Score)
	}
}

func TestFatigueList_Pagination(t *testing.T) {
	repo := NewMockFatigueRepository()
	svc := newTestFatigueService(repo)
	userID := uuid.New()

	for i := 1; i <= 5; i++ {
		log := &domain.FatigueLog{UserID: userID, Date: fmt.Sprintf("2025-03-%02d", i), Score: 50}
		if err := repo.Create(context.Background(), log); err != nil {
			t.Fatalf("seed log: %v", err)
		}
	}

	resp, err := svc.List(context.Background(), userID, domain.FatigueFilter{Limit: 3})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(resp.Data) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(resp.Data))
	}
	if !resp.Pagination.HasMore {
		t.Error("expected more rows to be available")
	}
	if resp.Pagination.NextCursor == "" {
		t.Error("expected a next cursor")
	}

	resp, err = svc.List(context.Background(), userID, domain.FatigueFilter{Limit: 10})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(resp.Data) != 5 || resp.Pagination.HasMore {
		t.Errorf("expected all 5 rows with no more, got %d hasMore=%v", len(resp.Data), resp.Pagination.HasMore)
	}
}
