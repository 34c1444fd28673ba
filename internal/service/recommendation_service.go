package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dkwak/sleepcoach/internal/domain"
	"github.com/dkwak/sleepcoach/internal/engine"
	"github.com/dkwak/sleepcoach/internal/llm"
	"github.com/dkwak/sleepcoach/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultSolMinutes is the assumed sleep onset latency when the request
	// does not supply one.
	DefaultSolMinutes = 20
	minSolMinutes     = 1
	maxSolMinutes     = 60

	// FatigueWindowDays is the inclusive trailing window feeding the
	// duration preference.
	FatigueWindowDays = 7

	// polishTimeout bounds the best-effort text polishing call. The
	// deterministic text is already in hand before this starts.
	polishTimeout = 5 * time.Second
)

// Text sources reported in the response.
const (
	SourceDeterministic = "deterministic"
	SourcePolished      = "polished"
)

// RecommendationService computes sleep-window recommendations.
type RecommendationService interface {
	// Recommend computes a sleep plan for the request. An infeasible window
	// is a successful response with Feasible=false, not an error.
	Recommend(ctx context.Context, userID uuid.UUID, req *domain.RecommendationRequest) (*domain.RecommendationResponse, error)
}

type recommendationService struct {
	scheduleRepo repository.ScheduleRepository
	fatigueRepo  repository.FatigueRepository
	userRepo     repository.UserRepository
	polisher     llm.Polisher
	loc          *time.Location
	logger       *zap.Logger
	now          func() time.Time
}

// NewRecommendationService creates a RecommendationService. The location and
// clock are explicit dependencies so the engine stays a pure function of its
// inputs.
func NewRecommendationService(
	scheduleRepo repository.ScheduleRepository,
	fatigueRepo repository.FatigueRepository,
	userRepo repository.UserRepository,
	polisher llm.Polisher,
	loc *time.Location,
	logger *zap.Logger,
) RecommendationService {
	return &recommendationService{
		scheduleRepo: scheduleRepo,
		fatigueRepo:  fatigueRepo,
		userRepo:     userRepo,
		polisher:     polisher,
		loc:          loc,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *recommendationService) Recommend(ctx context.Context, userID uuid.UUID, req *domain.RecommendationRequest) (*domain.RecommendationResponse, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	if req.WakeTime == nil && req.EarliestBedtime == nil {
		return nil, domain.ErrMissingAnchor
	}

	dateStr := engine.FormatDate(s.now(), s.loc)
	if req.Date != nil && *req.Date != "" {
		dateStr = *req.Date
	}
	dayStart, dayEnd, err := engine.DayWindow(dateStr, s.loc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	sol := DefaultSolMinutes
	if req.SolMinutes != nil {
		sol = clamp(*req.SolMinutes, minSolMinutes, maxSolMinutes)
	}

	// Parse anchors before touching the stores.
	var suppliedBed, wakeAt *time.Time
	if req.EarliestBedtime != nil {
		t, err := s.parseAnchor(dateStr, *req.EarliestBedtime)
		if err != nil {
			return nil, err
		}
		suppliedBed = &t
	}
	if req.WakeTime != nil {
		t, err := s.parseAnchor(dateStr, *req.WakeTime)
		if err != nil {
			return nil, err
		}
		wakeAt = &t
	}

	// Busy intervals and fatigue history have no dependency on each other;
	// fetch them concurrently. A store failure fails the whole request: a
	// plan computed without commitments data could overlap a real event.
	var (
		busyToday, busyNight []engine.BusyInterval
		fatigue              engine.FatigueSummary
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		// The sleep night runs past midnight, so the next day's early
		// commitments constrain it too.
		nextDayEnd := dayEnd.AddDate(0, 0, 1)
		events, err := s.scheduleRepo.ListOverlapping(gctx, userID, dayStart, nextDayEnd)
		if err != nil {
			return fmt.Errorf("resolve busy intervals: %w", err)
		}
		raw := toRawEvents(events)
		busyToday = engine.ResolveBusyIntervals(raw, dayStart, dayEnd)
		busyNight = append(busyToday, engine.ResolveBusyIntervals(raw, dayEnd, nextDayEnd)...)
		return nil
	})
	g.Go(func() error {
		from := engine.FormatDate(dayStart.AddDate(0, 0, -(FatigueWindowDays-1)), s.loc)
		logs, err := s.fatigueRepo.ListRange(gctx, userID, from, dateStr)
		if err != nil {
			return fmt.Errorf("aggregate fatigue: %w", err)
		}
		fatigue = engine.AggregateFatigue(toFatigueSamples(logs))
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	preferred := engine.PreferredDurationMinutes(fatigue.Avg)

	minBed, err := engine.MinimumBedtime(dateStr, s.loc, busyToday, suppliedBed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	var plan *engine.SleepPlan
	if wakeAt != nil {
		// Mode A: the wake anchor is hard. A wake time-of-day at or before
		// the bedtime belongs to the next morning.
		wake := *wakeAt
		if !wake.After(minBed) && isTimeOfDay(*req.WakeTime) {
			wake = wake.AddDate(0, 0, 1)
		}
		if wake.After(minBed) {
			plan = engine.FitByWake(minBed, wake, sol, preferred, busyNight)
		}
	} else {
		limit, err := engine.NextHardLimit(dateStr, s.loc, minBed, busyNight)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		plan = engine.FitByBedStart(minBed, limit, sol, preferred)
	}

	resp := &domain.RecommendationResponse{
		Source: SourceDeterministic,
		Meta: domain.RecommendationMeta{
			Date:              dateStr,
			BusyIntervalCount: len(busyToday),
			FatigueAvg:        fatigue.Avg,
			SolMinutes:        sol,
		},
	}

	if plan == nil {
		resp.Text = engine.InfeasibleText
		return resp, nil
	}

	resp.Feasible = true
	resp.Plan = &domain.SleepPlanResponse{
		SleepStart:      plan.SleepStart.In(s.loc),
		WakeAt:          plan.WakeAt.In(s.loc),
		SleepStartLocal: engine.FormatFull(plan.SleepStart, s.loc),
		WakeAtLocal:     engine.FormatFull(plan.WakeAt, s.loc),
		SleepMinutes:    plan.SleepMinutes,
	}
	resp.Text = engine.FormatPlan(plan, sol, s.loc)
	resp.Text, resp.Source = s.polish(ctx, resp.Text)
	return resp, nil
}

// polish attempts the best-effort rewrite. Any failure, timeout, or altered
// time value falls back to the deterministic text.
func (s *recommendationService) polish(ctx context.Context, text string) (string, string) {
	if s.polisher == nil {
		return text, SourceDeterministic
	}

	pctx, cancel := context.WithTimeout(ctx, polishTimeout)
	defer cancel()

	polished, err := s.polisher.Polish(pctx, text)
	if err != nil {
		if !errors.Is(err, llm.ErrUnavailable) {
			s.logger.Warn("text polish failed, using deterministic text", zap.Error(err))
		}
		return text, SourceDeterministic
	}
	if !engine.SameClockTokens(text, polished) {
		s.logger.Warn("polished text altered time values, discarding",
			zap.String("original", text), zap.String("polished", polished))
		return text, SourceDeterministic
	}
	return polished, SourcePolished
}

func (s *recommendationService) parseAnchor(dateStr, raw string) (time.Time, error) {
	if tod, err := engine.ParseTimeOfDay(raw); err == nil {
		return engine.InstantAt(dateStr, tod.Hour, tod.Minute, s.loc)
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: unrecognized time %q", domain.ErrInvalidInput, raw)
}

func isTimeOfDay(raw string) bool {
	_, err := engine.ParseTimeOfDay(raw)
	return err == nil
}

func toRawEvents(events []domain.ScheduleEvent) []engine.RawEvent {
	raw := make([]engine.RawEvent, 0, len(events))
	for _, e := range events {
		raw = append(raw, engine.RawEvent{Title: e.Title, StartAt: e.StartAt, EndAt: e.EndAt})
	}
	return raw
}

func toFatigueSamples(logs []domain.FatigueLog) []engine.FatigueSample {
	samples := make([]engine.FatigueSample, 0, len(logs))
	for _, l := range logs {
		samples = append(samples, engine.FatigueSample{Date: l.Date, Score: l.Score})
	}
	return samples
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
