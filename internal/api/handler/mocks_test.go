package handler

import (
	"context"
	"time"

	"github.com/dkwak/sleepcoach/internal/domain"
	"github.com/dkwak/sleepcoach/internal/service"
	"github.com/google/uuid"
)

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	registerFunc func(ctx context.Context, req *domain.RegisterRequest) (*domain.User, *domain.Session, error)
	loginFunc    func(ctx context.Context, req *domain.LoginRequest) (*domain.User, *domain.Session, error)
	logoutFunc   func(ctx context.Context, token uuid.UUID) error
	getFunc      func(ctx context.Context, userID uuid.UUID) (*domain.User, error)
}

func mockUserAndSession() (*domain.User, *domain.Session) {
	user := &domain.User{ID: uuid.New(), Username: "dana", Timezone: "Asia/Seoul", CreatedAt: time.Now()}
	session := &domain.Session{Token: uuid.New(), UserID: user.ID, ExpiresAt: time.Now().Add(time.Hour)}
	return user, session
}

func (m *MockUserService) Register(ctx context.Context, req *domain.RegisterRequest) (*domain.User, *domain.Session, error) {
	if m.registerFunc != nil {
		return m.registerFunc(ctx, req)
	}
	user, session := mockUserAndSession()
	return user, session, nil
}

func (m *MockUserService) Login(ctx context.Context, req *domain.LoginRequest) (*domain.User, *domain.Session, error) {
	if m.loginFunc != nil {
		return m.loginFunc(ctx, req)
	}
	user, session := mockUserAndSession()
	return user, session, nil
}

func (m *MockUserService) Logout(ctx context.Context, token uuid.UUID) error {
	if m.logoutFunc != nil {
		return m.logoutFunc(ctx, token)
	}
	return nil
}

func (m *MockUserService) Get(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, userID)
	}
	return nil, domain.ErrNotFound
}

// MockScheduleService is a mock implementation of ScheduleService
type MockScheduleService struct {
	createFunc    func(ctx context.Context, userID uuid.UUID, req *domain.CreateScheduleEventRequest) (*domain.ScheduleEvent, error)
	listRangeFunc func(ctx context.Context, userID uuid.UUID, fromDate, toDate string) ([]domain.ScheduleEvent, error)
	deleteFunc    func(ctx context.Context, userID, eventID uuid.UUID) error
}

func (m *MockScheduleService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateScheduleEventRequest) (*domain.ScheduleEvent, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, userID, req)
	}
	return &domain.ScheduleEvent{
		ID:      uuid.New(),
		UserID:  userID,
		Title:   req.Title,
		StartAt: req.StartAt,
		EndAt:   req.EndAt,
	}, nil
}

func (m *MockScheduleService) ListRange(ctx context.Context, userID uuid.UUID, fromDate, toDate string) ([]domain.ScheduleEvent, error) {
	if m.listRangeFunc != nil {
		return m.listRangeFunc(ctx, userID, fromDate, toDate)
	}
	return nil, nil
}

func (m *MockScheduleService) Delete(ctx context.Context, userID, eventID uuid.UUID) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, userID, eventID)
	}
	return nil
}

// MockFatigueService is a mock implementation of FatigueService
type MockFatigueService struct {
	upsertFunc func(ctx context.Context, userID uuid.UUID, req *domain.UpsertFatigueRequest) (*domain.FatigueLog, string, error)
	listFunc   func(ctx context.Context, userID uuid.UUID, filter domain.FatigueFilter) (*domain.FatigueListResponse, error)
}

func (m *MockFatigueService) Upsert(ctx context.Context, userID uuid.UUID, req *domain.UpsertFatigueRequest) (*domain.FatigueLog, string, error) {
	if m.upsertFunc != nil {
		return m.upsertFunc(ctx, userID, req)
	}
	date := "2025-03-10"
	if req.Date != nil {
		date = *req.Date
	}
	return &domain.FatigueLog{ID: uuid.New(), UserID: userID, Date: date, Score: req.Score}, service.FatigueOutcomeCreated, nil
}

func (m *MockFatigueService) List(ctx context.Context, userID uuid.UUID, filter domain.FatigueFilter) (*domain.FatigueListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, filter)
	}
	return &domain.FatigueListResponse{Data: []domain.FatigueLogResponse{}}, nil
}

// MockSleepLogService is a mock implementation of SleepLogService
type MockSleepLogService struct {
	getFunc    func(ctx context.Context, userID uuid.UUID, date string) (*domain.SleepLogResponse, error)
	upsertFunc func(ctx context.Context, userID uuid.UUID, req *domain.UpsertSleepLogRequest) (*domain.SleepLog, error)
}

func (m *MockSleepLogService) Get(ctx context.Context, userID uuid.UUID, date string) (*domain.SleepLogResponse, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, userID, date)
	}
	return &domain.SleepLogResponse{Date: date}, nil
}

func (m *MockSleepLogService) Upsert(ctx context.Context, userID uuid.UUID, req *domain.UpsertSleepLogRequest) (*domain.SleepLog, error) {
	if m.upsertFunc != nil {
		return m.upsertFunc(ctx, userID, req)
	}
	return &domain.SleepLog{ID: uuid.New(), UserID: userID, Date: req.Date, SleepStart: req.SleepStart, SleepEnd: req.SleepEnd}, nil
}

// MockRecommendationService is a mock implementation of RecommendationService
type MockRecommendationService struct {
	recommendFunc func(ctx context.Context, userID uuid.UUID, req *domain.RecommendationRequest) (*domain.RecommendationResponse, error)
}

func (m *MockRecommendationService) Recommend(ctx context.Context, userID uuid.UUID, req *domain.RecommendationRequest) (*domain.RecommendationResponse, error) {
	if m.recommendFunc != nil {
		return m.recommendFunc(ctx, userID, req)
	}
	return &domain.RecommendationResponse{Feasible: false, Text: "no plan"}, nil
}
