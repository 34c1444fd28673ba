package service

import (
	"context"
	"time"

	"github.com/dkwak/sleepcoach/internal/domain"
	"github.com/google/uuid"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	users map[uuid.UUID]*domain.User
	err   error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{users: make(map[uuid.UUID]*domain.User)}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *MockUserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.users[id]
	return ok, nil
}

func (m *MockUserRepository) TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	if m.err != nil {
		return m.err
	}
	if u, ok := m.users[id]; ok {
		u.LastLoginAt = &at
	}
	return nil
}

// MockSessionRepository is a mock implementation of SessionRepository
type MockSessionRepository struct {
	sessions map[uuid.UUID]*domain.Session
	err      error
}

func NewMockSessionRepository() *MockSessionRepository {
	return &MockSessionRepository{sessions: make(map[uuid.UUID]*domain.Session)}
}

func (m *MockSessionRepository) Create(ctx context.Context, session *domain.Session) error {
	if m.err != nil {
		return m.err
	}
	m.sessions[session.Token] = session
	return nil
}

func (m *MockSessionRepository) GetValid(ctx context.Context, token uuid.UUID, now time.Time) (*domain.Session, error) {
	if m.err != nil {
		return nil, m.err
	}
	session, ok := m.sessions[token]
	if !ok || !session.ExpiresAt.After(now) {
		return nil, domain.ErrNotFound
	}
	return session, nil
}

func (m *MockSessionRepository) Delete(ctx context.Context, token uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	delete(m.sessions, token)
	return nil
}

// MockScheduleRepository is a mock implementation of ScheduleRepository
type MockScheduleRepository struct {
	events []domain.ScheduleEvent
	err    error
}

func NewMockScheduleRepository() *MockScheduleRepository {
	return &MockScheduleRepository{}
}

func (m *MockScheduleRepository) Create(ctx context.Context, event *domain.ScheduleEvent) error {
	if m.err != nil {
		return m.err
	}
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	event.CreatedAt = time.Now()
	m.events = append(m.events, *event)
	return nil
}

func (m *MockScheduleRepository) ListOverlapping(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.ScheduleEvent, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []domain.ScheduleEvent
	for _, e := range m.events {
		if e.UserID != userID {
			continue
		}
		end := e.StartAt.Add(30 * time.Minute)
		if e.EndAt != nil {
			end = *e.EndAt
		}
		if e.StartAt.Before(to) && end.After(from) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *MockScheduleRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	for i := range m.events {
		if m.events[i].ID == id && m.events[i].UserID == userID {
			m.events = append(m.events[:i], m.events[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// MockFatigueRepository is a mock implementation of FatigueRepository
type MockFatigueRepository struct {
	logs []domain.FatigueLog
	err  error
}

func NewMockFatigueRepository() *MockFatigueRepository {
	return &MockFatigueRepository{}
}

func (m *MockFatigueRepository) Create(ctx context.Context, log *domain.FatigueLog) error {
	if m.err != nil {
		return m.err
	}
	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}
	log.CreatedAt = time.Now()
	log.UpdatedAt = log.CreatedAt
	m.logs = append(m.logs, *log)
	return nil
}

func (m *MockFatigueRepository) Update(ctx context.Context, log *domain.FatigueLog) error {
	if m.err != nil {
		return m.err
	}
	for i := range m.logs {
		if m.logs[i].ID == log.ID {
			log.UpdatedAt = time.Now()
			m.logs[i] = *log
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *MockFatigueRepository) GetByDate(ctx context.Context, userID uuid.UUID, date string) (*domain.FatigueLog, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.logs {
		if m.logs[i].UserID == userID && m.logs[i].Date == date {
			log := m.logs[i]
			return &log, nil
		}
	}
	return nil, nil
}

func (m *MockFatigueRepository) ListRange(ctx context.Context, userID uuid.UUID, from, to string) ([]domain.FatigueLog, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []domain.FatigueLog
	for _, l := range m.logs {
		if l.UserID == userID && l.Date >= from && l.Date <= to {
			out = append(out, l)
		}
	}
	return out, nil
}

func (m *MockFatigueRepository) List(ctx context.Context, userID uuid.UUID, filter domain.FatigueFilter) ([]domain.FatigueLog, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []domain.FatigueLog
	for _, l := range m.logs {
		if l.UserID != userID {
			continue
		}
		if filter.From != "" && l.Date < filter.From {
			continue
		}
		if filter.To != "" && l.Date > filter.To {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

// MockPolisher is a mock implementation of llm.Polisher
type MockPolisher struct {
	result string
	err    error
	calls  int
}

func (m *MockPolisher) Polish(ctx context.Context, text string) (string, error) {
	m.calls++
	if m.err != nil {
		return "", m.err
	}
	return m.result, nil
}

func strPtr(s string) *string { return &s }
func intPtr(v int) *int       { return &v }
