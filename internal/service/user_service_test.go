package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dkwak/sleepcoach/internal/domain"
	"github.com/google/uuid"
)

func newTestUserService(users *MockUserRepository, sessions *MockSessionRepository) *userService {
	svc := NewUserService(users, sessions, "Asia/Seoul").(*userService)
	svc.now = func() time.Time { return time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC) }
	return svc
}

func TestRegister_Success(t *testing.T) {
	users := NewMockUserRepository()
	sessions := NewMockSessionRepository()
	svc := newTestUserService(users, sessions)

	req := &domain.RegisterRequest{Username: "  Dana  ", Password: "hunter2hunter2", Name: "Dana"}
	user, session, err := svc.Register(context.Background(), req)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if user.Username != "dana" {
		t.Errorf("expected lowercased trimmed username, got %q", user.Username)
	}
	if user.PasswordHash == req.Password || user.PasswordHash == "" {
		t.Error("expected password to be hashed")
	}
	if user.Timezone != "Asia/Seoul" {
		t.Errorf("expected default timezone, got %q", user.Timezone)
	}
	if session.UserID != user.ID {
		t.Error("expected session bound to the new user")
	}
	if !session.ExpiresAt.After(svc.now()) {
		t.Error("expected session to expire in the future")
	}
}

func TestRegister_UsernameTaken(t *testing.T) {
	users := NewMockUserRepository()
	sessions := NewMockSessionRepository()
	svc := newTestUserService(users, sessions)

	if _, _, err := svc.Register(context.Background(), &domain.RegisterRequest{Username: "dana", Password: "hunter2hunter2"}); err != nil {
		t.Fatalf("seed register: %v", err)
	}

	_, _, err := svc.Register(context.Background(), &domain.RegisterRequest{Username: "DANA", Password: "hunter2hunter2"})
	if !errors.Is(err, domain.ErrUsernameTaken) {
		t.Errorf("expected ErrUsernameTaken for case-insensitive duplicate, got %v", err)
	}
}

func TestRegister_CustomTimezone(t *testing.T) {
	users := NewMockUserRepository()
	sessions := NewMockSessionRepository()
	svc := newTestUserService(users, sessions)

	tz := "Europe/Warsaw"
	user, _, err := svc.Register(context.Background(), &domain.RegisterRequest{Username: "blaise", Password: "hunter2hunter2", Timezone: &tz})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if user.Timezone != tz {
		t.Errorf("expected timezone %q, got %q", tz, user.Timezone)
	}
}

func TestLogin_Success(t *testing.T) {
	users := NewMockUserRepository()
	sessions := NewMockSessionRepository()
	svc := newTestUserService(users, sessions)

	if _, _, err := svc.Register(context.Background(), &domain.RegisterRequest{Username: "dana", Password: "hunter2hunter2"}); err != nil {
		t.Fatalf("seed register: %v", err)
	}

	user, session, err := svc.Login(context.Background(), &domain.LoginRequest{Username: "dana", Password: "hunter2hunter2"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if user.LastLoginAt == nil {
		t.Error("expected last login timestamp to be set")
	}
	if _, err := sessions.GetValid(context.Background(), session.Token, svc.now()); err != nil {
		t.Errorf("expected the new session to be valid, got %v", err)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	users := NewMockUserRepository()
	sessions := NewMockSessionRepository()
	svc := newTestUserService(users, sessions)

	if _, _, err := svc.Register(context.Background(), &domain.RegisterRequest{Username: "dana", Password: "hunter2hunter2"}); err != nil {
		t.Fatalf("seed register: %v", err)
	}

	_, _, err := svc.Login(context.Background(), &domain.LoginRequest{Username: "dana", Password: "wrong-password"})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_UnknownUser(t *testing.T) {
	svc := newTestUserService(NewMockUserRepository(), NewMockSessionRepository())

	_, _, err := svc.Login(context.Background(), &domain.LoginRequest{Username: "ghost", Password: "hunter2hunter2"})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
}

func TestLogout_InvalidatesSession(t *testing.T) {
	users := NewMockUserRepository()
	sessions := NewMockSessionRepository()
	svc := newTestUserService(users, sessions)

	_, session, err := svc.Register(context.Background(), &domain.RegisterRequest{Username: "dana", Password: "hunter2hunter2"})
	if err != nil {
		t.Fatalf("seed register: %v", err)
	}

	if err := svc.Logout(context.Background(), session.Token); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, err := sessions.GetValid(context.Background(), session.Token, svc.now()); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected the session to be gone, got %v", err)
	}
}

func TestGet_UnknownUser(t *testing.T) {
	svc := newTestUserService(NewMockUserRepository(), NewMockSessionRepository())

	_, err := svc.Get(context.Background(), uuid.New())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
