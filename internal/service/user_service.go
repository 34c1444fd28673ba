package service

import (
	"context"
	"strings"
	"time"

	"github.com/dkwak/sleepcoach/internal/domain"
	"github.com/dkwak/sleepcoach/internal/repository"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserService handles account lifecycle and login sessions.
type UserService interface {
	// Register creates an account and an initial session.
	Register(ctx context.Context, req *domain.RegisterRequest) (*domain.User, *domain.Session, error)
	// Login verifies credentials and opens a new session.
	Login(ctx context.Context, req *domain.LoginRequest) (*domain.User, *domain.Session, error)
	// Logout invalidates a session token. Unknown tokens are not an error.
	Logout(ctx context.Context, token uuid.UUID) error
	// Get returns a user by id.
	Get(ctx context.Context, userID uuid.UUID) (*domain.User, error)
}

type userService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	defaultTZ   string
	now         func() time.Time
}

func NewUserService(userRepo repository.UserRepository, sessionRepo repository.SessionRepository, defaultTZ string) UserService {
	return &userService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		defaultTZ:   defaultTZ,
		now:         time.Now,
	}
}

// sessionTTL matches auth.SessionTTL; duplicated here to keep the service
// free of the transport-side auth package.
const sessionTTL = 30 * 24 * time.Hour

func (s *userService) Register(ctx context.Context, req *domain.RegisterRequest) (*domain.User, *domain.Session, error) {
	username := strings.ToLower(strings.TrimSpace(req.Username))

	// Fast check; the unique index still backstops races.
	if _, err := s.userRepo.GetByUsername(ctx, username); err == nil {
		return nil, nil, domain.ErrUsernameTaken
	} else if err != domain.ErrNotFound {
		return nil, nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	tz := s.defaultTZ
	if req.Timezone != nil && *req.Timezone != "" {
		tz = *req.Timezone
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Name:         req.Name,
		Timezone:     tz,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, nil, err
	}

	session, err := s.openSession(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}
	return user, session, nil
}

func (s *userService) Login(ctx context.Context, req *domain.LoginRequest) (*domain.User, *domain.Session, error) {
	username := strings.ToLower(strings.TrimSpace(req.Username))

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, nil, domain.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, nil, domain.ErrInvalidCredentials
	}

	now := s.now()
	if err := s.userRepo.TouchLastLogin(ctx, user.ID, now); err != nil {
		return nil, nil, err
	}
	user.LastLoginAt = &now

	session, err := s.openSession(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}
	return user, session, nil
}

func (s *userService) Logout(ctx context.Context, token uuid.UUID) error {
	return s.sessionRepo.Delete(ctx, token)
}

func (s *userService) Get(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

func (s *userService) openSession(ctx context.Context, userID uuid.UUID) (*domain.Session, error) {
	session := &domain.Session{
		Token:     uuid.New(),
		UserID:    userID,
		ExpiresAt: s.now().Add(sessionTTL),
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}
