package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Username     string     `gorm:"type:varchar(64);not null;uniqueIndex" json:"username"`
	PasswordHash string     `gorm:"type:varchar(255);not null" json:"-"`
	Name         string     `gorm:"type:varchar(128)" json:"name,omitempty"`
	Timezone     string     `gorm:"type:varchar(64);not null;default:'Asia/Seoul'" json:"timezone"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// RegisterRequest is the request body for creating an account.
// @Description Request payload for user registration.
type RegisterRequest struct {
	// Unique login name, lowercased before storage
	Username string `json:"username" validate:"required,min=3,max=64" example:"nightowl"`
	// Plaintext password, hashed before storage
	Password string `json:"password" validate:"required,min=8,max=128" example:"hunter2hunter2"`
	// Optional display name
	Name string `json:"name,omitempty" validate:"omitempty,max=128" example:"Dana"`
	// Optional IANA timezone (defaults to the server timezone)
	Timezone *string `json:"timezone,omitempty" validate:"omitempty,timezone" example:"Asia/Seoul"`
}

// LoginRequest is the request body for logging in.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse is the public view of a user.
// @Description User account without credentials.
type UserResponse struct {
	ID          uuid.UUID  `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Username    string     `json:"username" example:"nightowl"`
	Name        string     `json:"name,omitempty" example:"Dana"`
	Timezone    string     `json:"timezone" example:"Asia/Seoul"`
	CreatedAt   time.Time  `json:"created_at"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Name:        u.Name,
		Timezone:    u.Timezone,
		CreatedAt:   u.CreatedAt,
		LastLoginAt: u.LastLoginAt,
	}
}

// AuthResponse is returned by register and login. The token is also sent as
// an HTTP-only cookie; the body copy serves non-browser clients.
type AuthResponse struct {
	Token string       `json:"token" example:"550e8400-e29b-41d4-a716-446655440000"`
	User  UserResponse `json:"user"`
}

// Session is a persisted login session, referenced by an opaque token.
type Session struct {
	Token     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"token"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Session) TableName() string {
	return "sessions"
}
