package domain

import (
	"time"

	"github.com/google/uuid"
)

// SleepLog is the user's own record of when they actually slept on a given
// civil date. One row per user and date; either endpoint may be missing while
// the night is still in progress.
type SleepLog struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_sleep_logs_user_date" json:"user_id"`
	Date       string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_sleep_logs_user_date" json:"date"`
	SleepStart *string   `gorm:"type:varchar(5)" json:"sleep_start,omitempty"`
	SleepEnd   *string   `gorm:"type:varchar(5)" json:"sleep_end,omitempty"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (SleepLog) TableName() string {
	return "sleep_logs"
}

// UpsertSleepLogRequest is the request body for recording sleep times.
// @Description Request payload for recording when the user slept.
type UpsertSleepLogRequest struct {
	// Civil date the record belongs to
	Date string `json:"date" validate:"required,dateymd" example:"2024-03-10"`
	// Bedtime as HH:MM, optional
	SleepStart *string `json:"sleep_start,omitempty" validate:"omitempty,timeofday" example:"23:10"`
	// Wake time as HH:MM, optional
	SleepEnd *string `json:"sleep_end,omitempty" validate:"omitempty,timeofday" example:"07:00"`
}

// SleepLogResponse is the response body for sleep log endpoints.
type SleepLogResponse struct {
	Date       string  `json:"date"`
	SleepStart *string `json:"sleep_start"`
	SleepEnd   *string `json:"sleep_end"`
}

func (s *SleepLog) ToResponse() SleepLogResponse {
	return SleepLogResponse{
		Date:       s.Date,
		SleepStart: s.SleepStart,
		SleepEnd:   s.SleepEnd,
	}
}
