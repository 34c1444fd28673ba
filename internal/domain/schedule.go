package domain

import (
	"time"

	"github.com/google/uuid"
)

// ScheduleEvent is one fixed calendar commitment. EndAt may be null for
// events recorded without a known end; consumers substitute a fixed-width
// placeholder when resolving busy intervals.
type ScheduleEvent struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index:idx_schedule_events_user_start" json:"user_id"`
	Title     string     `gorm:"type:varchar(255);not null" json:"title"`
	StartAt   time.Time  `gorm:"not null;index:idx_schedule_events_user_start" json:"start_at"`
	EndAt     *time.Time `json:"end_at,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (ScheduleEvent) TableName() string {
	return "schedule_events"
}

// CreateScheduleEventRequest is the request body for adding a commitment.
// @Description Request payload for recording a calendar event.
type CreateScheduleEventRequest struct {
	// Event title
	Title string `json:"title" validate:"required,max=255" example:"Morning standup"`
	// Event start in RFC3339 format
	StartAt time.Time `json:"start_at" validate:"required" example:"2024-03-10T09:30:00+09:00"`
	// Optional event end (must be after start_at when present)
	EndAt *time.Time `json:"end_at,omitempty" validate:"omitempty,gtfield=StartAt" example:"2024-03-10T10:00:00+09:00"`
}

// ScheduleEventResponse is the response body for schedule endpoints.
type ScheduleEventResponse struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	Title     string     `json:"title"`
	StartAt   time.Time  `json:"start_at"`
	EndAt     *time.Time `json:"end_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func (e *ScheduleEvent) ToResponse() ScheduleEventResponse {
	return ScheduleEventResponse{
		ID:        e.ID,
		UserID:    e.UserID,
		Title:     e.Title,
		StartAt:   e.StartAt,
		EndAt:     e.EndAt,
		CreatedAt: e.CreatedAt,
	}
}

// ScheduleListResponse is the response body for listing schedule events.
type ScheduleListResponse struct {
	Data []ScheduleEventResponse `json:"data"`
}
