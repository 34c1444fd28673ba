package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	// FatigueScoreMin and FatigueScoreMax bound the stored fatigue scale.
	// All thresholds in the recommendation engine use this 0-100 scale.
	FatigueScoreMin = 0
	FatigueScoreMax = 100
)

// FatigueLog is one self-reported fatigue rating. At most one log exists per
// user and civil date; repeated submissions update the existing row.
type FatigueLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_fatigue_logs_user_date" json:"user_id"`
	Date      string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_fatigue_logs_user_date" json:"date"`
	Score     int       `gorm:"type:smallint;not null" json:"score"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (FatigueLog) TableName() string {
	return "fatigue_logs"
}

// UpsertFatigueRequest is the request body for recording a fatigue rating.
// @Description Request payload for logging how tired the user feels.
type UpsertFatigueRequest struct {
	// Civil date the rating belongs to (defaults to today)
	Date *string `json:"date,omitempty" validate:"omitempty,dateymd" example:"2024-03-10"`
	// Fatigue score from 0 (rested) to 100 (exhausted)
	Score int `json:"score" validate:"min=0,max=100" example:"65" minimum:"0" maximum:"100"`
}

// FatigueLogResponse is the response body for fatigue endpoints.
type FatigueLogResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Date      string    `json:"date"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	// Outcome of the upsert: "created", "updated", or "unchanged"
	Outcome string `json:"outcome,omitempty" example:"created"`
}

func (f *FatigueLog) ToResponse() FatigueLogResponse {
	return FatigueLogResponse{
		ID:        f.ID,
		UserID:    f.UserID,
		Date:      f.Date,
		Score:     f.Score,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

// FatigueListResponse is the response body for listing fatigue logs.
// @Description Paginated list of fatigue ratings.
type FatigueListResponse struct {
	Data       []FatigueLogResponse `json:"data"`
	Pagination PaginationResponse   `json:"pagination"`
}

// PaginationResponse contains pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty"`
	// True if more results are available
	HasMore bool `json:"has_more" example:"false"`
}

// FatigueFilter contains filter parameters for listing fatigue logs.
type FatigueFilter struct {
	From   string // inclusive YYYY-MM-DD, optional
	To     string // inclusive YYYY-MM-DD, optional
	Limit  int
	Cursor string
}
