package domain

import "time"

// RecommendationRequest is the request body for a sleep-window recommendation.
// Exactly one anchor is required: wake_time (fixed wake, Mode A) or
// earliest_bedtime (fixed bedtime, Mode B). When both are present wake_time
// wins. Times may be HH:MM, H:MM am/pm, or an RFC3339 timestamp.
// @Description Request payload for computing a recommended sleep window.
type RecommendationRequest struct {
	// Target civil date (defaults to today in the server timezone)
	Date *string `json:"date,omitempty" validate:"omitempty,dateymd" example:"2024-03-10"`
	// Required wake time anchor
	WakeTime *string `json:"wake_time,omitempty" validate:"omitempty,max=40" example:"07:00"`
	// Earliest acceptable bedtime anchor
	EarliestBedtime *string `json:"earliest_bedtime,omitempty" validate:"omitempty,max=40" example:"23:00"`
	// Minutes needed to fall asleep (clamped to 1-60)
	SolMinutes *int `json:"sol_minutes,omitempty" validate:"omitempty,min=1,max=60" example:"20" minimum:"1" maximum:"60"`
}

// SleepPlanResponse is the computed sleep interval.
// @Description Recommended sleep interval. wake_at - sleep_start equals
// sleep_minutes plus the sleep onset latency.
type SleepPlanResponse struct {
	// When to lie down
	SleepStart time.Time `json:"sleep_start" example:"2024-03-10T23:10:00+09:00"`
	// When to wake up
	WakeAt time.Time `json:"wake_at" example:"2024-03-11T07:00:00+09:00"`
	// The same instants rendered as "YYYY-MM-DD HH:MM" in the server timezone
	SleepStartLocal string `json:"sleep_start_local" example:"2024-03-10 23:10"`
	WakeAtLocal     string `json:"wake_at_local" example:"2024-03-11 07:00"`
	// Minutes actually asleep (excludes onset latency)
	SleepMinutes int `json:"sleep_minutes" example:"450"`
}

// RecommendationMeta describes the inputs the recommendation was derived from.
type RecommendationMeta struct {
	// Target date of the recommendation
	Date string `json:"date" example:"2024-03-10"`
	// Busy intervals found on the target date
	BusyIntervalCount int `json:"busy_interval_count" example:"2"`
	// Mean fatigue over the trailing 7 days (null when no samples)
	FatigueAvg *int `json:"fatigue_avg" example:"65"`
	// Sleep onset latency used, in minutes
	SolMinutes int `json:"sol_minutes" example:"20"`
}

// RecommendationResponse is the response body for the recommendation endpoint.
// @Description Sleep-window recommendation. feasible=false is a valid outcome
// meaning no candidate duration fits the available window.
type RecommendationResponse struct {
	// True when a sleep plan was found
	Feasible bool `json:"feasible" example:"true"`
	// The recommended interval (null when infeasible)
	Plan *SleepPlanResponse `json:"plan,omitempty"`
	// Human-readable recommendation text
	Text string `json:"text"`
	// "polished" when the text came back from the language model, otherwise "deterministic"
	Source string `json:"source" example:"deterministic"`
	// Inputs the recommendation was derived from
	Meta RecommendationMeta `json:"meta"`
}
