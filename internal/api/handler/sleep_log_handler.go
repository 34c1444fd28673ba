package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/dkwak/sleepcoach/internal/api/validation"
	"github.com/dkwak/sleepcoach/internal/auth"
	"github.com/dkwak/sleepcoach/internal/domain"
	"github.com/dkwak/sleepcoach/internal/service"
	"github.com/dkwak/sleepcoach/pkg/problem"
)

type SleepLogHandler struct {
	service service.SleepLogService
}

func NewSleepLogHandler(service service.SleepLogService) *SleepLogHandler {
	return &SleepLogHandler{service: service}
}

// Get handles GET /v1/sleep
// @Summary Get the sleep record for a date
// @Description A date without a record yields an empty record, not a 404
// @Tags sleep
// @Produce json
// @Security SessionAuth
// @Param date query string true "Civil date (YYYY-MM-DD)"
// @Success 200 {object} domain.SleepLogResponse
// @Failure 400 {object} problem.Problem
// @Failure 401 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /sleep [get]
func (h *SleepLogHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		problem.Unauthorized("Authentication required").Write(w)
		return
	}

	date := r.URL.Query().Get("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		problem.BadRequest("Query parameter date must be in YYYY-MM-DD form").Write(w)
		return
	}

	resp, err := h.service.Get(r.Context(), userID, date)
	if err != nil {
		problem.InternalError("Failed to get sleep record").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// Upsert handles POST /v1/sleep
// @Summary Record sleep times for a date
// @Description Merge the supplied bedtime and wake time into the record for the date
// @Tags sleep
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param request body domain.UpsertSleepLogRequest true "Sleep times"
// @Success 200 {object} domain.SleepLogResponse
// @Failure 400 {object} problem.Problem
// @Failure 401 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /sleep [post]
func (h *SleepLogHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		problem.Unauthorized("Authentication required").Write(w)
		return
	}

	var req domain.UpsertSleepLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	log, err := h.service.Upsert(r.Context(), userID, &req)
	if err != nil {
		problem.InternalError("Failed to record sleep times").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(log.ToResponse())
}
