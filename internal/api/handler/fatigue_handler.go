package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/dkwak/sleepcoach/internal/api/validation"
	"github.com/dkwak/sleepcoach/internal/auth"
	"github.com/dkwak/sleepcoach/internal/domain"
	"github.com/dkwak/sleepcoach/internal/service"
	"github.com/dkwak/sleepcoach/pkg/problem"
)

type FatigueHandler struct {
	service service.FatigueService
}

func NewFatigueHandler(service service.FatigueService) *FatigueHandler {
	return &FatigueHandler{service: service}
}

// Upsert handles POST /v1/fatigue
// @Summary Record a fatigue rating
// @Description Record how tired the user feels for a date; a repeated submission updates the existing rating
// @Tags fatigue
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param request body domain.UpsertFatigueRequest true "Fatigue rating"
// @Success 200 {object} domain.FatigueLogResponse
// @Success 201 {object} domain.FatigueLogResponse
// @Failure 400 {object} problem.Problem
// @Failure 401 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /fatigue [post]
func (h *FatigueHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		problem.Unauthorized("Authentication required").Write(w)
		return
	}

	var req domain.UpsertFatigueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	log, outcome, err := h.service.Upsert(r.Context(), userID, &req)
	if err != nil {
		problem.InternalError("Failed to record fatigue").Write(w)
		return
	}

	resp := log.ToResponse()
	resp.Outcome = outcome

	w.Header().Set("Content-Type", "application/json")
	if outcome == service.FatigueOutcomeCreated {
		w.WriteHeader(http.StatusCreated)
	}
	json.NewEncoder(w).Encode(resp)
}

// List handles GET /v1/fatigue
// @Summary List fatigue ratings
// @Description List ratings newest-last with cursor pagination and an optional date range
// @Tags fatigue
// @Produce json
// @Security SessionAuth
// @Param from query string false "Inclusive range start (YYYY-MM-DD)"
// @Param to query string false "Inclusive range end (YYYY-MM-DD)"
// @Param limit query int false "Page size (default 20, max 100)"
// @Param cursor query string false "Cursor from a previous page"
// @Success 200 {object} domain.FatigueListResponse
// @Failure 400 {object} problem.Problem
// @Failure 401 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /fatigue [get]
func (h *FatigueHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		problem.Unauthorized("Authentication required").Write(w)
		return
	}

	q := r.URL.Query()
	filter := domain.FatigueFilter{
		From:   q.Get("from"),
		To:     q.Get("to"),
		Cursor: q.Get("cursor"),
	}
	for _, date := range []string{filter.From, filter.To} {
		if date == "" {
			continue
		}
		if _, err := time.Parse("2006-01-02", date); err != nil {
			problem.BadRequest("Dates must be in YYYY-MM-DD form").Write(w)
			return
		}
	}
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			problem.BadRequest("Limit must be an integer").Write(w)
			return
		}
		filter.Limit = limit
	}

	resp, err := h.service.List(r.Context(), userID, filter)
	if err != nil {
		problem.InternalError("Failed to list fatigue logs").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
