package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dkwak/sleepcoach/internal/api/validation"
	"github.com/dkwak/sleepcoach/internal/auth"
	"github.com/dkwak/sleepcoach/internal/domain"
	"github.com/dkwak/sleepcoach/internal/service"
	"github.com/dkwak/sleepcoach/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type ScheduleHandler struct {
	service service.ScheduleService
}

func NewScheduleHandler(service service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{service: service}
}

// Create handles POST /v1/schedule
// @Summary Add a calendar commitment
// @Description Record a fixed event that constrains the sleep window
// @Tags schedule
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param request body domain.CreateScheduleEventRequest true "Event to record"
// @Success 201 {object} domain.ScheduleEventResponse
// @Failure 400 {object} problem.Problem
// @Failure 401 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /schedule [post]
func (h *ScheduleHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		problem.Unauthorized("Authentication required").Write(w)
		return
	}

	var req domain.CreateScheduleEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	event, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		problem.InternalError("Failed to create event").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(event.ToResponse())
}

// List handles GET /v1/schedule
// @Summary List calendar commitments
// @Description List events overlapping an inclusive civil-date range
// @Tags schedule
// @Produce json
// @Security SessionAuth
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} domain.ScheduleListResponse
// @Failure 400 {object} problem.Problem
// @Failure 401 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /schedule [get]
func (h *ScheduleHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		problem.Unauthorized("Authentication required").Write(w)
		return
	}

	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" || to == "" {
		problem.BadRequest("Query parameters from and to are required").Write(w)
		return
	}

	events, err := h.service.ListRange(r.Context(), userID, from, to)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			problem.BadRequest("Invalid date range").Write(w)
			return
		}
		problem.InternalError("Failed to list events").Write(w)
		return
	}

	resp := domain.ScheduleListResponse{Data: make([]domain.ScheduleEventResponse, 0, len(events))}
	for i := range events {
		resp.Data = append(resp.Data, events[i].ToResponse())
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// Delete handles DELETE /v1/schedule/{eventId}
// @Summary Remove a calendar commitment
// @Tags schedule
// @Security SessionAuth
// @Param eventId path string true "Event ID" format(uuid)
// @Success 204
// @Failure 400 {object} problem.Problem
// @Failure 401 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /schedule/{eventId} [delete]
func (h *ScheduleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		problem.Unauthorized("Authentication required").Write(w)
		return
	}

	eventID, err := uuid.Parse(chi.URLParam(r, "eventId"))
	if err != nil {
		problem.BadRequest("Invalid event ID format").Write(w)
		return
	}

	if err := h.service.Delete(r.Context(), userID, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Event not found").Write(w)
			return
		}
		problem.InternalError("Failed to delete event").Write(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
