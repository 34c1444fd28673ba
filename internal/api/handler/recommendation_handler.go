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
)

type RecommendationHandler struct {
	service service.RecommendationService
}

func NewRecommendationHandler(service service.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{service: service}
}

// Recommend handles POST /v1/recommendations
// @Summary Compute a sleep-window recommendation
// @Description Fit the best sleep window around the day's commitments and recent fatigue. Requires either wake_time or earliest_bedtime. An infeasible window returns 200 with feasible=false.
// @Tags recommendations
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param request body domain.RecommendationRequest true "Recommendation request"
// @Success 200 {object} domain.RecommendationResponse
// @Failure 400 {object} problem.Problem
// @Failure 401 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /recommendations [post]
func (h *RecommendationHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		problem.Unauthorized("Authentication required").Write(w)
		return
	}

	var req domain.RecommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	resp, err := h.service.Recommend(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingAnchor):
			problem.BadRequest("Either wake_time or earliest_bedtime is required").Write(w)
		case errors.Is(err, domain.ErrInvalidInput):
			problem.BadRequest("Invalid date or time value").Write(w)
		case errors.Is(err, domain.ErrNotFound):
			problem.NotFound("User not found").Write(w)
		default:
			problem.InternalError("Failed to compute recommendation").Write(w)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
