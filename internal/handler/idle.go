package handler

import (
	"net/http"

	"github.com/osse101/Skirmish_Go/internal/domain"
	"github.com/osse101/Skirmish_Go/internal/idle"
	"github.com/osse101/Skirmish_Go/internal/mission"
)

// IdleHandler serves the once-per-day idle results
type IdleHandler struct {
	service idle.Service
}

// NewIdleHandler creates a new idle handler
func NewIdleHandler(service idle.Service) *IdleHandler {
	return &IdleHandler{service: service}
}

// DailyRequest is the body of POST /idle/daily. MaxRuns 0 uses the tier count.
type DailyRequest struct {
	Hero    HeroRequest `json:"hero"`
	MaxRuns int         `json:"max_runs" validate:"gte=0"`
}

// DailyResponse carries the day's result and its rendered summary
type DailyResponse struct {
	*domain.DailyResult
	Summary string `json:"summary"`
}

// HandleDaily returns today's result for a hero, running it on first request
func (h *IdleHandler) HandleDaily(w http.ResponseWriter, r *http.Request) {
	var req DailyRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Daily result"); err != nil {
		return
	}

	result, err := h.service.GetOrRunDailyResult(r.Context(), req.Hero.Snapshot(), req.MaxRuns)
	if err != nil {
		respondServiceError(w, r, ErrMsgDailyResultFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, DailyResponse{
		DailyResult: result,
		Summary:     mission.FormatDaily(result),
	})
}
