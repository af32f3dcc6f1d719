package handler

import (
	"net/http"

	"github.com/osse101/Skirmish_Go/internal/domain"
	"github.com/osse101/Skirmish_Go/internal/logger"
	"github.com/osse101/Skirmish_Go/internal/mission"
)

// MissionHandler serves mission previews and auto-resolved encounters
type MissionHandler struct {
	service mission.Service
}

// NewMissionHandler creates a new mission handler
func NewMissionHandler(service mission.Service) *MissionHandler {
	return &MissionHandler{service: service}
}

// GenerateMissionRequest is the body of POST /missions/generate
type GenerateMissionRequest struct {
	Hero HeroRequest `json:"hero"`
}

// ResolveMissionRequest is the body of POST /missions/resolve. An empty
// enemy list fights the roster for the hero's level.
type ResolveMissionRequest struct {
	Hero    HeroRequest    `json:"hero"`
	Enemies []EnemyRequest `json:"enemies" validate:"omitempty,max=10,dive"`
}

// ResolveMissionResponse carries the result and its rendered journal
type ResolveMissionResponse struct {
	*domain.CombatResult
	Summary string `json:"summary"`
}

// HandleGenerate previews the mission for a hero's level
func (h *MissionHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req GenerateMissionRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Generate mission"); err != nil {
		return
	}

	plan, err := h.service.GenerateMission(r.Context(), req.Hero.Snapshot())
	if err != nil {
		respondServiceError(w, r, ErrMsgGenerateMissionFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, plan)
}

// HandleResolve auto-resolves one encounter
func (h *MissionHandler) HandleResolve(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req ResolveMissionRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Resolve mission"); err != nil {
		return
	}

	hero := req.Hero.Snapshot()

	var (
		result *domain.CombatResult
		err    error
	)
	if len(req.Enemies) == 0 {
		result, err = h.service.ResolveMission(r.Context(), hero)
	} else {
		result, err = h.service.AutoResolveCombat(r.Context(), hero, toDescriptors(req.Enemies))
	}
	if err != nil {
		respondServiceError(w, r, ErrMsgResolveMissionFailed, err)
		return
	}

	log.Info("Mission resolved", "hero_id", hero.ID, "victory", result.Victory, "rounds", result.Rounds)

	respondJSON(w, http.StatusOK, ResolveMissionResponse{
		CombatResult: result,
		Summary:      mission.FormatLog(result),
	})
}
