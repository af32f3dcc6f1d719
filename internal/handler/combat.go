package handler

import (
	"net/http"
	"strings"

	"github.com/osse101/Skirmish_Go/internal/combat"
	"github.com/osse101/Skirmish_Go/internal/domain"
	"github.com/osse101/Skirmish_Go/internal/logger"
	"github.com/osse101/Skirmish_Go/internal/metrics"
)

// CombatHandler exposes the stateless combat primitives. Callers hold the
// duel state between requests.
type CombatHandler struct {
	newSeed func() (int64, error)
}

// NewCombatHandler creates a combat handler seeded from crypto/rand
func NewCombatHandler() *CombatHandler {
	return &CombatHandler{newSeed: combat.NewSeed}
}

// ValidateEntityRequest is the body of POST /combat/validate
type ValidateEntityRequest struct {
	Entity *domain.Entity `json:"entity" validate:"required"`
}

// AttackRequest is the body of POST /combat/attack
type AttackRequest struct {
	Attacker *domain.Entity `json:"attacker" validate:"required"`
	Defender *domain.Entity `json:"defender" validate:"required"`
	Seed     *int64         `json:"seed,omitempty"`
}

// TurnRequest is the body of POST /combat/turn
type TurnRequest struct {
	Hero          *domain.Entity        `json:"hero" validate:"required"`
	Enemy         *domain.Entity        `json:"enemy" validate:"required"`
	Statuses      []domain.StatusEffect `json:"statuses"`
	HeroActsFirst *bool                 `json:"heroActsFirst,omitempty"`
	Action        string                `json:"action" validate:"omitempty,action"`
	Seed          *int64                `json:"seed,omitempty"`
}

// TurnResponse is the state after one duel round
type TurnResponse struct {
	Hero     domain.Entity         `json:"hero"`
	Enemy    domain.Entity         `json:"enemy"`
	Statuses []domain.StatusEffect `json:"statuses"`
	Events   []combat.TurnEvent    `json:"events"`
	Over     bool                  `json:"over"`
	Winner   domain.Side           `json:"winner,omitempty"`
}

// HandleValidate reports whether an entity satisfies the combatant invariants.
// Invalid entities still return 200; the verdict is in the body.
func (h *CombatHandler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	var req ValidateEntityRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Validate entity"); err != nil {
		return
	}

	respondJSON(w, http.StatusOK, combat.ValidateEntity(*req.Entity))
}

// HandleAttack resolves one physical attack without applying damage
func (h *CombatHandler) HandleAttack(w http.ResponseWriter, r *http.Request) {
	var req AttackRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Attack"); err != nil {
		return
	}

	roller, err := h.roller(req.Seed)
	if err != nil {
		respondServiceError(w, r, ErrMsgAttackFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, combat.BaseAttack(roller, req.Attacker, req.Defender))
}

// HandleTurn runs one duel round and returns the updated state
func (h *CombatHandler) HandleTurn(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req TurnRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Duel turn"); err != nil {
		return
	}

	action := domain.ActionPhysical
	if req.Action != "" {
		// already checked by the action validator
		action, _ = domain.ParseAction(strings.ToLower(req.Action))
	}

	heroFirst := combat.HeroActsFirst(req.Hero, req.Enemy)
	if req.HeroActsFirst != nil {
		heroFirst = *req.HeroActsFirst
	}

	roller, err := h.roller(req.Seed)
	if err != nil {
		respondServiceError(w, r, ErrMsgTurnFailed, err)
		return
	}

	res := combat.PerformDuelTurn(roller, combat.Turn{
		Hero:          req.Hero,
		Enemy:         req.Enemy,
		Statuses:      req.Statuses,
		HeroActsFirst: heroFirst,
		Action:        action,
	})
	metrics.DuelTurns.Inc()

	resp := TurnResponse{
		Hero:     *res.Hero,
		Enemy:    *res.Enemy,
		Statuses: res.Statuses,
		Events:   res.Events,
	}
	if resp.Statuses == nil {
		resp.Statuses = []domain.StatusEffect{}
	}
	switch {
	case !res.Enemy.Alive():
		resp.Over, resp.Winner = true, domain.SideHero
	case !res.Hero.Alive():
		resp.Over, resp.Winner = true, domain.SideEnemy
	}

	log.Debug("Duel turn resolved",
		"action", action,
		"hero_hp", resp.Hero.HP,
		"enemy_hp", resp.Enemy.HP,
		"events", len(resp.Events))

	respondJSON(w, http.StatusOK, resp)
}

func (h *CombatHandler) roller(seed *int64) (combat.Roller, error) {
	if seed != nil {
		return combat.NewRoller(*seed), nil
	}
	s, err := h.newSeed()
	if err != nil {
		return nil, err
	}
	return combat.NewRoller(s), nil
}
