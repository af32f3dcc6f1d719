package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Skirmish_Go/internal/combat"
	"github.com/osse101/Skirmish_Go/internal/domain"
)

func TestHandleValidate(t *testing.T) {
	h := NewCombatHandler()

	t.Run("valid entity", func(t *testing.T) {
		w := serve(t, h.HandleValidate, "/combat/validate", ValidateEntityRequest{Entity: entity("Aria", 40)})

		require.Equal(t, http.StatusOK, w.Code)
		res := decode[combat.ValidationResult](t, w)
		assert.True(t, res.IsValid)
		assert.Empty(t, res.Errors)
	})

	t.Run("invalid entity still returns 200 with reasons", func(t *testing.T) {
		e := entity("", 10)
		e.HP = 11
		e.Attrs.Strength = 101

		w := serve(t, h.HandleValidate, "/combat/validate", ValidateEntityRequest{Entity: e})

		require.Equal(t, http.StatusOK, w.Code)
		res := decode[combat.ValidationResult](t, w)
		assert.False(t, res.IsValid)
		assert.ElementsMatch(t, []string{"name", "hp", "attr:forca"}, res.Errors)
	})

	t.Run("missing entity", func(t *testing.T) {
		w := serve(t, h.HandleValidate, "/combat/validate", `{}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		res := decode[ValidationErrorResponse](t, w)
		assert.Equal(t, ErrMsgInvalidRequestSummary, res.Error)
		assert.Contains(t, res.Fields, "entity")
	})

	t.Run("malformed json", func(t *testing.T) {
		w := serve(t, h.HandleValidate, "/combat/validate", `{"entity":`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidRequest)
	})
}

func TestHandleAttack(t *testing.T) {
	h := NewCombatHandler()
	seed := int64(42)

	req := AttackRequest{Attacker: entity("Aria", 40), Defender: entity("Goblin", 18), Seed: &seed}

	first := decode[combat.AttackResult](t, serve(t, h.HandleAttack, "/combat/attack", req))
	second := decode[combat.AttackResult](t, serve(t, h.HandleAttack, "/combat/attack", req))

	assert.Equal(t, first, second, "same seed should replay the same attack")
	assert.Equal(t, 50, first.HitChance)
	assert.GreaterOrEqual(t, first.Roll, 1)
	assert.LessOrEqual(t, first.Roll, 100)
	if first.Hit {
		assert.GreaterOrEqual(t, first.Damage, combat.MinDamageOnHit)
	} else {
		assert.Zero(t, first.Damage)
	}
}

func TestHandleAttack_SeedFailure(t *testing.T) {
	h := &CombatHandler{newSeed: func() (int64, error) { return 0, errors.New("entropy exhausted") }}

	w := serve(t, h.HandleAttack, "/combat/attack", AttackRequest{Attacker: entity("Aria", 40), Defender: entity("Goblin", 18)})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgGenericServerError)
	assert.NotContains(t, w.Body.String(), "entropy")
}

func TestHandleTurn(t *testing.T) {
	h := NewCombatHandler()

	t.Run("special against a frozen enemy needs no rolls", func(t *testing.T) {
		heroFirst := true
		req := TurnRequest{
			Hero:  entity("Aria", 40),
			Enemy: entity("Goblin", 18),
			Statuses: []domain.StatusEffect{
				{ID: "f1", Type: domain.StatusFreeze, Target: domain.SideEnemy, Turns: 2},
			},
			HeroActsFirst: &heroFirst,
			Action:        "especial",
		}

		w := serve(t, h.HandleTurn, "/combat/turn", req)

		require.Equal(t, http.StatusOK, w.Code)
		res := decode[TurnResponse](t, w)
		require.Len(t, res.Events, 2)
		assert.Equal(t, combat.EventSpecial, res.Events[0].Kind)
		assert.Equal(t, combat.EventFrozen, res.Events[1].Kind)
		assert.Equal(t, domain.SideEnemy, res.Events[1].Actor)

		require.Len(t, res.Statuses, 2)
		assert.Equal(t, domain.StatusFreeze, res.Statuses[0].Type)
		assert.Equal(t, 1, res.Statuses[0].Turns)
		assert.Equal(t, domain.StatusPoison, res.Statuses[1].Type)
		assert.Equal(t, domain.SideEnemy, res.Statuses[1].Target)
		assert.Equal(t, 40, res.Hero.HP)
		assert.Equal(t, 18, res.Enemy.HP)
		assert.False(t, res.Over)
	})

	t.Run("english alias is accepted", func(t *testing.T) {
		heroFirst := true
		req := TurnRequest{
			Hero:  entity("Aria", 40),
			Enemy: entity("Goblin", 18),
			Statuses: []domain.StatusEffect{
				{ID: "f1", Type: domain.StatusFreeze, Target: domain.SideEnemy, Turns: 1},
			},
			HeroActsFirst: &heroFirst,
			Action:        "Special",
		}

		res := decode[TurnResponse](t, serve(t, h.HandleTurn, "/combat/turn", req))

		require.NotEmpty(t, res.Events)
		assert.Equal(t, combat.EventSpecial, res.Events[0].Kind)
	})

	t.Run("poison tick finishes the enemy", func(t *testing.T) {
		enemy := entity("Goblin", 18)
		enemy.HP = 1
		req := TurnRequest{
			Hero:  entity("Aria", 40),
			Enemy: enemy,
			Statuses: []domain.StatusEffect{
				{ID: "p1", Type: domain.StatusPoison, Target: domain.SideEnemy, Turns: 3},
			},
		}

		res := decode[TurnResponse](t, serve(t, h.HandleTurn, "/combat/turn", req))

		assert.Zero(t, res.Enemy.HP)
		assert.True(t, res.Over)
		assert.Equal(t, domain.SideHero, res.Winner)
		assert.Equal(t, combat.EventStatusTick, res.Events[0].Kind)
	})

	t.Run("unknown action is rejected", func(t *testing.T) {
		req := TurnRequest{Hero: entity("Aria", 40), Enemy: entity("Goblin", 18), Action: "fireball"}

		w := serve(t, h.HandleTurn, "/combat/turn", req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		res := decode[ValidationErrorResponse](t, w)
		assert.Equal(t, "Must be fisico or especial", res.Fields["action"])
	})

	t.Run("unknown fields are rejected", func(t *testing.T) {
		w := serve(t, h.HandleTurn, "/combat/turn", `{"hero":{},"enemy":{},"mana":3}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
