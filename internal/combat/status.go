package combat

import (
	"github.com/google/uuid"

	"github.com/osse101/Skirmish_Go/internal/domain"
)

// NewPoison creates the damage-over-time effect applied by a special action
func NewPoison(target domain.Side) domain.StatusEffect {
	return domain.StatusEffect{
		ID:     uuid.NewString(),
		Type:   domain.StatusPoison,
		Target: target,
		Turns:  PoisonDurationTurns,
	}
}

// PoisonTickDamage is the damage one poison tick deals to an entity
func PoisonTickDamage(maxHP int) int {
	return max(MinPoisonTickDamage, maxHP*PoisonMaxHPPercent/100)
}

// TickStatuses applies every effect once, in input order, mutating hero and
// enemy in place, and returns the effects that still have turns left.
// Later effects see attribute changes made by earlier ones in the same tick.
func TickStatuses(statuses []domain.StatusEffect, hero, enemy *domain.Entity) []domain.StatusEffect {
	remaining := make([]domain.StatusEffect, 0, len(statuses))

	for _, s := range statuses {
		target := hero
		if s.Target == domain.SideEnemy {
			target = enemy
		}

		switch s.Type {
		case domain.StatusPoison:
			target.ApplyDamage(PoisonTickDamage(target.MaxHP))
		case domain.StatusBuff:
			target.Attrs.Set(s.Attr, target.Attrs.Get(s.Attr)+s.Value)
		case domain.StatusDebuff:
			target.Attrs.Set(s.Attr, max(0, target.Attrs.Get(s.Attr)-s.Value))
		case domain.StatusFreeze:
			// interpreted by the turn orchestrator
		}

		s.Turns--
		if s.Turns > 0 {
			remaining = append(remaining, s)
		}
	}

	return remaining
}

// IsFrozen reports whether an active freeze effect targets the side
func IsFrozen(statuses []domain.StatusEffect, side domain.Side) bool {
	for _, s := range statuses {
		if s.Type == domain.StatusFreeze && s.Target == side && s.Turns > 0 {
			return true
		}
	}
	return false
}
