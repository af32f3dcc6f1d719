package combat

import (
	"math"

	"github.com/osse101/Skirmish_Go/internal/domain"
)

// AttackResult is the outcome of a single attack. Damage is 0 on a miss.
type AttackResult struct {
	Hit       bool `json:"hit"`
	Damage    int  `json:"damage"`
	Critical  bool `json:"critical"`
	Roll      int  `json:"roll"`
	HitChance int  `json:"hitChance"`
}

// HitChance returns the attacker's percent chance to hit, clamped to [5, 95]
func HitChance(attacker, defender *domain.Entity) int {
	chance := BaseHitChance + (attacker.Attrs.Dexterity-defender.Attrs.Dexterity)*HitChancePerDex
	return clampInt(chance, MinHitChance, MaxHitChance)
}

// BaseAttack resolves one physical attack. It does not mutate either entity;
// callers apply Damage to the defender.
func BaseAttack(r Roller, attacker, defender *domain.Entity) AttackResult {
	chance := HitChance(attacker, defender)
	roll := RollPercent(r)
	if roll > chance {
		return AttackResult{Roll: roll, HitChance: chance}
	}

	raw := float64(attacker.Attrs.Strength + WeaponAttack)
	crit := Chance(r, CritChancePercent)
	if crit {
		raw *= CritMultiplier
	}

	damage := int(math.Floor(raw - float64(defender.Armor)))
	if damage < MinDamageOnHit {
		damage = MinDamageOnHit
	}

	return AttackResult{
		Hit:       true,
		Damage:    damage,
		Critical:  crit,
		Roll:      roll,
		HitChance: chance,
	}
}
