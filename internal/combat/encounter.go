package combat

import (
	"github.com/osse101/Skirmish_Go/internal/domain"
)

// Encounter owns the state of one duel from start to finish. It copies the
// entities it is given so nothing outside the encounter is mutated.
type Encounter struct {
	Hero      domain.Entity
	Enemy     domain.Entity
	Statuses  []domain.StatusEffect
	Round     int
	MaxRounds int

	rng Roller
}

// NewEncounter starts an encounter. maxRounds <= 0 selects DefaultMaxRounds.
func NewEncounter(r Roller, hero, enemy domain.Entity, maxRounds int) *Encounter {
	if maxRounds <= 0 {
		maxRounds = DefaultMaxRounds
	}
	return &Encounter{
		Hero:      hero,
		Enemy:     enemy,
		Statuses:  make([]domain.StatusEffect, 0),
		MaxRounds: maxRounds,
		rng:       r,
	}
}

// HeroActsFirst decides initiative: the quicker side acts first, ties go to the hero
func HeroActsFirst(hero, enemy *domain.Entity) bool {
	return hero.Attrs.Dexterity >= enemy.Attrs.Dexterity
}

// AutoAction picks the hero's action when nobody is at the controls.
// Intelligence-leaning heroes keep a poison on the enemy; everyone else swings.
func (e *Encounter) AutoAction() domain.Action {
	if e.Hero.Attrs.Intelligence <= e.Hero.Attrs.Strength {
		return domain.ActionPhysical
	}
	for _, s := range e.Statuses {
		if s.Type == domain.StatusPoison && s.Target == domain.SideEnemy {
			return domain.ActionPhysical
		}
	}
	return domain.ActionSpecial
}

// Turn plays one round with the given hero action
func (e *Encounter) Turn(action domain.Action) TurnResult {
	e.Round++
	res := PerformDuelTurn(e.rng, Turn{
		Hero:          &e.Hero,
		Enemy:         &e.Enemy,
		Statuses:      e.Statuses,
		HeroActsFirst: HeroActsFirst(&e.Hero, &e.Enemy),
		Action:        action,
	})
	e.Statuses = res.Statuses
	return res
}

// Over reports whether a side is down or the round cap has been reached
func (e *Encounter) Over() bool {
	return !e.Hero.Alive() || !e.Enemy.Alive() || e.Round >= e.MaxRounds
}

// Winner returns the side still standing. ok is false while both stand.
func (e *Encounter) Winner() (side domain.Side, ok bool) {
	switch {
	case !e.Enemy.Alive() && e.Hero.Alive():
		return domain.SideHero, true
	case !e.Hero.Alive():
		return domain.SideEnemy, true
	}
	return "", false
}
