package combat

import (
	"github.com/osse101/Skirmish_Go/internal/domain"
)

// EventKind classifies a turn event
type EventKind string

const (
	EventStatusTick EventKind = "status_tick"
	EventAttack     EventKind = "attack"
	EventSpecial    EventKind = "special"
	EventFrozen     EventKind = "frozen"
)

// TurnEvent records one significant thing that happened during a turn
type TurnEvent struct {
	Kind   EventKind     `json:"kind"`
	Actor  domain.Side   `json:"actor,omitempty"`
	Target domain.Side   `json:"target"`
	Damage int           `json:"damage,omitempty"`
	Attack *AttackResult `json:"attack,omitempty"`
}

// Turn is the input to one duel round
type Turn struct {
	Hero          *domain.Entity
	Enemy         *domain.Entity
	Statuses      []domain.StatusEffect
	HeroActsFirst bool
	Action        domain.Action // the hero's action; enemies always attack physically
}

// TurnResult is the state after one duel round. Hero and Enemy are the same
// pointers that were passed in.
type TurnResult struct {
	Hero     *domain.Entity
	Enemy    *domain.Entity
	Statuses []domain.StatusEffect
	Events   []TurnEvent
}

// PerformDuelTurn runs one round: statuses tick once, the first actor acts,
// then the opponent retaliates if it is still standing.
// Defeat is signalled only by HP reaching 0.
func PerformDuelTurn(r Roller, t Turn) TurnResult {
	res := TurnResult{
		Hero:   t.Hero,
		Enemy:  t.Enemy,
		Events: make([]TurnEvent, 0, 4),
	}

	// freeze is judged on the effects active when the round starts
	frozen := map[domain.Side]bool{
		domain.SideHero:  IsFrozen(t.Statuses, domain.SideHero),
		domain.SideEnemy: IsFrozen(t.Statuses, domain.SideEnemy),
	}

	heroHP, enemyHP := t.Hero.HP, t.Enemy.HP
	res.Statuses = TickStatuses(t.Statuses, t.Hero, t.Enemy)
	if d := heroHP - t.Hero.HP; d > 0 {
		res.Events = append(res.Events, TurnEvent{Kind: EventStatusTick, Target: domain.SideHero, Damage: d})
	}
	if d := enemyHP - t.Enemy.HP; d > 0 {
		res.Events = append(res.Events, TurnEvent{Kind: EventStatusTick, Target: domain.SideEnemy, Damage: d})
	}

	first := domain.SideEnemy
	if t.HeroActsFirst {
		first = domain.SideHero
	}
	second := first.Opponent()

	entity := func(s domain.Side) *domain.Entity {
		if s == domain.SideHero {
			return t.Hero
		}
		return t.Enemy
	}

	act := func(actor domain.Side) {
		if !entity(actor).Alive() {
			return
		}
		if frozen[actor] {
			res.Events = append(res.Events, TurnEvent{Kind: EventFrozen, Actor: actor, Target: actor})
			return
		}

		action := domain.ActionPhysical
		if actor == domain.SideHero {
			action = t.Action
		}

		if action == domain.ActionSpecial {
			res.Statuses = append(res.Statuses, NewPoison(actor.Opponent()))
			res.Events = append(res.Events, TurnEvent{Kind: EventSpecial, Actor: actor, Target: actor.Opponent()})
			return
		}

		defender := entity(actor.Opponent())
		atk := BaseAttack(r, entity(actor), defender)
		if atk.Hit {
			defender.ApplyDamage(atk.Damage)
		}
		res.Events = append(res.Events, TurnEvent{
			Kind:   EventAttack,
			Actor:  actor,
			Target: actor.Opponent(),
			Damage: atk.Damage,
			Attack: &atk,
		})
	}

	act(first)
	if entity(second).Alive() {
		act(second)
	}

	return res
}
