package mission

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/osse101/Skirmish_Go/internal/combat"
	"github.com/osse101/Skirmish_Go/internal/domain"
)

// notableHitPercent is the share of the target's max HP a plain hit must
// deal to earn a line in the log
const notableHitPercent = 20

// Engine runs one auto-resolved encounter. It is pure logic with no storage
// or service dependencies; all randomness comes from its seeded source.
type Engine struct {
	bestiary  *Bestiary
	rng       *rand.Rand
	maxRounds int
	log       []string
}

// NewEngine creates a new engine. maxRounds <= 0 falls back to the bestiary
// setting and then to combat.DefaultMaxRounds.
func NewEngine(bestiary *Bestiary, maxRounds int, seed int64) *Engine {
	if maxRounds <= 0 {
		maxRounds = bestiary.Settings.MaxRounds
	}
	return &Engine{
		bestiary:  bestiary,
		rng:       combat.NewRoller(seed),
		maxRounds: maxRounds,
		log:       make([]string, 0, 8),
	}
}

// Run resolves the encounter. The outcome is rolled once against the win
// chance; the duel that follows narrates how it came about and sets Rounds.
// The side the roll picked to win is never knocked out, so the duel ends
// with the loser down or at the round cap.
func (e *Engine) Run(hero domain.HeroSnapshot, enemies []domain.EnemyDescriptor) (*domain.CombatResult, error) {
	if !domain.ValidLevel(hero.Level()) {
		return nil, levelError(hero.Level())
	}
	enemy, err := e.bestiary.BuildEnemy(enemies)
	if err != nil {
		return nil, err
	}
	heroEnt := BuildHero(hero)

	winChance := WinChance(hero, enemies)
	victory := combat.RollPercent(e.rng) <= winChance

	e.appendIntro(heroEnt.Name, enemy.Name, winChance)

	fated := domain.SideEnemy
	if victory {
		fated = domain.SideHero
	}

	enc := combat.NewEncounter(e.rng, heroEnt, enemy, e.maxRounds)
	for !enc.Over() {
		res := enc.Turn(enc.AutoAction())
		e.narrateTurn(enc, res)
		e.holdFatedWinner(enc, fated)
	}
	e.appendEnding(enc, victory)

	xp, gold := Rewards(hero.Level(), victory)
	items := make([]string, 0)
	if victory {
		items = e.rollLoot(enemies)
	}

	return &domain.CombatResult{
		Victory:     victory,
		XPGained:    xp,
		GoldGained:  gold,
		ItemsGained: items,
		Log:         e.log,
		Rounds:      enc.Round,
		WinChance:   winChance,
		Enemies:     enemies,
	}, nil
}

func (e *Engine) appendIntro(heroName, enemyName string, winChance int) {
	intro := e.bestiary.IntroNarratives[e.rng.Intn(len(e.bestiary.IntroNarratives))]
	e.log = append(e.log, fmt.Sprintf(intro, heroName, enemyName))
	e.log = append(e.log, fmt.Sprintf("Odds of victory: %d%%.", winChance))
}

func (e *Engine) narrateTurn(enc *combat.Encounter, res combat.TurnResult) {
	name := func(s domain.Side) string {
		if s == domain.SideHero {
			return enc.Hero.Name
		}
		return enc.Enemy.Name
	}
	maxHP := func(s domain.Side) int {
		if s == domain.SideHero {
			return enc.Hero.MaxHP
		}
		return enc.Enemy.MaxHP
	}

	for _, ev := range res.Events {
		switch ev.Kind {
		case combat.EventSpecial:
			e.log = append(e.log, fmt.Sprintf("Round %d: %s poisons %s.", enc.Round, name(ev.Actor), name(ev.Target)))
		case combat.EventFrozen:
			e.log = append(e.log, fmt.Sprintf("Round %d: %s is frozen and cannot act.", enc.Round, name(ev.Actor)))
		case combat.EventAttack:
			if ev.Attack == nil || !ev.Attack.Hit {
				continue
			}
			if ev.Attack.Critical {
				e.log = append(e.log, fmt.Sprintf("Round %d: %s lands a critical hit on %s for %d damage!", enc.Round, name(ev.Actor), name(ev.Target), ev.Damage))
			} else if ev.Damage*100 >= maxHP(ev.Target)*notableHitPercent {
				e.log = append(e.log, fmt.Sprintf("Round %d: %s hits %s hard for %d damage.", enc.Round, name(ev.Actor), name(ev.Target), ev.Damage))
			}
		case combat.EventStatusTick:
			// poison ticks are summarised by the HP totals in the ending
		}
	}
}

// holdFatedWinner keeps the side the roll picked to win on its feet
func (e *Engine) holdFatedWinner(enc *combat.Encounter, fated domain.Side) {
	ent := &enc.Enemy
	if fated == domain.SideHero {
		ent = &enc.Hero
	}
	if ent.Alive() {
		return
	}
	ent.Heal(1)
	e.log = append(e.log, fmt.Sprintf("Round %d: %s staggers but stays standing.", enc.Round, ent.Name))
}

func (e *Engine) appendEnding(enc *combat.Encounter, victory bool) {
	heroName, enemyName := enc.Hero.Name, enc.Enemy.Name
	_, decided := enc.Winner()

	var line string
	switch {
	case victory && decided:
		line = fmt.Sprintf("%s are defeated. Victory!", enemyName)
	case victory:
		line = fmt.Sprintf("After %d rounds %s retreat. Victory!", enc.Round, enemyName)
	case decided:
		line = fmt.Sprintf("%s falls to %s. Defeat.", heroName, enemyName)
	default:
		line = fmt.Sprintf("After %d rounds %s is forced to withdraw. Defeat.", enc.Round, heroName)
	}

	e.log = append(e.log, line)
	e.log = append(e.log, fmt.Sprintf("%s: %d/%d HP, %s: %d/%d HP.",
		heroName, enc.Hero.HP, enc.Hero.MaxHP, enemyName, enc.Enemy.HP, enc.Enemy.MaxHP))
}

// rollLoot rolls every drop of every individual enemy, in roster order
func (e *Engine) rollLoot(enemies []domain.EnemyDescriptor) []string {
	items := make([]string, 0)
	for _, group := range enemies {
		def, ok := e.bestiary.Lookup(group.Type)
		if !ok {
			continue
		}
		for i := 0; i < group.Count; i++ {
			for _, drop := range def.Drops {
				if combat.Chance(e.rng, drop.Chance) {
					items = append(items, drop.Item)
				}
			}
		}
	}
	return items
}

// BuildHero derives the hero's battle entity from a snapshot
func BuildHero(hero domain.HeroSnapshot) domain.Entity {
	attrs := clampAttrs(hero.Attributes)
	name := strings.TrimSpace(hero.Name)
	if name == "" {
		name = DefaultHeroName
	}

	maxHP := HeroBaseHP + attrs.Constitution*HeroHPPerConstitution + max(hero.Level(), 1)*HeroHPPerLevel
	return domain.Entity{
		Name:  name,
		HP:    maxHP,
		MaxHP: maxHP,
		Armor: attrs.Constitution / HeroArmorDivisor,
		Attrs: attrs,
	}
}

// ValidateRoster checks a roster against the bestiary
func (b *Bestiary) ValidateRoster(enemies []domain.EnemyDescriptor) error {
	if len(enemies) == 0 {
		return domain.ErrEmptyRoster
	}
	for i, group := range enemies {
		if _, ok := b.Lookup(group.Type); !ok {
			return fmt.Errorf("%w: %q", domain.ErrUnknownEnemy, group.Type)
		}
		if group.Count <= 0 || group.Count > domain.MaxEnemyCount {
			return fmt.Errorf("%w: entry %d count must be in [1, %d], got %d", domain.ErrInvalidEnemy, i, domain.MaxEnemyCount, group.Count)
		}
		if !domain.ValidLevel(group.Level) {
			return fmt.Errorf("%w: entry %d level must be in [%d, %d], got %d", domain.ErrInvalidEnemy, i, domain.MinLevel, domain.MaxLevel, group.Level)
		}
	}
	return nil
}

// BuildEnemy folds a roster into one aggregate entity. Hit points add up,
// the strongest hitter leads with a bonus per extra body, dexterity is the
// average of the pack and armor is the best in it.
func (b *Bestiary) BuildEnemy(enemies []domain.EnemyDescriptor) (domain.Entity, error) {
	if err := b.ValidateRoster(enemies); err != nil {
		return domain.Entity{}, err
	}

	var hp, total, dexSum, maxLevel int
	var attrs domain.Attributes
	armor := 0
	names := make([]string, 0, len(enemies))

	for _, group := range enemies {
		def, _ := b.Lookup(group.Type)

		hp += (def.BaseHP + b.Settings.HPPerLevel*(group.Level-1)) * group.Count
		total += group.Count
		dexSum += def.Dexterity * group.Count
		maxLevel = max(maxLevel, group.Level)
		attrs.Strength = max(attrs.Strength, def.Strength)
		attrs.Constitution = max(attrs.Constitution, def.Constitution)
		armor = max(armor, def.Armor)

		names = append(names, fmt.Sprintf("%d %s", group.Count, def.Name(group.Count)))
	}

	attrs.Strength += (total - 1) + maxLevel/2
	attrs.Dexterity = dexSum / total

	return domain.Entity{
		Name:  joinNames(names),
		HP:    hp,
		MaxHP: hp,
		Armor: armor,
		Attrs: clampAttrs(attrs),
	}, nil
}

func clampAttrs(a domain.Attributes) domain.Attributes {
	for _, name := range domain.AllAttrs {
		v := a.Get(name)
		if v < domain.MinAttrValue {
			v = domain.MinAttrValue
		}
		if v > domain.MaxAttrValue {
			v = domain.MaxAttrValue
		}
		a.Set(name, v)
	}
	return a
}

// joinNames renders "a", "a and b", "a, b and c"
func joinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	}
	return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
}
