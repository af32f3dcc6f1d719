package mission

import (
	"context"
	"fmt"

	"github.com/osse101/Skirmish_Go/internal/combat"
	"github.com/osse101/Skirmish_Go/internal/domain"
	"github.com/osse101/Skirmish_Go/internal/logger"
	"github.com/osse101/Skirmish_Go/internal/metrics"
)

// Service defines the interface for mission operations
type Service interface {
	AutoResolveCombat(ctx context.Context, hero domain.HeroSnapshot, enemies []domain.EnemyDescriptor) (*domain.CombatResult, error)
	GenerateMission(ctx context.Context, hero domain.HeroSnapshot) (*Plan, error)
	ResolveMission(ctx context.Context, hero domain.HeroSnapshot) (*domain.CombatResult, error)
}

// Reward is an xp and gold pair
type Reward struct {
	XP   int `json:"xp"`
	Gold int `json:"gold"`
}

// Plan previews the mission a hero would face at their current level
type Plan struct {
	Tier           int                      `json:"tier"`
	Enemies        []domain.EnemyDescriptor `json:"enemies"`
	WinChance      int                      `json:"winChance"`
	VictoryRewards Reward                   `json:"victoryRewards"`
	DefeatRewards  Reward                   `json:"defeatRewards"`
}

type service struct {
	bestiary  *Bestiary
	maxRounds int
	newSeed   func() (int64, error)
}

// NewService creates a new mission service. maxRounds <= 0 uses the
// bestiary default.
func NewService(bestiary *Bestiary, maxRounds int) Service {
	return &service{
		bestiary:  bestiary,
		maxRounds: maxRounds,
		newSeed:   combat.NewSeed,
	}
}

// AutoResolveCombat resolves one encounter against an explicit roster
func (s *service) AutoResolveCombat(ctx context.Context, hero domain.HeroSnapshot, enemies []domain.EnemyDescriptor) (*domain.CombatResult, error) {
	log := logger.FromContext(ctx)

	if !domain.ValidLevel(hero.Level()) {
		return nil, levelError(hero.Level())
	}
	if err := s.bestiary.ValidateRoster(enemies); err != nil {
		return nil, err
	}

	seed, err := s.newSeed()
	if err != nil {
		return nil, fmt.Errorf("failed to seed encounter: %w", err)
	}

	result, err := NewEngine(s.bestiary, s.maxRounds, seed).Run(hero, enemies)
	if err != nil {
		return nil, err
	}

	metrics.RecordCombat(result.Victory, result.Rounds)
	log.Debug("Combat resolved",
		"hero_id", hero.ID,
		"level", hero.Level(),
		"victory", result.Victory,
		"win_chance", result.WinChance,
		"rounds", result.Rounds,
		"xp", result.XPGained,
		"gold", result.GoldGained)

	return result, nil
}

// GenerateMission previews the level roster, odds and rewards
func (s *service) GenerateMission(_ context.Context, hero domain.HeroSnapshot) (*Plan, error) {
	level := hero.Level()
	if !domain.ValidLevel(level) {
		return nil, levelError(level)
	}

	enemies := RosterForLevel(level)
	winXP, winGold := Rewards(level, true)
	loseXP, loseGold := Rewards(level, false)

	return &Plan{
		Tier:           LevelTier(level),
		Enemies:        enemies,
		WinChance:      WinChance(hero, enemies),
		VictoryRewards: Reward{XP: winXP, Gold: winGold},
		DefeatRewards:  Reward{XP: loseXP, Gold: loseGold},
	}, nil
}

// ResolveMission resolves the level roster for the hero
func (s *service) ResolveMission(ctx context.Context, hero domain.HeroSnapshot) (*domain.CombatResult, error) {
	if !domain.ValidLevel(hero.Level()) {
		return nil, levelError(hero.Level())
	}
	return s.AutoResolveCombat(ctx, hero, RosterForLevel(hero.Level()))
}

func levelError(level int) error {
	return fmt.Errorf("%w: %d is outside [%d, %d]", domain.ErrInvalidLevel, level, domain.MinLevel, domain.MaxLevel)
}
