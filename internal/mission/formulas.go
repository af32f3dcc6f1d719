package mission

import (
	"math"

	"github.com/osse101/Skirmish_Go/internal/domain"
)

// HeroPower is strength + dexterity + constitution + level
func HeroPower(hero domain.HeroSnapshot) int {
	a := hero.Attributes
	return a.Strength + a.Dexterity + a.Constitution + hero.Level()
}

// EnemyPower sums level * count * 12 over the roster
func EnemyPower(enemies []domain.EnemyDescriptor) int {
	total := 0
	for _, e := range enemies {
		total += e.Level * e.Count * EnemyPowerPerLevel
	}
	return total
}

// BaseWinChance is the tier baseline before the power adjustment
func BaseWinChance(level int) int {
	switch LevelTier(level) {
	case TierNovice:
		return NoviceBaseWinChance
	case TierVeteran:
		return VeteranBaseWinChance
	default:
		return EliteBaseWinChance
	}
}

// WinChance is the percent chance the hero wins an auto-resolved encounter,
// clamped to [30, 90].
func WinChance(hero domain.HeroSnapshot, enemies []domain.EnemyDescriptor) int {
	chance := BaseWinChance(hero.Level()) + HeroPower(hero) - EnemyPower(enemies)
	if chance < MinWinChance {
		return MinWinChance
	}
	if chance > MaxWinChance {
		return MaxWinChance
	}
	return chance
}

// Rewards returns the xp and gold earned for an encounter outcome
func Rewards(level int, victory bool) (xp, gold int) {
	l := float64(level)
	if victory {
		return max(MinVictoryXP, int(math.Round(l*VictoryXPPerLevel))),
			max(MinVictoryGold, int(math.Round(l*VictoryGoldPerLevel)))
	}
	return max(MinDefeatXP, int(math.Round(l*DefeatXPPerLevel))),
		max(MinDefeatGold, int(math.Round(l*DefeatGoldPerLevel)))
}
