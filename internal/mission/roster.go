package mission

import "github.com/osse101/Skirmish_Go/internal/domain"

// LevelTier maps a hero level to its tier: up to 2 is novice, up to 5 is
// veteran, anything above is elite.
func LevelTier(level int) int {
	switch {
	case level <= NoviceMaxLevel:
		return TierNovice
	case level <= VeteranMaxLevel:
		return TierVeteran
	default:
		return TierElite
	}
}

// RosterForLevel returns the fixed enemy roster for a hero level. Every
// caller that derives enemies from a level goes through here.
func RosterForLevel(level int) []domain.EnemyDescriptor {
	switch LevelTier(level) {
	case TierNovice:
		return []domain.EnemyDescriptor{
			{Type: EnemyGoblin, Count: 2, Level: level},
			{Type: EnemyWolf, Count: 1, Level: level},
		}
	case TierVeteran:
		return []domain.EnemyDescriptor{
			{Type: EnemyBandit, Count: 1, Level: level},
			{Type: EnemySkeleton, Count: 1, Level: level},
		}
	default:
		return []domain.EnemyDescriptor{
			{Type: EnemyTroll, Count: 1, Level: level},
			{Type: EnemyBandit, Count: 2, Level: level},
		}
	}
}

// DailyRuns is the number of auto-resolved runs a hero gets per day, equal
// to the hero's tier.
func DailyRuns(level int) int {
	return LevelTier(level)
}
