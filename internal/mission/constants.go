package mission

// Enemy type identifiers used by the level rosters. Lookups in the bestiary
// are case-insensitive.
const (
	EnemyGoblin   = "goblin"
	EnemyWolf     = "wolf"
	EnemyBandit   = "bandit"
	EnemySkeleton = "skeleton"
	EnemyTroll    = "troll"
)

// Level tiers
const (
	TierNovice  = 1
	TierVeteran = 2
	TierElite   = 3

	NoviceMaxLevel  = 2
	VeteranMaxLevel = 5
)

// Win chance policy
const (
	NoviceBaseWinChance  = 55
	VeteranBaseWinChance = 60
	EliteBaseWinChance   = 65

	MinWinChance = 30
	MaxWinChance = 90

	EnemyPowerPerLevel = 12
)

// Reward policy. Rewards scale with the hero level and are floored per outcome.
const (
	VictoryXPPerLevel   = 12.0
	VictoryGoldPerLevel = 8.0
	DefeatXPPerLevel    = 6.0
	DefeatGoldPerLevel  = 4.0

	MinVictoryXP   = 20
	MinVictoryGold = 15
	MinDefeatXP    = 10
	MinDefeatGold  = 5
)

// Hero entity derivation
const (
	HeroBaseHP            = 40
	HeroHPPerConstitution = 6
	HeroHPPerLevel        = 5
	HeroArmorDivisor      = 4
	DefaultHeroName       = "Hero"
)
