package combat

// Attack tuning
const (
	BaseHitChance     = 50
	HitChancePerDex   = 3
	MinHitChance      = 5
	MaxHitChance      = 95
	WeaponAttack      = 2
	CritChancePercent = 5
	CritMultiplier    = 1.5
	MinDamageOnHit    = 1
	PercentRollSides  = 100
)

// Status tuning
const (
	PoisonDurationTurns = 3
	PoisonMaxHPPercent  = 3
	MinPoisonTickDamage = 1
)

// DefaultMaxRounds caps an encounter so stalemates still terminate
const DefaultMaxRounds = 30

// Validation error tags
const (
	ErrTagName     = "name"
	ErrTagMaxHP    = "maxHp"
	ErrTagHP       = "hp"
	ErrTagArmor    = "armor"
	ErrTagAttrPref = "attr:"
)
