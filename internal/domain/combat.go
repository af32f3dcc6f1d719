package domain

// AttrName identifies one of the four core attributes
type AttrName string

const (
	AttrStrength     AttrName = "forca"
	AttrDexterity    AttrName = "destreza"
	AttrConstitution AttrName = "constituicao"
	AttrIntelligence AttrName = "inteligencia"
)

// AllAttrs lists the core attributes in their canonical order
var AllAttrs = []AttrName{AttrStrength, AttrDexterity, AttrConstitution, AttrIntelligence}

// Attribute bounds
const (
	MinAttrValue = 0
	MaxAttrValue = 100
)

// Level and roster bounds. They keep derived HP and rewards well inside int range.
const (
	MinLevel      = 1
	MaxLevel      = 100
	MaxEnemyCount = 20
)

// ValidLevel reports whether level is within [MinLevel, MaxLevel]
func ValidLevel(level int) bool {
	return level >= MinLevel && level <= MaxLevel
}

// Attributes holds the four core combat attributes
type Attributes struct {
	Strength     int `json:"forca"`
	Dexterity    int `json:"destreza"`
	Constitution int `json:"constituicao"`
	Intelligence int `json:"inteligencia"`
}

// Get returns the attribute value by name. Unknown names read as 0.
func (a Attributes) Get(name AttrName) int {
	switch name {
	case AttrStrength:
		return a.Strength
	case AttrDexterity:
		return a.Dexterity
	case AttrConstitution:
		return a.Constitution
	case AttrIntelligence:
		return a.Intelligence
	}
	return 0
}

// Set writes the attribute value by name. Unknown names are ignored.
func (a *Attributes) Set(name AttrName, value int) {
	switch name {
	case AttrStrength:
		a.Strength = value
	case AttrDexterity:
		a.Dexterity = value
	case AttrConstitution:
		a.Constitution = value
	case AttrIntelligence:
		a.Intelligence = value
	}
}

// Entity is a combatant's numeric battle state
type Entity struct {
	Name  string     `json:"name"`
	HP    int        `json:"hp"`
	MaxHP int        `json:"maxHp"`
	Armor int        `json:"armor"`
	Attrs Attributes `json:"attrs"`
}

// Alive reports whether the entity still has hit points
func (e *Entity) Alive() bool {
	return e.HP > 0
}

// ApplyDamage subtracts damage and clamps HP into [0, MaxHP]
func (e *Entity) ApplyDamage(amount int) {
	e.setHP(e.HP - amount)
}

// Heal adds hit points and clamps HP into [0, MaxHP]
func (e *Entity) Heal(amount int) {
	e.setHP(e.HP + amount)
}

func (e *Entity) setHP(hp int) {
	if hp > e.MaxHP {
		hp = e.MaxHP
	}
	if hp < 0 {
		hp = 0
	}
	e.HP = hp
}

// StatusType is the kind of a timed status effect
type StatusType string

const (
	StatusPoison StatusType = "poison" // damage over time
	StatusFreeze StatusType = "freeze"
	StatusBuff   StatusType = "buff"
	StatusDebuff StatusType = "debuff"
)

// Side identifies one side of a duel
type Side string

const (
	SideHero  Side = "hero"
	SideEnemy Side = "enemy"
)

// Opponent returns the other side
func (s Side) Opponent() Side {
	if s == SideHero {
		return SideEnemy
	}
	return SideHero
}

// StatusEffect is a timed modifier attached to one side of a duel
type StatusEffect struct {
	ID     string     `json:"id"`
	Type   StatusType `json:"type"`
	Target Side       `json:"target"`
	Turns  int        `json:"turns"`
	Value  int        `json:"value,omitempty"`
	Attr   AttrName   `json:"attr,omitempty"`
}

// Action is the choice an actor makes on its turn
type Action string

const (
	ActionPhysical Action = "fisico"
	ActionSpecial  Action = "especial"
)

// ParseAction accepts the canonical action names and their English aliases
func ParseAction(s string) (Action, bool) {
	switch s {
	case string(ActionPhysical), "physical":
		return ActionPhysical, true
	case string(ActionSpecial), "special":
		return ActionSpecial, true
	}
	return "", false
}

// EnemyDescriptor describes one group in an enemy roster
type EnemyDescriptor struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
	Level int    `json:"level"`
}

// HeroProgression is the progression part of a hero snapshot
type HeroProgression struct {
	Level int `json:"level"`
}

// HeroSnapshot is a read-only projection of persisted hero state
type HeroSnapshot struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Progression HeroProgression `json:"progression"`
	Attributes  Attributes      `json:"attributes"`
}

// Level returns the hero's progression level
func (h HeroSnapshot) Level() int {
	return h.Progression.Level
}

// CombatResult is the outcome of one auto-resolved encounter
type CombatResult struct {
	Victory     bool              `json:"victory"`
	XPGained    int               `json:"xpGained"`
	GoldGained  int               `json:"goldGained"`
	ItemsGained []string          `json:"itemsGained"`
	Log         []string          `json:"log"`
	Rounds      int               `json:"rounds"`
	WinChance   int               `json:"winChance"`
	Enemies     []EnemyDescriptor `json:"enemies"`
}

// DailyResult aggregates one calendar day of auto-resolved runs for a hero
type DailyResult struct {
	HeroID    string         `json:"heroId"`
	DateKey   string         `json:"dateKey"`
	Runs      []CombatResult `json:"runs"`
	XPTotal   int            `json:"xpTotal"`
	GoldTotal int            `json:"goldTotal"`
	Victories int            `json:"victories"`
}
