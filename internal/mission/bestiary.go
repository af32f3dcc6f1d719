package mission

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/osse101/Skirmish_Go/internal/domain"
)

//go:embed bestiary.json
var defaultBestiaryJSON []byte

// Bestiary holds the tunable enemy stat blocks and loot tables
type Bestiary struct {
	Version         string               `json:"version"`
	Settings        BestiarySettings     `json:"settings"`
	IntroNarratives []string             `json:"intro_narratives"`
	Enemies         map[string]*EnemyDef `json:"enemies"`
}

// BestiarySettings holds parameters shared by every enemy type
type BestiarySettings struct {
	HPPerLevel int `json:"hp_per_level"`
	MaxRounds  int `json:"max_rounds"`
}

// EnemyDef is the stat block of one enemy type at level 1
type EnemyDef struct {
	DisplayName  string    `json:"display_name"`
	PluralName   string    `json:"plural_name"`
	Strength     int       `json:"strength"`
	Dexterity    int       `json:"dexterity"`
	Constitution int       `json:"constitution"`
	Armor        int       `json:"armor"`
	BaseHP       int       `json:"base_hp"`
	Drops        []DropDef `json:"drops"`
}

// DropDef is one loot table entry. Chance is a percentage rolled per individual.
type DropDef struct {
	Item   string `json:"item"`
	Chance int    `json:"chance"`
}

// DefaultBestiary returns the bestiary compiled into the binary
func DefaultBestiary() (*Bestiary, error) {
	return parseBestiary(defaultBestiaryJSON)
}

// LoadBestiary loads and validates a bestiary from a JSON file. An empty
// path selects the built-in bestiary.
func LoadBestiary(path string) (*Bestiary, error) {
	if path == "" {
		return DefaultBestiary()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read bestiary: %w", err)
	}

	return parseBestiary(data)
}

func parseBestiary(data []byte) (*Bestiary, error) {
	var b Bestiary
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("failed to parse bestiary: %w", err)
	}

	normalized := make(map[string]*EnemyDef, len(b.Enemies))
	for name, def := range b.Enemies {
		normalized[normalizeType(name)] = def
	}
	b.Enemies = normalized

	if err := validateBestiary(&b); err != nil {
		return nil, fmt.Errorf("invalid bestiary: %w", err)
	}

	return &b, nil
}

func validateBestiary(b *Bestiary) error {
	if len(b.Enemies) == 0 {
		return fmt.Errorf("no enemies defined")
	}

	if len(b.IntroNarratives) == 0 {
		return fmt.Errorf("no intro narratives defined")
	}

	if b.Settings.HPPerLevel < 0 {
		return fmt.Errorf("hp_per_level must not be negative")
	}

	if b.Settings.MaxRounds < 0 {
		return fmt.Errorf("max_rounds must not be negative")
	}

	for name, def := range b.Enemies {
		if def == nil {
			return fmt.Errorf("enemy %q has no definition", name)
		}

		if def.DisplayName == "" {
			return fmt.Errorf("enemy %q has no display_name", name)
		}

		if def.BaseHP <= 0 {
			return fmt.Errorf("enemy %q base_hp must be positive", name)
		}

		if def.Armor < 0 {
			return fmt.Errorf("enemy %q armor must not be negative", name)
		}

		for _, v := range []int{def.Strength, def.Dexterity, def.Constitution} {
			if v < domain.MinAttrValue || v > domain.MaxAttrValue {
				return fmt.Errorf("enemy %q attribute %d outside [%d, %d]", name, v, domain.MinAttrValue, domain.MaxAttrValue)
			}
		}

		for _, d := range def.Drops {
			if d.Item == "" {
				return fmt.Errorf("enemy %q has a drop without an item", name)
			}
			if d.Chance < 0 || d.Chance > 100 {
				return fmt.Errorf("enemy %q drop %q chance %d outside [0, 100]", name, d.Item, d.Chance)
			}
		}
	}

	// Every roster type must resolve, whatever the override file contains
	for _, required := range []string{EnemyGoblin, EnemyWolf, EnemyBandit, EnemySkeleton, EnemyTroll} {
		if _, ok := b.Enemies[required]; !ok {
			return fmt.Errorf("roster enemy %q is missing", required)
		}
	}

	return nil
}

// Lookup returns the stat block for an enemy type
func (b *Bestiary) Lookup(enemyType string) (*EnemyDef, bool) {
	def, ok := b.Enemies[normalizeType(enemyType)]
	return def, ok
}

// Name returns the display name for count individuals
func (d *EnemyDef) Name(count int) string {
	if count != 1 && d.PluralName != "" {
		return d.PluralName
	}
	return d.DisplayName
}

func normalizeType(t string) string {
	return strings.ToLower(strings.TrimSpace(t))
}
