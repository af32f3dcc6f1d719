package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/osse101/Skirmish_Go/internal/domain"
	"github.com/osse101/Skirmish_Go/internal/mission"
)

// heroFlags are the hero and bestiary flags shared by every command
type heroFlags struct {
	id           string
	name         string
	level        int
	strength     int
	dexterity    int
	constitution int
	intelligence int
	bestiaryPath string
	maxRounds    int
}

func (h *heroFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&h.id, "id", "sim-hero", "hero id")
	fs.StringVar(&h.name, "name", mission.DefaultHeroName, "hero display name")
	fs.IntVar(&h.level, "level", 1, "hero level")
	fs.IntVar(&h.strength, "str", 8, "strength")
	fs.IntVar(&h.dexterity, "dex", 8, "dexterity")
	fs.IntVar(&h.constitution, "con", 8, "constitution")
	fs.IntVar(&h.intelligence, "int", 5, "intelligence")
	fs.StringVar(&h.bestiaryPath, "bestiary", "", "bestiary JSON path (default: embedded)")
	fs.IntVar(&h.maxRounds, "max-rounds", 0, "round cap (0: bestiary setting)")
}

func (h *heroFlags) snapshot() domain.HeroSnapshot {
	return domain.HeroSnapshot{
		ID:          h.id,
		Name:        h.name,
		Progression: domain.HeroProgression{Level: h.level},
		Attributes: domain.Attributes{
			Strength:     h.strength,
			Dexterity:    h.dexterity,
			Constitution: h.constitution,
			Intelligence: h.intelligence,
		},
	}
}

func (h *heroFlags) bestiary() (*mission.Bestiary, error) {
	return mission.LoadBestiary(h.bestiaryPath)
}

// parseRoster parses "type:count:level" groups separated by commas.
// count and level default to 1 and the hero level.
func parseRoster(s string, heroLevel int) ([]domain.EnemyDescriptor, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	var out []domain.EnemyDescriptor
	for _, group := range strings.Split(s, ",") {
		parts := strings.Split(strings.TrimSpace(group), ":")
		if len(parts) > 3 || parts[0] == "" {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidEnemy, group)
		}

		d := domain.EnemyDescriptor{Type: parts[0], Count: 1, Level: heroLevel}
		for i, dst := range []*int{&d.Count, &d.Level} {
			if len(parts) <= i+1 {
				break
			}
			n, err := strconv.Atoi(parts[i+1])
			if err != nil {
				return nil, fmt.Errorf("%w: %q", domain.ErrInvalidEnemy, group)
			}
			*dst = n
		}
		out = append(out, d)
	}
	return out, nil
}
