package mission

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/osse101/Skirmish_Go/internal/domain"
)

func testBestiary(t testing.TB) *Bestiary {
	t.Helper()
	b, err := DefaultBestiary()
	require.NoError(t, err)
	return b
}

func testHero(level int, attrs domain.Attributes) domain.HeroSnapshot {
	return domain.HeroSnapshot{
		ID:          "hero-1",
		Name:        "Aria",
		Progression: domain.HeroProgression{Level: level},
		Attributes:  attrs,
	}
}

func evenAttrs(v int) domain.Attributes {
	return domain.Attributes{Strength: v, Dexterity: v, Constitution: v, Intelligence: v}
}

func fixedSeed(seed int64) func() (int64, error) {
	return func() (int64, error) { return seed, nil }
}
