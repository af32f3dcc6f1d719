package mission

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Skirmish_Go/internal/domain"
)

func writeBestiary(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bestiary.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaultBestiary(t *testing.T) {
	b := testBestiary(t)

	for _, enemy := range []string{EnemyGoblin, EnemyWolf, EnemyBandit, EnemySkeleton, EnemyTroll} {
		def, ok := b.Lookup(enemy)
		require.True(t, ok, enemy)
		assert.Positive(t, def.BaseHP)
	}

	def, ok := b.Lookup("  GOBLIN ")
	require.True(t, ok)
	assert.Equal(t, "Goblin", def.Name(1))
	assert.Equal(t, "Goblins", def.Name(2))
}

func TestLoadBestiary_EmptyPathUsesDefault(t *testing.T) {
	b, err := LoadBestiary("")
	require.NoError(t, err)
	assert.Len(t, b.Enemies, 5)
}

func TestLoadBestiary_Errors(t *testing.T) {
	_, err := LoadBestiary(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read bestiary")

	_, err = LoadBestiary(writeBestiary(t, "{not json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse bestiary")

	_, err = LoadBestiary(writeBestiary(t, `{
		"intro_narratives": ["%s meets %s"],
		"enemies": {"goblin": {"display_name": "Goblin", "base_hp": 10}}
	}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `roster enemy "wolf" is missing`)
}

func TestValidateBestiary(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(b *Bestiary)
		wantErr string
	}{
		{"bad drop chance", func(b *Bestiary) { b.Enemies[EnemyWolf].Drops = []DropDef{{Item: "x", Chance: 150}} }, "chance 150"},
		{"empty drop item", func(b *Bestiary) { b.Enemies[EnemyWolf].Drops = []DropDef{{Chance: 5}} }, "drop without an item"},
		{"zero hp", func(b *Bestiary) { b.Enemies[EnemyTroll].BaseHP = 0 }, "base_hp must be positive"},
		{"negative armor", func(b *Bestiary) { b.Enemies[EnemyTroll].Armor = -1 }, "armor must not be negative"},
		{"attribute out of range", func(b *Bestiary) { b.Enemies[EnemyBandit].Strength = 101 }, "outside [0, 100]"},
		{"no narratives", func(b *Bestiary) { b.IntroNarratives = nil }, "no intro narratives"},
		{"negative max rounds", func(b *Bestiary) { b.Settings.MaxRounds = -1 }, "max_rounds"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testBestiary(t)
			tt.mutate(b)
			err := validateBestiary(b)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestBuildEnemy_NoviceRoster(t *testing.T) {
	e, err := testBestiary(t).BuildEnemy(RosterForLevel(1))
	require.NoError(t, err)

	assert.Equal(t, "2 Goblins and 1 Wolf", e.Name)
	assert.Equal(t, 18*2+20, e.MaxHP)
	assert.Equal(t, e.MaxHP, e.HP)
	assert.Equal(t, 0, e.Armor)
	assert.Equal(t, 5+2, e.Attrs.Strength)
	assert.Equal(t, (7*2+8)/3, e.Attrs.Dexterity)
	assert.Equal(t, 4, e.Attrs.Constitution)
}

func TestBuildEnemy_EliteRosterScalesWithLevel(t *testing.T) {
	e, err := testBestiary(t).BuildEnemy(RosterForLevel(6))
	require.NoError(t, err)

	assert.Equal(t, "1 Troll and 2 Bandits", e.Name)
	assert.Equal(t, (60+4*5)+(28+4*5)*2, e.MaxHP)
	assert.Equal(t, 10+2+3, e.Attrs.Strength)
	assert.Equal(t, 3, e.Armor)
}

func TestBuildEnemy_LargestRoster(t *testing.T) {
	e, err := testBestiary(t).BuildEnemy([]domain.EnemyDescriptor{{Type: EnemyTroll, Count: domain.MaxEnemyCount, Level: domain.MaxLevel}})
	require.NoError(t, err)
	assert.Equal(t, (60+4*(domain.MaxLevel-1))*domain.MaxEnemyCount, e.MaxHP)
	assert.LessOrEqual(t, e.Attrs.Strength, domain.MaxAttrValue)
}

func TestClampAttrs(t *testing.T) {
	got := clampAttrs(domain.Attributes{Strength: 500, Dexterity: -3, Constitution: 40, Intelligence: 101})
	assert.Equal(t, domain.Attributes{Strength: domain.MaxAttrValue, Dexterity: domain.MinAttrValue, Constitution: 40, Intelligence: domain.MaxAttrValue}, got)
}

func TestValidateRoster(t *testing.T) {
	b := testBestiary(t)

	tests := []struct {
		name    string
		enemies []domain.EnemyDescriptor
		wantErr error
	}{
		{"empty", nil, domain.ErrEmptyRoster},
		{"unknown type", []domain.EnemyDescriptor{{Type: "dragon", Count: 1, Level: 1}}, domain.ErrUnknownEnemy},
		{"zero count", []domain.EnemyDescriptor{{Type: EnemyWolf, Count: 0, Level: 1}}, domain.ErrInvalidEnemy},
		{"zero level", []domain.EnemyDescriptor{{Type: EnemyWolf, Count: 1, Level: 0}}, domain.ErrInvalidEnemy},
		{"level above max", []domain.EnemyDescriptor{{Type: EnemyWolf, Count: 1, Level: domain.MaxLevel + 1}}, domain.ErrInvalidEnemy},
		{"count above max", []domain.EnemyDescriptor{{Type: EnemyWolf, Count: domain.MaxEnemyCount + 1, Level: 1}}, domain.ErrInvalidEnemy},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, b.ValidateRoster(tt.enemies), tt.wantErr)
		})
	}

	assert.NoError(t, b.ValidateRoster(RosterForLevel(4)))
}

func TestBuildHero(t *testing.T) {
	h := BuildHero(testHero(1, evenAttrs(6)))
	assert.Equal(t, "Aria", h.Name)
	assert.Equal(t, 40+6*6+5, h.MaxHP)
	assert.Equal(t, h.MaxHP, h.HP)
	assert.Equal(t, 1, h.Armor)

	anon := BuildHero(testHero(2, domain.Attributes{Strength: -4, Constitution: 400}))
	assert.Equal(t, DefaultHeroName, anon.Name)
	assert.Equal(t, 0, anon.Attrs.Strength)
	assert.Equal(t, 100, anon.Attrs.Constitution)
	assert.Equal(t, 25, anon.Armor)
}

func TestJoinNames(t *testing.T) {
	assert.Equal(t, "", joinNames(nil))
	assert.Equal(t, "a", joinNames([]string{"a"}))
	assert.Equal(t, "a and b", joinNames([]string{"a", "b"}))
	assert.Equal(t, "a, b and c", joinNames([]string{"a", "b", "c"}))
}
