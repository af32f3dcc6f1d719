package combat

import "github.com/osse101/Skirmish_Go/internal/domain"

// scriptedRoller returns pre-set Intn values in order, then 0 once exhausted
type scriptedRoller struct {
	vals []int
	i    int
}

func script(vals ...int) *scriptedRoller {
	return &scriptedRoller{vals: vals}
}

func (s *scriptedRoller) Intn(n int) int {
	if s.i >= len(s.vals) {
		return 0
	}
	v := s.vals[s.i]
	s.i++
	if v >= n {
		v = n - 1
	}
	return v
}

func newEntity(name string, hp, armor int, attrs domain.Attributes) *domain.Entity {
	return &domain.Entity{Name: name, HP: hp, MaxHP: hp, Armor: armor, Attrs: attrs}
}

func baseAttrs() domain.Attributes {
	return domain.Attributes{Strength: 6, Dexterity: 6, Constitution: 6, Intelligence: 4}
}
