package handler

import "github.com/osse101/Skirmish_Go/internal/domain"

// HeroRequest is the hero snapshot accepted by mission and idle endpoints
type HeroRequest struct {
	ID         string            `json:"id" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Name       string            `json:"name" validate:"max=50"`
	Level      int               `json:"level" validate:"gte=1,lte=100"`
	Attributes domain.Attributes `json:"attributes"`
}

// Snapshot converts the request into the domain projection
func (h HeroRequest) Snapshot() domain.HeroSnapshot {
	return domain.HeroSnapshot{
		ID:          h.ID,
		Name:        h.Name,
		Progression: domain.HeroProgression{Level: h.Level},
		Attributes:  h.Attributes,
	}
}

// EnemyRequest describes one group in a requested enemy roster
type EnemyRequest struct {
	Type  string `json:"type" validate:"required,max=50"`
	Count int    `json:"count" validate:"gte=1,lte=20"`
	Level int    `json:"level" validate:"gte=1,lte=100"`
}

func toDescriptors(reqs []EnemyRequest) []domain.EnemyDescriptor {
	out := make([]domain.EnemyDescriptor, 0, len(reqs))
	for _, e := range reqs {
		out = append(out, domain.EnemyDescriptor{Type: e.Type, Count: e.Count, Level: e.Level})
	}
	return out
}
