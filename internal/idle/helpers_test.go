package idle

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/Skirmish_Go/internal/domain"
)

// countingResolver returns a distinct result on every call
type countingResolver struct {
	calls   atomic.Int32
	release chan struct{}
}

func (r *countingResolver) AutoResolveCombat(_ context.Context, hero domain.HeroSnapshot, enemies []domain.EnemyDescriptor) (*domain.CombatResult, error) {
	if r.release != nil {
		<-r.release
	}
	n := int(r.calls.Add(1))
	return &domain.CombatResult{
		Victory:     n%2 == 1,
		XPGained:    10 * n,
		GoldGained:  5 * n,
		ItemsGained: []string{},
		Log:         []string{"run"},
		Rounds:      n,
		Enemies:     enemies,
	}, nil
}

// mapStore is an in-memory Store
type mapStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMapStore() *mapStore {
	return &mapStore{data: make(map[string][]byte)}
}

func (s *mapStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *mapStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

// MockStore is a testify mock of AtomicStore
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	args := m.Called(ctx, key)
	v, _ := args.Get(0).([]byte)
	return v, args.Bool(1), args.Error(2)
}

func (m *MockStore) Set(ctx context.Context, key string, value []byte) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockStore) SetIfAbsent(ctx context.Context, key string, value []byte) ([]byte, bool, error) {
	args := m.Called(ctx, key, value)
	v, _ := args.Get(0).([]byte)
	return v, args.Bool(1), args.Error(2)
}

// MockPruner is a testify mock of Pruner
type MockPruner struct {
	mock.Mock
}

func (m *MockPruner) PruneBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

// clock is a settable time source
type clock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func testHero(id string, level int) domain.HeroSnapshot {
	return domain.HeroSnapshot{
		ID:          id,
		Name:        "Aria",
		Progression: domain.HeroProgression{Level: level},
		Attributes:  domain.Attributes{Strength: 6, Dexterity: 6, Constitution: 6, Intelligence: 4},
	}
}
