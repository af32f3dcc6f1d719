package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Skirmish_Go/internal/domain"
	"github.com/osse101/Skirmish_Go/internal/mission"
)

// MockMissionService mocks the mission.Service interface
type MockMissionService struct {
	mock.Mock
}

func (m *MockMissionService) AutoResolveCombat(ctx context.Context, hero domain.HeroSnapshot, enemies []domain.EnemyDescriptor) (*domain.CombatResult, error) {
	args := m.Called(ctx, hero, enemies)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CombatResult), args.Error(1)
}

func (m *MockMissionService) GenerateMission(ctx context.Context, hero domain.HeroSnapshot) (*mission.Plan, error) {
	args := m.Called(ctx, hero)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mission.Plan), args.Error(1)
}

func (m *MockMissionService) ResolveMission(ctx context.Context, hero domain.HeroSnapshot) (*domain.CombatResult, error) {
	args := m.Called(ctx, hero)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CombatResult), args.Error(1)
}

// MockIdleService mocks the idle.Service interface
type MockIdleService struct {
	mock.Mock
}

func (m *MockIdleService) GetOrRunDailyResult(ctx context.Context, hero domain.HeroSnapshot, maxRuns int) (*domain.DailyResult, error) {
	args := m.Called(ctx, hero, maxRuns)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyResult), args.Error(1)
}

// MockDBPool mocks the database.Pool interface
type MockDBPool struct {
	mock.Mock
}

func (m *MockDBPool) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDBPool) Close() {
	m.Called()
}

func serve(t *testing.T, h http.HandlerFunc, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func heroRequest() HeroRequest {
	return HeroRequest{
		ID:    "hero-1",
		Name:  "Aria",
		Level: 3,
		Attributes: domain.Attributes{
			Strength: 8, Dexterity: 7, Constitution: 6, Intelligence: 5,
		},
	}
}

func entity(name string, hp int) *domain.Entity {
	return &domain.Entity{
		Name:  name,
		HP:    hp,
		MaxHP: hp,
		Attrs: domain.Attributes{Strength: 6, Dexterity: 6, Constitution: 6, Intelligence: 4},
	}
}
