package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Skirmish_Go/internal/domain"
	"github.com/osse101/Skirmish_Go/internal/mission"
)

func sampleResult() *domain.CombatResult {
	return &domain.CombatResult{
		Victory:     true,
		XPGained:    36,
		GoldGained:  24,
		ItemsGained: []string{"wolf_pelt"},
		Log:         []string{"Aria faces 1 Wolf.", "Victory!"},
		Rounds:      4,
		WinChance:   71,
		Enemies:     []domain.EnemyDescriptor{{Type: "wolf", Count: 1, Level: 3}},
	}
}

func TestHandleGenerateMission(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*MockMissionService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			requestBody: GenerateMissionRequest{Hero: heroRequest()},
			setupMock: func(m *MockMissionService) {
				m.On("GenerateMission", mock.Anything, heroRequest().Snapshot()).Return(&mission.Plan{
					Tier:           mission.TierVeteran,
					Enemies:        []domain.EnemyDescriptor{{Type: "wolf", Count: 2, Level: 3}},
					WinChance:      64,
					VictoryRewards: mission.Reward{XP: 36, Gold: 24},
					DefeatRewards:  mission.Reward{XP: 18, Gold: 12},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"winChance":64`,
		},
		{
			name: "Invalid Request - Missing hero id",
			requestBody: GenerateMissionRequest{Hero: HeroRequest{
				Level: 2,
			}},
			setupMock:      func(m *MockMissionService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"hero.id":"This field is required"`,
		},
		{
			name: "Invalid Request - Level zero",
			requestBody: GenerateMissionRequest{Hero: HeroRequest{
				ID: "hero-1",
			}},
			setupMock:      func(m *MockMissionService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"hero.level"`,
		},
		{
			name: "Invalid Request - Level above max",
			requestBody: GenerateMissionRequest{Hero: HeroRequest{
				ID:    "hero-1",
				Level: domain.MaxLevel + 1,
			}},
			setupMock:      func(m *MockMissionService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"hero.level":"Must be less than or equal to 100"`,
		},
		{
			name:        "Service Error",
			requestBody: GenerateMissionRequest{Hero: heroRequest()},
			setupMock: func(m *MockMissionService) {
				m.On("GenerateMission", mock.Anything, mock.Anything).Return(nil, fmt.Errorf("lookup: %w", domain.ErrUnknownEnemy))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgUnknownEnemyError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := &MockMissionService{}
			tt.setupMock(mockSvc)

			w := serve(t, NewMissionHandler(mockSvc).HandleGenerate, "/missions/generate", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestHandleResolveMission(t *testing.T) {
	t.Run("empty roster fights the level roster", func(t *testing.T) {
		mockSvc := &MockMissionService{}
		mockSvc.On("ResolveMission", mock.Anything, heroRequest().Snapshot()).Return(sampleResult(), nil)

		w := serve(t, NewMissionHandler(mockSvc).HandleResolve, "/missions/resolve", ResolveMissionRequest{Hero: heroRequest()})

		require.Equal(t, http.StatusOK, w.Code)
		res := decode[map[string]interface{}](t, w)
		assert.Equal(t, true, res["victory"])
		assert.EqualValues(t, 36, res["xpGained"])
		assert.Contains(t, res["summary"], "Victory!")
		mockSvc.AssertExpectations(t)
		mockSvc.AssertNotCalled(t, "AutoResolveCombat", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("explicit roster", func(t *testing.T) {
		enemies := []domain.EnemyDescriptor{{Type: "goblin", Count: 2, Level: 1}, {Type: "wolf", Count: 1, Level: 2}}
		mockSvc := &MockMissionService{}
		mockSvc.On("AutoResolveCombat", mock.Anything, heroRequest().Snapshot(), enemies).Return(sampleResult(), nil)

		w := serve(t, NewMissionHandler(mockSvc).HandleResolve, "/missions/resolve", ResolveMissionRequest{
			Hero: heroRequest(),
			Enemies: []EnemyRequest{
				{Type: "goblin", Count: 2, Level: 1},
				{Type: "wolf", Count: 1, Level: 2},
			},
		})

		assert.Equal(t, http.StatusOK, w.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("enemy count must be positive", func(t *testing.T) {
		mockSvc := &MockMissionService{}

		w := serve(t, NewMissionHandler(mockSvc).HandleResolve, "/missions/resolve", ResolveMissionRequest{
			Hero:    heroRequest(),
			Enemies: []EnemyRequest{{Type: "goblin", Count: 0, Level: 1}},
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		res := decode[ValidationErrorResponse](t, w)
		assert.Contains(t, res.Fields, "enemies[0].count")
		mockSvc.AssertExpectations(t)
	})

	t.Run("enemy level is capped", func(t *testing.T) {
		mockSvc := &MockMissionService{}

		w := serve(t, NewMissionHandler(mockSvc).HandleResolve, "/missions/resolve", ResolveMissionRequest{
			Hero:    heroRequest(),
			Enemies: []EnemyRequest{{Type: "troll", Count: 1, Level: domain.MaxLevel + 1}},
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		res := decode[ValidationErrorResponse](t, w)
		assert.Contains(t, res.Fields, "enemies[0].level")
		mockSvc.AssertExpectations(t)
	})

	t.Run("storage details are hidden", func(t *testing.T) {
		mockSvc := &MockMissionService{}
		mockSvc.On("ResolveMission", mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("%w: connection refused on 10.0.0.3", domain.ErrDatabaseError))

		w := serve(t, NewMissionHandler(mockSvc).HandleResolve, "/missions/resolve", ResolveMissionRequest{Hero: heroRequest()})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "10.0.0.3")
		assert.Contains(t, w.Body.String(), ErrMsgGenericServerError)
	})
}
