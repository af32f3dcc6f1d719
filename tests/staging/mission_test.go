//go:build staging

package staging

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"
)

func stagingHero(level int) map[string]any {
	return map[string]any{
		"id":    fmt.Sprintf("staging_hero_%d", time.Now().UnixNano()),
		"name":  "Staging",
		"level": level,
		"attributes": map[string]int{
			"forca": 10, "destreza": 8, "constituicao": 9, "inteligencia": 5,
		},
	}
}

// TestGenerateMission checks the plan for a veteran hero
func TestGenerateMission(t *testing.T) {
	resp, body := makeRequest(t, "POST", "/api/v1/missions/generate", map[string]any{"hero": stagingHero(4)})

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
	}

	var plan struct {
		Tier      int              `json:"tier"`
		Enemies   []map[string]any `json:"enemies"`
		WinChance int              `json:"winChance"`
	}
	if err := json.Unmarshal(body, &plan); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if plan.Tier != 2 {
		t.Errorf("Expected tier 2, got %d", plan.Tier)
	}
	if len(plan.Enemies) == 0 {
		t.Error("Expected a non-empty roster")
	}
	if plan.WinChance < 5 || plan.WinChance > 95 {
		t.Errorf("Win chance %d out of range", plan.WinChance)
	}
}

// TestResolveMission resolves an explicit roster end to end
func TestResolveMission(t *testing.T) {
	request := map[string]any{
		"hero":    stagingHero(2),
		"enemies": []map[string]any{{"type": "goblin", "count": 2, "level": 1}},
	}
	resp, body := makeRequest(t, "POST", "/api/v1/missions/resolve", request)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
	}

	var result struct {
		Log     []string `json:"log"`
		Rounds  int      `json:"rounds"`
		Summary string   `json:"summary"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(result.Log) == 0 || result.Summary == "" {
		t.Error("Expected a narrated log and summary")
	}
}

func TestResolveMission_UnknownEnemy(t *testing.T) {
	request := map[string]any{
		"hero":    stagingHero(2),
		"enemies": []map[string]any{{"type": "dragon", "count": 1, "level": 1}},
	}
	resp, body := makeRequest(t, "POST", "/api/v1/missions/resolve", request)

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d. Body: %s", resp.StatusCode, string(body))
	}
}

// TestDailyResult_Memoized requests the same day twice and expects the
// stored result back
func TestDailyResult_Memoized(t *testing.T) {
	request := map[string]any{"hero": stagingHero(3)}

	resp, first := makeRequest(t, "POST", "/api/v1/idle/daily", request)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(first))
	}

	resp, second := makeRequest(t, "POST", "/api/v1/idle/daily", request)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(second))
	}

	if string(first) != string(second) {
		t.Error("Expected the second call to return the stored result")
	}
}
