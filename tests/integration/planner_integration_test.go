// README: End-to-end planning test against a running wayfare API.
package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"
)

// TestPlanEndpointLive exercises the full pipeline (geocoding, Gemini,
// geographic validation) against a running server with real API keys.
// It skips unless WAYFARE_API_BASE_URL is set.
func TestPlanEndpointLive(t *testing.T) {
	baseURL := strings.TrimRight(os.Getenv("WAYFARE_API_BASE_URL"), "/")
	if baseURL == "" {
		t.Skip("WAYFARE_API_BASE_URL not set; skipping live API test")
	}

	client := &http.Client{Timeout: 120 * time.Second}

	body, _ := json.Marshal(map[string]any{
		"to":        "Seattle",
		"days":      "day trip",
		"budget":    "mid-range",
		"interests": []string{"food"},
	})
	resp, err := client.Post(baseURL+"/api/itinerary", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST /api/itinerary: %v", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, raw)
	}

	var result struct {
		Itinerary []struct {
			Day   int    `json:"day"`
			Title string `json:"title"`
			Color string `json:"color"`
			Stops []struct {
				ID   string  `json:"id"`
				Name string  `json:"name"`
				Lat  float64 `json:"lat"`
				Lng  float64 `json:"lng"`
			} `json:"stops"`
		} `json:"itinerary"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		t.Fatalf("decode response: %v\n%s", err, raw)
	}
	if len(result.Itinerary) != 1 {
		t.Fatalf("expected a 1-day itinerary, got %d days", len(result.Itinerary))
	}

	day := result.Itinerary[0]
	if day.Color == "" {
		t.Error("day color missing")
	}
	if len(day.Stops) == 0 {
		t.Fatal("day has no stops")
	}
	for _, stop := range day.Stops {
		if stop.Name == "" || stop.ID == "" {
			t.Errorf("incomplete stop: %+v", stop)
		}
		// Seattle proper; a generous sanity box rather than a strict radius.
		if stop.Lat < 46.5 || stop.Lat > 48.5 || stop.Lng < -123.5 || stop.Lng > -121.0 {
			t.Errorf("stop %q outside the Seattle area: (%f, %f)", stop.Name, stop.Lat, stop.Lng)
		}
	}

	t.Logf("got itinerary: day %d %q with %d stops", day.Day, day.Title, len(day.Stops))
}

// TestHealthLive confirms the server answers its liveness probe.
func TestHealthLive(t *testing.T) {
	baseURL := strings.TrimRight(os.Getenv("WAYFARE_API_BASE_URL"), "/")
	if baseURL == "" {
		t.Skip("WAYFARE_API_BASE_URL not set; skipping live API test")
	}
	resp, err := http.Get(fmt.Sprintf("%s/health", baseURL))
	if err != nil {
		t.Fatalf("GET /health: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
}
