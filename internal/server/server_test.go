package server

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/loftlab/roomforge/internal/assets"
	"github.com/loftlab/roomforge/internal/config"
	"github.com/loftlab/roomforge/internal/scene"
)

func TestHealthLive(t *testing.T) {
	builder := scene.NewBuilder(assets.NewManager(t.TempDir()), nil)
	app := New(config.Default().Server, builder)

	req := httptest.NewRequest("GET", "/health/live", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Test() error: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestBuildSceneEndpoint(t *testing.T) {
	builder := scene.NewBuilder(assets.NewManager(t.TempDir()), nil)
	app := New(config.Default().Server, builder)

	body := `{"room": {"width": 4, "length": 3, "height": 2.5}}`
	req := httptest.NewRequest("POST", "/api/v1/scene", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Test() error: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var desc struct {
		ID    string `json:"id"`
		Walls []any  `json:"walls"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&desc); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if desc.ID == "" {
		t.Error("expected non-empty scene id")
	}
	if len(desc.Walls) != 4 {
		t.Errorf("got %d walls, want 4", len(desc.Walls))
	}
}

func TestBuildSceneEndpointRejectsBadSession(t *testing.T) {
	builder := scene.NewBuilder(assets.NewManager(t.TempDir()), nil)
	app := New(config.Default().Server, builder)

	body := `{"room": {"width": 0, "length": 3, "height": 2.5}}`
	req := httptest.NewRequest("POST", "/api/v1/scene", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Test() error: %v", err)
	}
	if resp.StatusCode != 400 {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}
