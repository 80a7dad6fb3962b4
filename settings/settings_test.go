package settings

import (
	"testing"
)

func TestInitializeConfigDefaults(t *testing.T) {
	if err := InitializeConfig(); err != nil {
		t.Fatalf("InitializeConfig failed: %v", err)
	}

	config := GetConfig()
	if config.Server.Port != 8080 {
		t.Errorf("Expected default port 8080, got %d", config.Server.Port)
	}
	if config.Search.MaxDistance != 2 {
		t.Errorf("Expected default search distance 2, got %d", config.Search.MaxDistance)
	}
	if len(config.Server.CORS.AllowOrigins) == 0 {
		t.Error("Expected default CORS origins")
	}
}

func TestInitializeConfigEnvOverride(t *testing.T) {
	t.Setenv("MILLATLAS_PORT", "9090")
	t.Setenv("MILLATLAS_CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("MILLATLAS_TILE_KEY", "secret")

	if err := InitializeConfig(); err != nil {
		t.Fatalf("InitializeConfig failed: %v", err)
	}

	config := GetConfig()
	if config.Server.Port != 9090 {
		t.Errorf("Expected port 9090, got %d", config.Server.Port)
	}
	if len(config.Server.CORS.AllowOrigins) != 2 || config.Server.CORS.AllowOrigins[1] != "https://b.example" {
		t.Errorf("Unexpected CORS origins: %v", config.Server.CORS.AllowOrigins)
	}
	if config.Tiles.APIKey != "secret" {
		t.Errorf("Expected tile key override, got %q", config.Tiles.APIKey)
	}
}

func TestInitializeConfigBadInt(t *testing.T) {
	t.Setenv("MILLATLAS_PORT", "not-a-port")

	if err := InitializeConfig(); err != nil {
		t.Fatalf("InitializeConfig failed: %v", err)
	}
	if got := GetConfig().Server.Port; got != 8080 {
		t.Errorf("Expected fallback port 8080 for a bad value, got %d", got)
	}
}
