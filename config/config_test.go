package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.App.Name != "shopapi" {
		t.Errorf("app.name = %s, want shopapi", cfg.App.Name)
	}
	if !cfg.IsDevelopment() {
		t.Error("default env should be development")
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("server.port = %s, want 8080", cfg.Server.Port)
	}
	if cfg.Database.Type != "mysql" {
		t.Errorf("database.type = %s, want mysql", cfg.Database.Type)
	}
	if cfg.Listing.EntityRowCap != 1000 {
		t.Errorf("listing.entity_row_cap = %d, want 1000", cfg.Listing.EntityRowCap)
	}
	if cfg.Listing.ItemBatchSize != 100 {
		t.Errorf("listing.item_batch_size = %d, want 100", cfg.Listing.ItemBatchSize)
	}
	if !cfg.Database.Retry.Enabled || cfg.Database.Retry.MaxAttempts != 3 {
		t.Errorf("retry defaults = %+v", cfg.Database.Retry)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
app:
  env: production
server:
  port: "9090"
  shutdown_timeout: 5s
database:
  type: memory
listing:
  entity_row_cap: 50
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.IsProduction() {
		t.Error("env = production not applied")
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("server.port = %s, want 9090", cfg.Server.Port)
	}
	if cfg.Server.ShutdownTimeout != 5*time.Second {
		t.Errorf("shutdown_timeout = %v, want 5s", cfg.Server.ShutdownTimeout)
	}
	if cfg.Database.Type != "memory" {
		t.Errorf("database.type = %s, want memory", cfg.Database.Type)
	}
	if cfg.Listing.EntityRowCap != 50 {
		t.Errorf("listing.entity_row_cap = %d, want 50", cfg.Listing.EntityRowCap)
	}
	// Untouched keys keep their defaults.
	if cfg.Listing.ItemBatchSize != 100 {
		t.Errorf("listing.item_batch_size = %d, want default 100", cfg.Listing.ItemBatchSize)
	}
}

func TestDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host: "localhost", Port: "3306",
		Username: "root", Password: "secret", Database: "shop",
	}
	dsn := cfg.DSN()
	want := "root:secret@tcp(localhost:3306)/shop"
	if len(dsn) < len(want) || dsn[:len(want)] != want {
		t.Errorf("DSN() = %s, want prefix %s", dsn, want)
	}
}
