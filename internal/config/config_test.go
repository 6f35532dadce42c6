package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Fatalf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.PricePerUnit != 6.0 {
		t.Fatalf("PricePerUnit = %v, want 6", cfg.PricePerUnit)
	}
	if cfg.SubsidyCap != 78000 {
		t.Fatalf("SubsidyCap = %v, want 78000", cfg.SubsidyCap)
	}
	if cfg.RenderTimeoutSec != 30 {
		t.Fatalf("RenderTimeoutSec = %v, want 30", cfg.RenderTimeoutSec)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("PRICE_PER_UNIT", "7.5")
	t.Setenv("MAX_CONCURRENT_RENDERS", "2")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Fatalf("Port = %q, want 9090", cfg.Port)
	}
	if cfg.PricePerUnit != 7.5 {
		t.Fatalf("PricePerUnit = %v, want 7.5", cfg.PricePerUnit)
	}
	if cfg.MaxConcurrentRenders != 2 {
		t.Fatalf("MaxConcurrentRenders = %v, want 2", cfg.MaxConcurrentRenders)
	}
}

func TestLoadRejectsNonsense(t *testing.T) {
	t.Setenv("PRICE_PER_UNIT", "-3")
	t.Setenv("MAX_CONCURRENT_RENDERS", "0")
	t.Setenv("RENDER_TIMEOUT_SEC", "-1")

	cfg := Load()

	if cfg.PricePerUnit != 6.0 {
		t.Fatalf("PricePerUnit = %v, want default 6", cfg.PricePerUnit)
	}
	if cfg.MaxConcurrentRenders != 1 {
		t.Fatalf("MaxConcurrentRenders = %v, want 1", cfg.MaxConcurrentRenders)
	}
	if cfg.RenderTimeoutSec != 30 {
		t.Fatalf("RenderTimeoutSec = %v, want 30", cfg.RenderTimeoutSec)
	}
}
