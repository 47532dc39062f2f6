package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := `min_score: 3
enable: email,ssn
no_color: true
max_bytes: 1048576
budget: 2s
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MinScore == nil || *cfg.MinScore != 3 {
		t.Fatalf("min_score = %v", cfg.MinScore)
	}
	if cfg.Enable == nil || *cfg.Enable != "email,ssn" {
		t.Fatalf("enable = %v", cfg.Enable)
	}
	if cfg.NoColor == nil || !*cfg.NoColor {
		t.Fatalf("no_color = %v", cfg.NoColor)
	}
	if cfg.MaxBytes == nil || *cfg.MaxBytes != 1048576 {
		t.Fatalf("max_bytes = %v", cfg.MaxBytes)
	}
	if cfg.Budget == nil || *cfg.Budget != "2s" {
		t.Fatalf("budget = %v", cfg.Budget)
	}
	// Unset keys stay nil so merging can tell unset from zero.
	if cfg.Disable != nil || cfg.Audit != nil || cfg.ReportDir != nil {
		t.Fatalf("unset fields must stay nil: %+v", cfg)
	}
}

func TestLoadFileInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("min_score: [broken"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadLocalPrecedence(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "vaulty.yml"), []byte("min_score: 1"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".vaulty.yml"), []byte("min_score: 9"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadLocal(dir)
	if err != nil {
		t.Fatal(err)
	}
	// The dotfile wins over the bare name.
	if cfg.MinScore == nil || *cfg.MinScore != 9 {
		t.Fatalf("min_score = %v", cfg.MinScore)
	}
}

func TestLoadLocalMissing(t *testing.T) {
	if _, err := LoadLocal(t.TempDir()); err == nil {
		t.Fatal("expected error when no config present")
	}
}

func TestLoadGlobal(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)
	if err := os.MkdirAll(filepath.Join(base, "vaulty"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(base, "vaulty", "config.yml"), []byte("audit: false"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadGlobal()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Audit == nil || *cfg.Audit {
		t.Fatalf("audit = %v", cfg.Audit)
	}
}
