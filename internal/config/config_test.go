package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestInitTaskgenDirCreatesStructure(t *testing.T) {
	projectDir := t.TempDir()
	if err := InitTaskgenDir(projectDir); err != nil {
		t.Fatalf("init taskgen dir: %v", err)
	}
	for _, sub := range []string{"logs", "exports"} {
		if _, err := os.Stat(filepath.Join(projectDir, TaskgenDir, sub)); err != nil {
			t.Fatalf("expected %s directory: %v", sub, err)
		}
	}
	if _, err := os.Stat(filepath.Join(projectDir, TaskgenDir, "config.yaml")); err != nil {
		t.Fatalf("expected default config file: %v", err)
	}
}

func TestInitTaskgenDirKeepsExistingConfig(t *testing.T) {
	projectDir := t.TempDir()
	if err := InitTaskgenDir(projectDir); err != nil {
		t.Fatalf("init: %v", err)
	}
	custom := "version: 1\nserver:\n  host: 10.0.0.5\n  port: 9000\n"
	path := filepath.Join(projectDir, TaskgenDir, "config.yaml")
	if err := os.WriteFile(path, []byte(custom), 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}
	if err := InitTaskgenDir(projectDir); err != nil {
		t.Fatalf("re-init: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if string(data) != custom {
		t.Fatalf("init must not overwrite an existing config")
	}
}

func TestNewConfigDefaults(t *testing.T) {
	projectDir := t.TempDir()
	cfg, err := NewConfig(projectDir)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if got := cfg.ServiceBaseURL(); got != "http://127.0.0.1:5000" {
		t.Fatalf("unexpected default base url %s", got)
	}
	if got := cfg.ClientTimeout(); got != 10*time.Second {
		t.Fatalf("unexpected default timeout %s", got)
	}
	if !strings.HasPrefix(cfg.ExportDir(), projectDir) {
		t.Fatalf("relative export dir must resolve under the project: %s", cfg.ExportDir())
	}
}

func TestNewConfigReadsProjectFile(t *testing.T) {
	projectDir := t.TempDir()
	content := strings.Join([]string{
		"version: 1",
		"server:",
		"  host: 0.0.0.0",
		"  port: 8088",
		"client:",
		"  base_url: http://generator.internal:9000/",
		"  timeout_seconds: 3",
		"export:",
		"  dir: out",
	}, "\n")
	if err := os.MkdirAll(filepath.Join(projectDir, TaskgenDir), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(projectDir, TaskgenDir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := NewConfig(projectDir)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if got := cfg.ServiceBaseURL(); got != "http://generator.internal:9000" {
		t.Fatalf("base url override ignored, got %s", got)
	}
	if got := cfg.ClientTimeout(); got != 3*time.Second {
		t.Fatalf("timeout override ignored, got %s", got)
	}
	if got := cfg.ExportDir(); got != filepath.Join(projectDir, "out") {
		t.Fatalf("export dir override ignored, got %s", got)
	}
	if cfg.Project.Server.Port != 8088 {
		t.Fatalf("server port override ignored, got %d", cfg.Project.Server.Port)
	}
}

func TestNewConfigNormalizesBadValues(t *testing.T) {
	projectDir := t.TempDir()
	content := "version: 1\nserver:\n  host: ''\n  port: 99999\nclient:\n  timeout_seconds: -4\n"
	if err := os.MkdirAll(filepath.Join(projectDir, TaskgenDir), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(projectDir, TaskgenDir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := NewConfig(projectDir)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.Project.Server.Host != "127.0.0.1" || cfg.Project.Server.Port != 5000 {
		t.Fatalf("bad server values must normalize to defaults, got %s:%d", cfg.Project.Server.Host, cfg.Project.Server.Port)
	}
	if cfg.ClientTimeout() != 10*time.Second {
		t.Fatalf("negative timeout must normalize, got %s", cfg.ClientTimeout())
	}
}

func TestSaveRoundTrips(t *testing.T) {
	projectDir := t.TempDir()
	cfg, err := NewConfig(projectDir)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	cfg.Project.Server.Port = 7777
	if err := cfg.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}
	reloaded, err := NewConfig(projectDir)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.Project.Server.Port != 7777 {
		t.Fatalf("saved port lost on reload, got %d", reloaded.Project.Server.Port)
	}
}
