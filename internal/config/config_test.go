package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"isorip/internal/config"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved != filepath.Join(tempHome, ".config", "isorip", "config.toml") {
		t.Fatalf("unexpected resolved path: %q", resolved)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantLogDir := filepath.Join(tempHome, ".local", "share", "isorip", "logs")
	if cfg.Paths.LogDir != wantLogDir {
		t.Fatalf("unexpected log dir: got %q want %q", cfg.Paths.LogDir, wantLogDir)
	}
	if cfg.Paths.OutputDir != "" {
		t.Fatalf("expected empty output dir by default, got %q", cfg.Paths.OutputDir)
	}
	if cfg.Tools.Imager != "ddrescue" || cfg.Tools.Unmount != "diskutil" || cfg.Tools.Eject != "drutil" || cfg.Tools.MountTable != "df" {
		t.Fatalf("unexpected tool defaults: %#v", cfg.Tools)
	}
	if cfg.Tools.DeviceMarker != "/dev/disk" {
		t.Fatalf("unexpected device marker: %q", cfg.Tools.DeviceMarker)
	}
	if cfg.LogPath() != filepath.Join(wantLogDir, "isorip.log") {
		t.Fatalf("unexpected log path: %q", cfg.LogPath())
	}
	if cfg.LockPath() != filepath.Join(wantLogDir, "isorip.lock") {
		t.Fatalf("unexpected lock path: %q", cfg.LockPath())
	}
}

func TestLoadCustomConfigFile(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	configPath := filepath.Join(t.TempDir(), "isorip.toml")
	payload := struct {
		Paths   map[string]string `toml:"paths"`
		Tools   map[string]string `toml:"tools"`
		Logging map[string]any    `toml:"logging"`
	}{
		Paths:   map[string]string{"output_dir": "~/rips", "log_dir": "~/logs"},
		Tools:   map[string]string{"imager": " /opt/bin/ddrescue "},
		Logging: map[string]any{"format": "JSON", "level": "debug", "console": true},
	}
	data, err := toml.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != configPath {
		t.Fatalf("expected config %q to be used, got %q (exists=%v)", configPath, resolved, exists)
	}
	if cfg.Paths.OutputDir != filepath.Join(tempHome, "rips") {
		t.Fatalf("unexpected output dir: %q", cfg.Paths.OutputDir)
	}
	if cfg.Paths.LogDir != filepath.Join(tempHome, "logs") {
		t.Fatalf("unexpected log dir: %q", cfg.Paths.LogDir)
	}
	if cfg.Tools.Imager != "/opt/bin/ddrescue" {
		t.Fatalf("expected trimmed imager, got %q", cfg.Tools.Imager)
	}
	if cfg.Tools.Unmount != "diskutil" {
		t.Fatalf("expected unmount default to survive partial config, got %q", cfg.Tools.Unmount)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" || !cfg.Logging.Console {
		t.Fatalf("unexpected logging config: %#v", cfg.Logging)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	configPath := filepath.Join(t.TempDir(), "isorip.toml")
	if err := os.WriteFile(configPath, []byte("[paths]\nstaging_dir = \"/tmp\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(configPath); err == nil {
		t.Fatal("expected unknown key to be rejected")
	}
}

func TestValidateRejectsEmptyTool(t *testing.T) {
	cfg := config.Default()
	cfg.Tools.Unmount = ""
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error for empty unmount tool")
	}
	if !strings.Contains(err.Error(), "tools.unmount") {
		t.Fatalf("expected error to name the key, got %v", err)
	}
}

func TestValidateRejectsUnknownLogFormat(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for unknown log format")
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	target := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(target); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}
	cfg, _, exists, err := config.Load(target)
	if err != nil {
		t.Fatalf("sample config failed to load: %v", err)
	}
	if !exists {
		t.Fatal("expected sample config to exist")
	}
	if cfg.Tools.Imager != "ddrescue" {
		t.Fatalf("unexpected imager from sample: %q", cfg.Tools.Imager)
	}
}

func TestExpandPathTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	got, err := config.ExpandPath("~/images")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	if got != filepath.Join(home, "images") {
		t.Fatalf("unexpected expansion: %q", got)
	}
}
