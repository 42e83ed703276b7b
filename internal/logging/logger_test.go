package logging_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"isorip/internal/config"
	"isorip/internal/logging"
)

func TestNewFromConfigWritesLogFile(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.LogDir = t.TempDir()

	logger, err := logging.NewFromConfig(&cfg)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logger.Info("volume discovered", logging.String(logging.FieldVolume, "MOVIE_A"))

	content, err := os.ReadFile(cfg.LogPath())
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(content), "volume discovered") {
		t.Fatalf("expected message in log file, got %q", content)
	}
	if !strings.Contains(string(content), "volume: MOVIE_A") {
		t.Fatalf("expected volume field in log file, got %q", content)
	}
}

func TestConsoleLoggerOmitsCallerForInfo(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "console-info.log")

	logger, err := logging.New(logging.Options{Format: "console", Level: "info", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("message without caller")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if strings.Contains(string(content), ".go:") {
		t.Fatalf("expected no caller information in info logs, got %q", content)
	}
}

func TestConsoleLoggerIncludesCallerForDebug(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "console-debug.log")

	logger, err := logging.New(logging.Options{Format: "console", Level: "debug", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Debug("message with caller")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(content), "logger_test.go:") {
		t.Fatalf("expected caller information in debug logs, got %q", content)
	}
}

func TestConsoleLoggerRendersComponent(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "component.log")

	base, err := logging.New(logging.Options{Format: "console", Level: "info", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logging.NewComponentLogger(base, "imaging").Info("imaging started")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	line := strings.SplitN(string(content), "\n", 2)[0]
	if !strings.Contains(line, "INFO [imaging] – imaging started") {
		t.Fatalf("unexpected header line: %q", line)
	}
	if strings.Contains(string(content), "component:") {
		t.Fatalf("component should be rendered in the header only, got %q", content)
	}
}

func TestJSONLoggerUsesStableKeys(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "json.log")

	logger, err := logging.New(logging.Options{Format: "json", Level: "info", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	ctx := logging.WithRunID(context.Background(), "run-123")
	logging.WithContext(ctx, logger).Warn("unmount failed", logging.Error(errors.New("busy")))

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	var record map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(content))), &record); err != nil {
		t.Fatalf("decode json record: %v", err)
	}
	if record["level"] != "warn" {
		t.Fatalf("unexpected level: %v", record["level"])
	}
	if record["msg"] != "unmount failed" {
		t.Fatalf("unexpected msg: %v", record["msg"])
	}
	if _, ok := record["ts"]; !ok {
		t.Fatalf("expected ts key, got %v", record)
	}
	if record[logging.FieldRunID] != "run-123" {
		t.Fatalf("expected run id, got %v", record[logging.FieldRunID])
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestWarnWithContextInjectsDefaults(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "warn.log")
	logger, err := logging.New(logging.Options{Format: "json", Level: "info", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logging.WarnWithContext(logger, "unmount failed", "unmount_failed")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	for _, key := range []string{logging.FieldEventType, logging.FieldErrorHint, logging.FieldImpact} {
		if !strings.Contains(string(content), `"`+key+`"`) {
			t.Fatalf("expected %s in warning, got %q", key, content)
		}
	}
}

func TestRunIDFromContextMissing(t *testing.T) {
	if _, ok := logging.RunIDFromContext(context.Background()); ok {
		t.Fatal("expected no run id on empty context")
	}
	if ctx := logging.WithRunID(context.Background(), ""); ctx == nil {
		t.Fatal("expected context")
	}
}
