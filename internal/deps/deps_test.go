package deps

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCheckBinaries(t *testing.T) {
	binDir := t.TempDir()
	present := filepath.Join(binDir, "present")
	script := []byte("#!/bin/sh\nexit 0\n")
	if err := os.WriteFile(present, script, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	reqs := []Requirement{
		{Name: "Present", Command: present},
		{Name: "Missing", Command: "clearly-not-present-binary"},
	}

	results := CheckBinaries(reqs)
	if len(results) != len(reqs) {
		t.Fatalf("expected %d results, got %d", len(reqs), len(results))
	}

	if !results[0].Available {
		t.Fatalf("expected first requirement to be available, got %#v", results[0])
	}
	if results[0].Path != present {
		t.Fatalf("expected resolved path %q, got %q", present, results[0].Path)
	}
	if results[0].Detail != "" {
		t.Fatalf("unexpected detail for available dependency: %s", results[0].Detail)
	}

	if results[1].Available {
		t.Fatalf("expected missing binary to be unavailable")
	}
	if results[1].Detail == "" {
		t.Fatalf("expected detail message for missing binary")
	}
	if results[1].Command != "clearly-not-present-binary" {
		t.Fatalf("unexpected command recorded: %s", results[1].Command)
	}
}

func TestCheckResolvesFromPath(t *testing.T) {
	binDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(binDir, "ddrescue"), []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	t.Setenv("PATH", binDir)

	status := Check(Requirement{Name: "ddrescue", Command: " ddrescue "})
	if !status.Available {
		t.Fatalf("expected ddrescue on PATH, got detail %q", status.Detail)
	}
	if status.Path != filepath.Join(binDir, "ddrescue") {
		t.Fatalf("unexpected path: %q", status.Path)
	}
}

func TestCheckUnconfiguredCommand(t *testing.T) {
	status := Check(Requirement{Name: "Imager"})
	if status.Available {
		t.Fatal("expected empty command to be unavailable")
	}
	if status.Detail != "command not configured" {
		t.Fatalf("unexpected detail: %q", status.Detail)
	}
}

func TestMissingSkipsOptional(t *testing.T) {
	statuses := []Status{
		{Requirement: Requirement{Name: "required"}},
		{Requirement: Requirement{Name: "optional", Optional: true}},
		{Requirement: Requirement{Name: "present"}, Available: true},
	}
	missing := Missing(statuses)
	if len(missing) != 1 || missing[0].Name != "required" {
		t.Fatalf("unexpected missing set: %#v", missing)
	}
}
