package preflight

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeStub(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	return path
}

func TestCheckDirectoryAccess_OK(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectoryAccess("test", dir)
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"))
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if result.Detail == "" {
		t.Fatal("expected non-empty detail")
	}
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckDirectoryAccess("test", f)
	if result.Passed {
		t.Fatal("expected failure for file path")
	}
}

func TestCheckDirectoryAccess_Empty(t *testing.T) {
	if result := CheckDirectoryAccess("test", " "); result.Passed {
		t.Fatal("expected failure for empty path")
	}
}

func TestRequireRejectsMissingOutputDirFirst(t *testing.T) {
	t.Setenv("PATH", "")
	_, err := Require(filepath.Join(t.TempDir(), "absent"), "ddrescue")
	if !errors.Is(err, ErrInvalidOutputDir) {
		t.Fatalf("expected ErrInvalidOutputDir, got %v", err)
	}
	var pfErr *Error
	if !errors.As(err, &pfErr) || pfErr.Result.Name != "Output directory" {
		t.Fatalf("expected *Error carrying the failed result, got %#v", err)
	}
}

func TestRequireRejectsMissingImager(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	_, err := Require(t.TempDir(), "ddrescue")
	if !errors.Is(err, ErrImagerMissing) {
		t.Fatalf("expected ErrImagerMissing, got %v", err)
	}
}

func TestRequireResolvesImager(t *testing.T) {
	bin := t.TempDir()
	want := writeStub(t, bin, "ddrescue")
	t.Setenv("PATH", bin)

	path, err := Require(t.TempDir(), "ddrescue")
	if err != nil {
		t.Fatalf("Require returned error: %v", err)
	}
	if path != want {
		t.Fatalf("expected %q, got %q", want, path)
	}
}
