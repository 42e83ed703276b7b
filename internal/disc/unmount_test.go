package disc_test

import (
	"context"
	"errors"
	"testing"

	"isorip/internal/command"
	"isorip/internal/disc"
	"isorip/internal/testsupport"
)

func TestUnmountSucceedsOnEmptyStderr(t *testing.T) {
	runner := testsupport.NewFakeRunner().On("diskutil", testsupport.Stdout("Volume MOVIE_A on disk2 unmounted\n"))
	result := disc.NewUnmounter(runner, "diskutil", nil).Unmount(context.Background(), "/dev/disk2")

	if !result.OK() || result.Status != disc.UnmountSucceeded {
		t.Fatalf("expected success, got %#v", result)
	}
	if result.Message != "Volume MOVIE_A on disk2 unmounted" {
		t.Fatalf("unexpected message: %q", result.Message)
	}
	calls := runner.Calls()
	if len(calls) != 1 {
		t.Fatalf("expected one call, got %d", len(calls))
	}
	if got := calls[0].Args; len(got) != 2 || got[0] != "umount" || got[1] != "/dev/disk2" {
		t.Fatalf("unexpected args: %v", got)
	}
}

func TestUnmountFailsOnStderrEvenWithZeroExit(t *testing.T) {
	runner := testsupport.NewFakeRunner().On("diskutil", testsupport.Stderr("Unmount of disk2 failed: at least one volume could not be unmounted\n"))
	result := disc.NewUnmounter(runner, "diskutil", nil).Unmount(context.Background(), "/dev/disk2")

	if result.OK() {
		t.Fatalf("expected failure, got %#v", result)
	}
	if result.Message != "Unmount of disk2 failed: at least one volume could not be unmounted" {
		t.Fatalf("unexpected message: %q", result.Message)
	}
}

func TestUnmountSucceedsOnNonZeroExitWithoutStderr(t *testing.T) {
	runner := testsupport.NewFakeRunner().On("diskutil", testsupport.Response{Result: command.Result{ExitCode: 1}})
	if result := disc.NewUnmounter(runner, "diskutil", nil).Unmount(context.Background(), "/dev/disk2"); !result.OK() {
		t.Fatalf("expected empty stderr to count as success, got %#v", result)
	}
}

func TestUnmountFailsWhenToolCannotRun(t *testing.T) {
	runner := testsupport.NewFakeRunner().On("diskutil", testsupport.Response{Err: errors.New("run diskutil: not found")})
	result := disc.NewUnmounter(runner, "diskutil", nil).Unmount(context.Background(), "/dev/disk2")
	if result.OK() {
		t.Fatal("expected failure when tool cannot run")
	}
	if result.Message != "run diskutil: not found" {
		t.Fatalf("unexpected message: %q", result.Message)
	}
}

func TestUnmountStatusString(t *testing.T) {
	if disc.UnmountSucceeded.String() != "unmounted" || disc.UnmountFailed.String() != "unmount_failed" {
		t.Fatal("unexpected status labels")
	}
	if disc.UnmountStatus(0).String() != "unknown" {
		t.Fatal("expected zero value to be unknown")
	}
}
