package storage

import (
	"context"
	"errors"
	"testing"
)

func TestWrap(t *testing.T) {
	if Wrap("list", nil) != nil {
		t.Fatal("Wrap(nil) should be nil")
	}

	err := Wrap("list", context.DeadlineExceeded)
	if !IsError(err) {
		t.Fatalf("expected storage error, got %T", err)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Error("wrapped error should unwrap to the cause")
	}
	if got, want := err.Error(), "storage list: context deadline exceeded"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	// Already-wrapped errors keep their original operation.
	again := Wrap("delete", err)
	var se *Error
	if !errors.As(again, &se) || se.Op != "list" {
		t.Errorf("rewrap changed op: %v", again)
	}
}
