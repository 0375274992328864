package shellshoterr

import (
	"errors"
	"testing"
)

func TestWrapUnwrapsBothKindAndCause(t *testing.T) {
	cause := errors.New("permission denied")
	err := Wrap(ErrPtyOpen, "opening master", cause)

	if !errors.Is(err, ErrPtyOpen) {
		t.Fatalf("expected errors.Is to match ErrPtyOpen")
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected errors.Is to match wrapped cause")
	}
}

func TestNewWithoutCause(t *testing.T) {
	err := New(ErrEmptyCommand, "argv was empty")
	if !errors.Is(err, ErrEmptyCommand) {
		t.Fatalf("expected errors.Is to match ErrEmptyCommand")
	}
	if got, want := err.Error(), "command must not be empty: argv was empty"; got != want {
		t.Fatalf("Error(): got %q, want %q", got, want)
	}
}

func TestIsInformational(t *testing.T) {
	if !IsInformational(New(ErrTimeout, "exceeded 5s")) {
		t.Fatalf("ErrTimeout should be informational")
	}
	if IsInformational(New(ErrSpawnChild, "exec failed")) {
		t.Fatalf("ErrSpawnChild should not be informational")
	}
}
