package unwrap

import (
	"errors"
	"testing"
)

// mustPanic fails the test unless f panics, and returns the recovered value.
func mustPanic(t *testing.T, f func()) (recovered any) {
	t.Helper()
	defer func() {
		recovered = recover()
		if recovered == nil {
			t.Fatalf("expected panic, call completed normally")
		}
	}()
	f()
	return nil
}

func TestMustUnwrap_Absent(t *testing.T) {
	t.Parallel()
	mustPanic(t, func() {
		None[int]().MustUnwrap()
	})
}

func TestResultMustUnwrap_Failure(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")
	got := mustPanic(t, func() {
		Fail[int](err).MustUnwrap()
	})
	if pe, ok := got.(error); !ok || !errors.Is(pe, err) {
		t.Fatalf("expected panic with original error, got: %v", got)
	}
}
