package core

import (
	"errors"
	"testing"
	"time"
)

func TestTickInterval(t *testing.T) {
	got, err := TickInterval(12)
	if err != nil {
		t.Fatal(err)
	}
	if got != 83*time.Millisecond {
		t.Fatalf("TickInterval(12)=%v, expected 83ms", got)
	}
	if got, _ := TickInterval(1); got != time.Second {
		t.Fatalf("TickInterval(1)=%v, expected 1s", got)
	}
	if _, err := TickInterval(0); !errors.Is(err, ErrInvalidFPS) {
		t.Fatalf("expected ErrInvalidFPS, got %v", err)
	}
}
