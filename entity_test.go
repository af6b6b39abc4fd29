package otter_test

import (
	"testing"

	"github.com/Olle-Lukowski/otter"
)

// go test -run ^TestEntityZero$ . -count 1
func TestEntityZero(t *testing.T) {
	var zero otter.Entity
	if !zero.IsZero() {
		t.Error("The zero-valued entity should report IsZero")
	}
	if !(otter.Entity{ID: 0, Version: 7}).IsZero() {
		t.Error("Any entity on slot 0 should report IsZero")
	}
	if (otter.Entity{ID: 1}).IsZero() {
		t.Error("An entity on slot 1 should not report IsZero")
	}
}

// go test -run ^TestEntityString$ . -count 1
func TestEntityString(t *testing.T) {
	e := otter.Entity{ID: 3, Version: 2}
	if got := e.String(); got != "Entity(3:2)" {
		t.Errorf("Expected Entity(3:2), got %s", got)
	}
}

// go test -run ^TestEntityEquality$ . -count 1
func TestEntityEquality(t *testing.T) {
	a := otter.Entity{ID: 1, Version: 0}
	b := otter.Entity{ID: 1, Version: 1}
	if a == b {
		t.Error("Entities with different versions must not compare equal")
	}
	if a != (otter.Entity{ID: 1, Version: 0}) {
		t.Error("Entities with identical fields must compare equal")
	}
}
