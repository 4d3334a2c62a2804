package id

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDGeneratorProducesVersion7(t *testing.T) {
	t.Parallel()

	g := NewUUIDGenerator()
	first, err := g.NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}
	parsed, err := uuid.Parse(first)
	if err != nil {
		t.Fatalf("parse id %q: %v", first, err)
	}
	if parsed.Version() != 7 {
		t.Fatalf("expected uuid v7, got=%d", parsed.Version())
	}

	second, _ := g.NewID()
	if first == second {
		t.Fatalf("expected distinct ids")
	}
}

func TestSequenceGenerator(t *testing.T) {
	t.Parallel()

	g := NewSequenceGenerator("evt")
	a, _ := g.NewID()
	b, _ := g.NewID()
	if a != "evt-1" || b != "evt-2" {
		t.Fatalf("unexpected ids: %s %s", a, b)
	}
}
