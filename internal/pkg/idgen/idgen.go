package idgen

import "github.com/google/uuid"

type Generator interface {
	NewID() uuid.UUID
}

type UUIDGenerator struct{}

func NewUUIDGenerator() Generator {
	return UUIDGenerator{}
}

func (UUIDGenerator) NewID() uuid.UUID {
	return uuid.New()
}

// SequenceGenerator hands out the given IDs in order and then falls back to
// random ones. Used in tests that assert on identifiers.
type SequenceGenerator struct {
	ids  []uuid.UUID
	next int
}

func NewSequenceGenerator(ids ...uuid.UUID) *SequenceGenerator {
	return &SequenceGenerator{ids: ids}
}

func (g *SequenceGenerator) NewID() uuid.UUID {
	if g.next < len(g.ids) {
		id := g.ids[g.next]
		g.next++
		return id
	}
	return uuid.New()
}
