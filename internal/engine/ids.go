package engine

import (
	"fmt"

	"github.com/google/uuid"
)

// IDGenerator supplies identities for newly placed fixtures. Identity
// assignment is a side-effect boundary kept outside the packing algorithm
// so that placement results can be made fully reproducible.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator is the default generator, producing short random ids in the
// same form the fixture library uses.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	return uuid.New().String()[:8]
}

// SequentialGenerator produces "pf-1", "pf-2", ... and is intended for
// tests and reproducible batch runs. Not safe for concurrent use.
type SequentialGenerator struct {
	n int
}

func (g *SequentialGenerator) NewID() string {
	g.n++
	return fmt.Sprintf("pf-%d", g.n)
}
