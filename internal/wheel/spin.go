package wheel

import (
	"math"

	"github.com/google/uuid"

	"wheel.klederson.com/internal/config"
)

// Rand is the randomness a spin draws on. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Spin is one resolved spin request. It is produced per trigger and only
// kept afterwards for display.
type Spin struct {
	ID            uuid.UUID
	Sector        int
	ExtraTurns    int
	Jitter        float64
	FullRotation  float64
	IndexRotation float64
	Delta         float64 // end value handed to the animation
}

// Degrees returns the total rotation in degrees.
func (s Spin) Degrees() float64 {
	return s.Delta * 180 / math.Pi
}

// Resolver chooses the outcome of a spin and the rotation that produces it.
type Resolver struct {
	MinTurns       int
	MaxTurns       int
	JitterFraction float64 // share of a sector kept clear at each edge
	rng            Rand
}

// NewResolver creates a resolver using the default turn range and jitter.
func NewResolver(rng Rand) *Resolver {
	return &Resolver{
		MinTurns:       config.MinExtraTurns,
		MaxTurns:       config.MaxExtraTurns,
		JitterFraction: config.JitterFraction,
		rng:            rng,
	}
}

// Resolve draws a sector, a number of extra turns, and a landing offset,
// then computes the rotation for them.
func (r *Resolver) Resolve(m *Model) Spin {
	id := r.rng.Intn(m.Len())

	turns := r.MinTurns
	if span := r.MaxTurns - r.MinTurns; span > 0 {
		turns += r.rng.Intn(span + 1)
	}

	width := FullTurn / float64(m.Len())
	jitter := width*r.JitterFraction + r.rng.Float64()*width*(1-2*r.JitterFraction)

	return ResolveFor(m, id, turns, jitter)
}

// ResolveFor computes the rotation that, after turns full revolutions,
// leaves the reference angle jitter radians past the start edge of sector
// id. The rotation is measured from the sector's current start, which is
// its base start on a freshly built wheel.
func ResolveFor(m *Model, id, turns int, jitter float64) Spin {
	full := FullTurn * float64(turns)
	index := AngularDelta(Reference, m.Sector(id).Start)
	return Spin{
		ID:            uuid.New(),
		Sector:        id,
		ExtraTurns:    turns,
		Jitter:        jitter,
		FullRotation:  full,
		IndexRotation: index,
		Delta:         full + index - jitter,
	}
}
