package wheel

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// land applies a spin the way a finished animation would.
func land(m *Model, s Spin) {
	m.ApplyRotation(s.Delta)
	m.ResetOrientation()
}

func TestResolveFor_ExampleTenSectors(t *testing.T) {
	m := NewModel(10, testGeometry(), nil)
	base := m.Sector(3).BaseStart

	spin := ResolveFor(m, 3, 6, 0)

	assert.Equal(t, 3, spin.Sector)
	assert.Equal(t, 6, spin.ExtraTurns)
	assert.InDelta(t, 12*math.Pi, spin.FullRotation, 1e-12)
	assert.InDelta(t, AngularDelta(Reference, base), spin.IndexRotation, 1e-12)
	assert.InDelta(t, spin.FullRotation+spin.IndexRotation, spin.Delta, 1e-12)

	land(m, spin)

	s := m.Sector(3)
	// With no jitter the start edge lands exactly on the reference angle.
	assertSameAngle(t, Reference, s.Start)
	assertSameAngle(t, Normalize(base+spin.Delta), s.Start)

	x, y := pointAt(Reference+1e-6, 50)
	assert.True(t, s.Contains(x, y, 0, 0, 100))
}

func TestResolveFor_LandsEverySector(t *testing.T) {
	for _, n := range []int{1, 2, 3, 7, 10, 17} {
		for id := 0; id < n; id++ {
			m := NewModel(n, testGeometry(), nil)
			width := FullTurn / float64(n)

			spin := ResolveFor(m, id, 6+id%5, width/2)
			land(m, spin)

			got, ok := m.HitTest(0, -60)
			require.True(t, ok, "n=%d id=%d", n, id)
			assert.Equal(t, id, got, "n=%d", n)
		}
	}
}

func TestResolveFor_JitterStaysInsideSector(t *testing.T) {
	n := 10
	width := FullTurn / float64(n)
	for _, frac := range []float64{0.1, 0.3, 0.5, 0.7, 0.9} {
		m := NewModel(n, testGeometry(), nil)
		spin := ResolveFor(m, 4, 7, width*frac)
		land(m, spin)

		s := m.Sector(4)
		assertSameAngle(t, Reference-width*frac, s.Start)
		id, ok := m.HitTest(0, -60)
		require.True(t, ok)
		assert.Equal(t, 4, id, "frac=%v", frac)
	}
}

func TestResolveFor_ConsecutiveSpins(t *testing.T) {
	m := NewModel(10, testGeometry(), nil)
	width := FullTurn / 10

	for _, id := range []int{3, 3, 0, 9, 5, 1} {
		spin := ResolveFor(m, id, 8, width*0.4)
		assert.Greater(t, spin.Delta, spin.FullRotation-width)
		land(m, spin)

		got, ok := m.HitTest(0, -60)
		require.True(t, ok)
		assert.Equal(t, id, got)
	}
}

func TestResolve_DrawsFromRand(t *testing.T) {
	m := NewModel(10, testGeometry(), nil)
	r := &Resolver{MinTurns: 6, MaxTurns: 10, JitterFraction: 0.1, rng: &fixedRand{
		ints:   []int{7, 2},
		floats: []float64{0.5},
	}}

	spin := r.Resolve(m)

	width := FullTurn / 10
	assert.Equal(t, 7, spin.Sector)
	assert.Equal(t, 8, spin.ExtraTurns)
	assert.InDelta(t, width*0.1+0.5*width*0.8, spin.Jitter, 1e-12)
	assert.InDelta(t, width/2, spin.Jitter, 1e-12)
}

func TestResolve_Bounds(t *testing.T) {
	m := NewModel(10, testGeometry(), nil)
	r := NewResolver(rand.New(rand.NewSource(5)))
	width := FullTurn / 10
	seen := make(map[int]bool)

	for i := 0; i < 2000; i++ {
		spin := r.Resolve(m)
		seen[spin.Sector] = true

		assert.GreaterOrEqual(t, spin.ExtraTurns, r.MinTurns)
		assert.LessOrEqual(t, spin.ExtraTurns, r.MaxTurns)
		assert.GreaterOrEqual(t, spin.Jitter, width*0.1)
		assert.LessOrEqual(t, spin.Jitter, width*0.9)
		assert.Greater(t, spin.Delta, 0.0)
	}
	assert.Len(t, seen, 10)
}

func TestResolve_FixedTurns(t *testing.T) {
	m := NewModel(4, testGeometry(), nil)
	r := &Resolver{MinTurns: 3, MaxTurns: 3, rng: &fixedRand{ints: []int{1, 99}}}

	spin := r.Resolve(m)
	assert.Equal(t, 3, spin.ExtraTurns)
	assert.Equal(t, 0.0, spin.Jitter)
}

func TestSpin_Degrees(t *testing.T) {
	assert.InDelta(t, 360.0, Spin{Delta: FullTurn}.Degrees(), 1e-9)
}
