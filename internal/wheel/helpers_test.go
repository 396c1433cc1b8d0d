package wheel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fixedRand replays queued values; an exhausted queue yields zero.
type fixedRand struct {
	ints   []int
	floats []float64
}

func (r *fixedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func (r *fixedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

// assertSameAngle compares two angles modulo a full turn.
func assertSameAngle(t *testing.T, want, got float64, msgAndArgs ...interface{}) {
	t.Helper()
	diff := math.Abs(Normalize(want - got))
	assert.InDelta(t, 0, diff, 1e-9, msgAndArgs...)
}

// pointAt returns the plane point at angle a and distance r from the origin.
func pointAt(a, r float64) (float64, float64) {
	return r * math.Cos(a), r * math.Sin(a)
}

func testGeometry() Geometry {
	return Geometry{Radius: 100, DeadZone: 20}
}
