package wheel

import "math"

const (
	// FullTurn is one complete revolution in radians.
	FullTurn = 2 * math.Pi

	// Reference is the on-screen angle a spin lands on: the top of the
	// wheel. Screen y grows downward, so -π/2 points up.
	Reference = -math.Pi / 2
)

// Normalize wraps an angle to [-π, π).
func Normalize(a float64) float64 {
	if a >= -math.Pi && a < math.Pi {
		return a
	}
	a = math.Mod(a+math.Pi, FullTurn)
	if a < 0 {
		a += FullTurn
	}
	a -= math.Pi
	// Rounding in the shift can land exactly on the excluded end.
	if a >= math.Pi {
		a -= FullTurn
	}
	return a
}

// AngularDelta returns the rotation in [0, 2π) that carries current onto
// target when turning in the positive (clockwise on screen) direction.
func AngularDelta(target, current float64) float64 {
	d := math.Mod(target-current, FullTurn)
	if d < 0 {
		d += FullTurn
	}
	if d >= FullTurn {
		d = 0
	}
	return d
}

// Distance returns the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x1-x2, y1-y2)
}

// PolarAngle returns the angle of (px, py) around (cx, cy) in (-π, π].
func PolarAngle(px, py, cx, cy float64) float64 {
	return math.Atan2(py-cy, px-cx)
}

// PointInSector reports whether (px, py) lies within radius of (cx, cy) and
// its polar angle falls inside the span [start, end].
func PointInSector(px, py, cx, cy, radius, start, end float64) bool {
	if Distance(px, py, cx, cy) > radius {
		return false
	}
	if end-start >= FullTurn {
		return true
	}
	return angleInSpan(PolarAngle(px, py, cx, cy), Normalize(start), Normalize(end))
}

// angleInSpan expects start and end normalized. A span whose end sorts
// below its start crosses the ±π seam and is split into its two halves.
func angleInSpan(angle, start, end float64) bool {
	if end < start {
		if angle >= 0 {
			return angle >= start && angle <= math.Pi
		}
		return angle >= -math.Pi && angle <= end
	}
	return angle >= start && angle <= end
}
