package wheel

import (
	"strconv"

	"wheel.klederson.com/internal/palette"
)

// Sector is one slice of the wheel.
type Sector struct {
	ID int

	// Span in the wheel's own frame, fixed at construction.
	BaseStart float64
	BaseEnd   float64

	// Span after the rotation applied since construction. Normalized to
	// [-π, π) except while a spin is accumulating.
	Start    float64
	End      float64
	Rotation float64

	Width       float64
	Highlighted bool
	Color       palette.Color
}

// newSectors partitions the circle into n equal sectors with sector 0
// centered on the reference angle. Neighbouring boundaries come from the
// same expression so the spans tile the circle without gaps.
func newSectors(n int) []Sector {
	width := FullTurn / float64(n)
	first := Reference - width/2
	boundary := func(i int) float64 { return first + float64(i)*width }

	sectors := make([]Sector, n)
	for i := range sectors {
		start := Normalize(boundary(i))
		end := Normalize(boundary(i + 1))
		sectors[i] = Sector{
			ID:        i,
			BaseStart: start,
			BaseEnd:   end,
			Start:     start,
			End:       end,
			Width:     width,
		}
	}
	return sectors
}

// Contains reports whether (x, y) falls in the sector's current span on a
// disk of the given radius around (cx, cy).
func (s *Sector) Contains(x, y, cx, cy, radius float64) bool {
	if s.Width >= FullTurn {
		return Distance(x, y, cx, cy) <= radius
	}
	return PointInSector(x, y, cx, cy, radius, s.Start, s.End)
}

// Mid returns the normalized angle halfway along the current span.
func (s *Sector) Mid() float64 {
	return Normalize(s.Start + s.Width/2)
}

// Label is the 1-based number printed on the slice.
func (s *Sector) Label() string {
	return strconv.Itoa(s.ID + 1)
}
