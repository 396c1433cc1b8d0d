package wheel

import (
	"math"

	"wheel.klederson.com/internal/palette"
)

// Geometry is the disk the wheel occupies in plane coordinates.
type Geometry struct {
	CenterX  float64
	CenterY  float64
	Radius   float64
	DeadZone float64 // points closer to the center than this hit nothing
}

// Model owns the ordered sectors of one wheel. The sector count is fixed
// for its lifetime.
type Model struct {
	sectors  []Sector
	geometry Geometry
}

// NewModel builds a wheel of n sectors. colors supplies each sector's
// colour in id order; nil leaves them zero.
func NewModel(n int, geometry Geometry, colors func(id int) palette.Color) *Model {
	if n < 1 {
		n = 1
	}
	sectors := newSectors(n)
	if colors != nil {
		for i := range sectors {
			sectors[i].Color = colors(i)
		}
	}
	return &Model{sectors: sectors, geometry: geometry}
}

// Len returns the number of sectors.
func (m *Model) Len() int {
	return len(m.sectors)
}

// Sector returns the sector with the given id, or nil.
func (m *Model) Sector(id int) *Sector {
	if id < 0 || id >= len(m.sectors) {
		return nil
	}
	return &m.sectors[id]
}

// Sectors returns a copy of all sectors in id order.
func (m *Model) Sectors() []Sector {
	out := make([]Sector, len(m.sectors))
	copy(out, m.sectors)
	return out
}

// Geometry returns the current hit-test disk.
func (m *Model) Geometry() Geometry {
	return m.geometry
}

// SetGeometry replaces the hit-test disk, e.g. after a resize.
func (m *Model) SetGeometry(g Geometry) {
	m.geometry = g
}

// HitTest returns the id of the sector under (x, y). Points beyond the rim
// or inside the dead zone hit nothing.
func (m *Model) HitTest(x, y float64) (int, bool) {
	g := m.geometry
	d := Distance(x, y, g.CenterX, g.CenterY)
	if d > g.Radius || d < g.DeadZone {
		return -1, false
	}
	for i := range m.sectors {
		if m.sectors[i].Contains(x, y, g.CenterX, g.CenterY, g.Radius) {
			return i, true
		}
	}
	return -1, false
}

// InDeadZone reports whether (x, y) lies inside the hub.
func (m *Model) InDeadZone(x, y float64) bool {
	g := m.geometry
	return Distance(x, y, g.CenterX, g.CenterY) < g.DeadZone
}

// ApplyRotation turns every sector by delta. Angles are left un-normalized
// until ResetOrientation.
func (m *Model) ApplyRotation(delta float64) {
	for i := range m.sectors {
		s := &m.sectors[i]
		s.Start += delta
		s.End += delta
		s.Rotation += delta
	}
}

// ResetOrientation folds accumulated angles back into [-π, π) without
// changing the visible orientation.
func (m *Model) ResetOrientation() {
	for i := range m.sectors {
		s := &m.sectors[i]
		s.Start = Normalize(math.Mod(s.Start, FullTurn))
		s.End = Normalize(math.Mod(s.End, FullTurn))
		s.Rotation = Normalize(math.Mod(s.Rotation, FullTurn))
	}
}

// SetHighlight marks exactly the sector id as highlighted; ok == false
// clears every highlight.
func (m *Model) SetHighlight(id int, ok bool) {
	for i := range m.sectors {
		m.sectors[i].Highlighted = ok && i == id
	}
}

// Highlighted returns the highlighted sector id, if any.
func (m *Model) Highlighted() (int, bool) {
	for i := range m.sectors {
		if m.sectors[i].Highlighted {
			return i, true
		}
	}
	return -1, false
}

// FadeColors advances each sector's hover fade by one frame.
func (m *Model) FadeColors() {
	for i := range m.sectors {
		s := &m.sectors[i]
		s.Color = s.Color.Fade(s.Highlighted)
	}
}
