package render

import (
	"math"

	"wheel.klederson.com/internal/config"
	"wheel.klederson.com/internal/wheel"
)

// Layout places the wheel inside a panel of Width x Height cells.
// Plane coordinates have the wheel center at the origin, one unit per
// column, and rows stretched by the terminal aspect ratio so the wheel
// looks round.
type Layout struct {
	Width    int
	Height   int
	CenterX  int
	CenterY  int
	Radius   float64
	DeadZone float64
}

// NewLayout fits the largest round wheel into width x height cells, keeping
// one row free above the rim for the pointer marker.
func NewLayout(width, height int) Layout {
	centerX := width / 2
	centerY := height / 2
	radius := math.Min(float64(centerX-1), float64(centerY-1)/config.AspectRatio)
	if radius < 3 {
		radius = 3
	}
	return Layout{
		Width:    width,
		Height:   height,
		CenterX:  centerX,
		CenterY:  centerY,
		Radius:   radius,
		DeadZone: radius * config.DeadZoneRatio,
	}
}

// ToPlane converts a cell to plane coordinates.
func (l Layout) ToPlane(col, row int) (x, y float64) {
	x = float64(col - l.CenterX)
	y = float64(row-l.CenterY) / config.AspectRatio
	return x, y
}

// ToCell converts a plane point to the nearest cell.
func (l Layout) ToCell(x, y float64) (col, row int) {
	col = l.CenterX + int(math.Round(x))
	row = l.CenterY + int(math.Round(y*config.AspectRatio))
	return col, row
}

// CellAt returns the cell at distance r from the center along angle a.
func (l Layout) CellAt(a, r float64) (col, row int) {
	return l.ToCell(r*math.Cos(a), r*math.Sin(a))
}

// Contains reports whether the cell lies inside the panel.
func (l Layout) Contains(col, row int) bool {
	return col >= 0 && col < l.Width && row >= 0 && row < l.Height
}

// Geometry is the hit-test disk matching this layout.
func (l Layout) Geometry() wheel.Geometry {
	return wheel.Geometry{Radius: l.Radius, DeadZone: l.DeadZone}
}

// PointerCell is where the pointer marker sits: just above the rim.
func (l Layout) PointerCell() (col, row int) {
	col, row = l.CellAt(wheel.Reference, l.Radius)
	return col, row - 1
}
