package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"wheel.klederson.com/internal/config"
	"wheel.klederson.com/internal/wheel"
)

var (
	colorBright = lipgloss.Color("#FFD700")
	colorMid    = lipgloss.Color("#B8860B")
	colorDim    = lipgloss.Color("#5C4400")

	styleHub       = lipgloss.NewStyle().Foreground(colorMid)
	styleHubActive = lipgloss.NewStyle().Foreground(colorBright).Bold(true)
	stylePointer   = lipgloss.NewStyle().Foreground(colorBright).Bold(true)
	styleRim       = lipgloss.NewStyle().Foreground(colorDim)
	styleLegend    = lipgloss.NewStyle().Foreground(colorMid)
)

const hubLabel = "SPIN"

// Render draws the wheel into layout.Width x layout.Height cells. Each cell
// takes the colour of the sector the model's hit test assigns to it, so what
// is drawn is exactly what the pointer selects.
func Render(layout Layout, m *wheel.Model, spinning bool) string {
	if layout.Width < 10 || layout.Height < 5 {
		return ""
	}

	labels := labelCells(layout, m)
	pointerCol, pointerRow := layout.PointerCell()
	hub := hubCells(layout)

	var sb strings.Builder
	for row := 0; row < layout.Height; row++ {
		for col := 0; col < layout.Width; col++ {
			if col == pointerCol && row == pointerRow {
				sb.WriteString(stylePointer.Render("▼"))
				continue
			}
			if ch, ok := hub[[2]int{col, row}]; ok {
				sb.WriteString(renderHub(ch, spinning))
				continue
			}
			sb.WriteString(renderCell(layout, m, labels, col, row))
		}
		if row < layout.Height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func renderCell(layout Layout, m *wheel.Model, labels map[[2]int]string, col, row int) string {
	x, y := layout.ToPlane(col, row)
	id, ok := m.HitTest(x, y)
	if !ok {
		if m.InDeadZone(x, y) {
			return styleHub.Render("·")
		}
		if wheel.Distance(x, y, 0, 0) <= layout.Radius+0.5 {
			return styleRim.Render("·")
		}
		return " "
	}

	s := m.Sector(id)
	style := lipgloss.NewStyle().Background(lipgloss.Color(s.Color.Hex()))
	if ch, ok := labels[[2]int{col, row}]; ok {
		return style.Foreground(lipgloss.Color("#000000")).Bold(s.Highlighted).Render(ch)
	}
	return style.Render(" ")
}

// labelCells lays out each sector's number along its mid-angle.
func labelCells(layout Layout, m *wheel.Model) map[[2]int]string {
	cells := make(map[[2]int]string)
	for _, s := range m.Sectors() {
		text := s.Label()
		col, row := layout.CellAt(s.Mid(), layout.Radius*config.LabelRadius)
		col -= len(text) / 2
		for i, ch := range text {
			if layout.Contains(col+i, row) {
				cells[[2]int{col + i, row}] = string(ch)
			}
		}
	}
	return cells
}

// hubCells centers the spin label on the hub when it fits.
func hubCells(layout Layout) map[[2]int]rune {
	cells := make(map[[2]int]rune)
	if layout.DeadZone*2 < float64(len(hubLabel)) {
		return cells
	}
	col := layout.CenterX - len(hubLabel)/2
	for i, ch := range hubLabel {
		cells[[2]int{col + i, layout.CenterY}] = ch
	}
	return cells
}

func renderHub(ch rune, spinning bool) string {
	if spinning {
		return styleHub.Render(string(ch))
	}
	return styleHubActive.Render(string(ch))
}

// RenderLegend produces the help line under the wheel.
func RenderLegend(width int) string {
	legend := styleLegend.Render("click hub or press SPACE to spin")

	pad := (width - lipgloss.Width(legend)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + legend
}
