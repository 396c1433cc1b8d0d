package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"wheel.klederson.com/internal/wheel"
)

// RenderSpinDetail renders the detail overlay for one spin in place of the
// history list. deltas are the rotations of recent spins, oldest first.
func RenderSpinDetail(s wheel.Spin, m *wheel.Model, width, height int, deltas []float64) string {
	innerW := width - 4
	if innerW < 20 {
		innerW = 20
	}

	title := StylePanelTitle.Render("SPIN DETAIL")
	escHint := StyleHelp.Render("[ESC]")
	titleLine := title + strings.Repeat(" ", max(0, innerW-lipgloss.Width(title)-lipgloss.Width(escHint))) + escHint

	sep := StyleSeparator.Render(strings.Repeat("-", innerW))
	lines := []string{titleLine, sep, ""}

	labelSty := StyleSpinInfo
	valSty := StyleSpinSector

	sectorWidth := wheel.FullTurn / float64(m.Len())
	fields := []struct{ label, value string }{
		{"Sector", fmt.Sprintf("%d of %d", s.Sector+1, m.Len())},
		{"Turns", fmt.Sprintf("%d", s.ExtraTurns)},
		{"Align", humanize.FtoaWithDigits(s.IndexRotation*180/math.Pi, 2) + "deg"},
		{"Jitter", humanize.FtoaWithDigits(s.Jitter*180/math.Pi, 2) + "deg"},
		{"Total", humanize.FtoaWithDigits(s.Degrees(), 2) + "deg"},
		{"Id", s.ID.String()[:8]},
	}
	if sec := m.Sector(s.Sector); sec != nil {
		fields = append(fields, struct{ label, value string }{"Color", sec.Color.String()})
	}

	for _, f := range fields {
		lines = append(lines, labelSty.Render(fmt.Sprintf("  %-8s", f.label))+valSty.Render(f.value))
	}
	lines = append(lines, "")

	barWidth := innerW - 14
	if barWidth < 10 {
		barWidth = 10
	}
	lines = append(lines, labelSty.Render("  Landing ")+renderLandingBar(s.Jitter, sectorWidth, barWidth))
	lines = append(lines, "")

	if len(deltas) > 0 {
		sparkW := innerW - 4
		if sparkW < 10 {
			sparkW = 10
		}
		lines = append(lines, labelSty.Render("  Recent spins:"))
		lines = append(lines, "  "+lipgloss.NewStyle().Foreground(ColorAmber).Render(renderSparkline(deltas, sparkW)))
	}

	for len(lines) < height-2 {
		lines = append(lines, "")
	}
	if len(lines) > height-2 && height > 2 {
		lines = lines[:height-2]
	}

	return StylePanelActive.Width(width - 2).Height(height - 2).Render(strings.Join(lines, "\n"))
}

// renderLandingBar marks where inside the sector the pointer came to rest,
// measured from the sector's start edge.
func renderLandingBar(jitter, sectorWidth float64, width int) string {
	ratio := 0.0
	if sectorWidth > 0 {
		ratio = jitter / sectorWidth
	}
	ratio = math.Max(0, math.Min(1, ratio))
	pos := int(math.Round(ratio * float64(width-1)))

	marked := lipgloss.NewStyle().Foreground(ColorGold).Bold(true).Render("|")
	return StyleHelp.Render("[") +
		StyleHelp.Render(strings.Repeat("-", pos)) + marked + StyleHelp.Render(strings.Repeat("-", width-1-pos)) +
		StyleHelp.Render("]")
}

func renderSparkline(values []float64, width int) string {
	if len(values) == 0 {
		return ""
	}

	chars := []byte{'_', '.', '-', '~', '^'}

	minV, maxV := values[0], values[0]
	for _, v := range values {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}

	rng := maxV - minV
	if rng <= 0 {
		rng = 1
	}

	// Take last `width` values
	start := 0
	if len(values) > width {
		start = len(values) - width
	}

	var sb strings.Builder
	for i := start; i < len(values); i++ {
		idx := int((values[i] - minV) / rng * float64(len(chars)-1))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(chars) {
			idx = len(chars) - 1
		}
		sb.WriteByte(chars[idx])
	}

	return sb.String()
}
