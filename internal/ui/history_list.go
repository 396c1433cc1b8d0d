package ui

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"wheel.klederson.com/internal/wheel"
)

// RenderHistory renders the scrollable list of past spins, newest first.
// The title stays fixed at the top; only the entries scroll.
func RenderHistory(spins []wheel.Spin, total int, m *wheel.Model, width, height, cursorIndex int) string {
	innerW := width - 4
	if innerW < 10 {
		innerW = 10
	}

	title := StylePanelTitle.Render(fmt.Sprintf("SPINS [%d]", total))
	separator := StyleSeparator.Render(strings.Repeat("-", innerW))
	headerLines := []string{title, separator}
	headerCount := len(headerLines)

	innerH := height - 2
	if innerH < headerCount+1 {
		innerH = headerCount + 1
	}

	entrySpace := innerH - headerCount
	if entrySpace < 1 {
		entrySpace = 1
	}

	var lines []string
	if len(spins) == 0 {
		lines = append(lines, "")
		lines = append(lines, StyleHelp.Render(" No spins yet..."))
		lines = append(lines, StyleHelp.Render(" Press SPACE"))
	} else {
		linesPerEntry := 3 // 2 content + 1 blank
		maxVisible := entrySpace / linesPerEntry
		if maxVisible < 1 {
			maxVisible = 1
		}

		// Compute viewport start so cursor is always visible
		viewStart := 0
		if cursorIndex >= maxVisible {
			viewStart = cursorIndex - maxVisible + 1
		}

		for i := viewStart; i < len(spins) && len(lines) < entrySpace; i++ {
			number := total - i
			for _, l := range renderSpinEntry(spins[i], number, m, innerW, i == cursorIndex) {
				if len(lines) >= entrySpace {
					break
				}
				lines = append(lines, l)
			}
		}
	}

	for len(lines) < entrySpace {
		lines = append(lines, "")
	}

	all := make([]string, 0, innerH)
	all = append(all, headerLines...)
	all = append(all, lines...)
	if len(all) > innerH {
		all = all[:innerH]
	}

	rendered := StylePanelBorder.Width(width - 2).Height(innerH).Render(strings.Join(all, "\n"))

	// lipgloss Height() only sets a minimum; clamp to exactly `height` lines.
	outLines := strings.Split(rendered, "\n")
	if len(outLines) > height {
		outLines = outLines[:height]
	}
	for len(outLines) < height {
		outLines = append(outLines, "")
	}
	return strings.Join(outLines, "\n")
}

func renderSpinEntry(s wheel.Spin, number int, m *wheel.Model, maxW int, isCursor bool) []string {
	cursor := "  "
	if isCursor {
		cursor = ">>"
	}

	swatch := "  "
	if sec := m.Sector(s.Sector); sec != nil {
		swatch = Swatch(sec.Color.Hex())
	}

	raw1 := fmt.Sprintf("%s %s spin  sector %d", cursor, humanize.Ordinal(number), s.Sector+1)
	raw2 := fmt.Sprintf("      %d turns  %sdeg", s.ExtraTurns, humanize.FtoaWithDigits(s.Degrees(), 1))

	raw1 = truncRaw(raw1, maxW-3)
	raw2 = truncRaw(raw2, maxW)

	if isCursor {
		return []string{
			StyleCursorRow.Render(raw1) + " " + swatch,
			StyleCursorRow.Render(raw2),
			"",
		}
	}
	return []string{
		StyleSpinSector.Render(raw1) + " " + swatch,
		StyleSpinInfo.Render(raw2),
		"",
	}
}

// truncRaw pads or truncates a raw string to exactly w characters.
func truncRaw(s string, w int) string {
	if w < 0 {
		w = 0
	}
	if len(s) > w {
		return s[:w]
	}
	if len(s) < w {
		return s + strings.Repeat(" ", w-len(s))
	}
	return s
}
