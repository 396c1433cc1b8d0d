package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"wheel.klederson.com/internal/wheel"
)

// StatusInfo is what the status bar reports.
type StatusInfo struct {
	State    wheel.State
	Hover    wheel.Hover
	Rotation float64 // current animated rotation, radians
	Spins    int
	Last     *wheel.Spin
}

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width int, info StatusInfo) string {
	status := StyleStatusIdle.Render("[" + info.State.String() + "]")
	if info.State == wheel.Spinning {
		status = StyleStatusSpinning.Render("[" + info.State.String() + "]")
	}

	hover := "-"
	if info.Hover.OK {
		hover = fmt.Sprintf("#%d", info.Hover.Sector+1)
	}

	text := fmt.Sprintf(" Rotation: %sdeg  Hover: %s  Cursor: %s  Spins: %s",
		humanize.FtoaWithDigits(info.Rotation*180/math.Pi, 1),
		hover, info.Hover.Cursor, humanize.Comma(int64(info.Spins)))
	if info.Last != nil {
		text += fmt.Sprintf("  Last: #%d", info.Last.Sector+1)
	}

	content := status + StyleStatusBar.Render(text)

	gap := width - lipgloss.Width(content) - 2 // bar padding
	if gap < 0 {
		gap = 0
	}

	return StyleStatusBar.Width(width).Render(content + strings.Repeat(" ", gap))
}
