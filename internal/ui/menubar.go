package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"wheel.klederson.com/internal/config"
)

// RenderMenuBar renders the top menu bar.
func RenderMenuBar(width int, sectors int, spinning bool) string {
	title := fmt.Sprintf(" %s v%s ", config.AppName, config.AppVersion)

	keys := []struct{ key, label string }{
		{"SPACE", " spin"},
		{"D", "etail"},
		{"Q", "uit"},
	}

	menu := ""
	for _, k := range keys {
		menu += "  " + StyleMenuKey.Render("["+k.key+"]") + StyleMenuLabel.Render(k.label)
	}

	status := StyleStatusIdle.Render("READY")
	if spinning {
		status = StyleStatusSpinning.Render("SPINNING")
	}

	info := StyleMenuLabel.Render(fmt.Sprintf("Sectors: %d", sectors))

	left := StyleMenuKey.Render(title) + menu
	right := status + "  " + info + " "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 2 // bar padding
	if gap < 0 {
		gap = 0
	}

	return StyleMenuBar.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}
