package ui

import "github.com/charmbracelet/lipgloss"

// ComposeLayout joins the wheel panel and the side panel horizontally,
// with menu bar on top and status bar on bottom.
func ComposeLayout(menuBar, wheelPanel, sidePanel, statusBar string) string {
	middle := lipgloss.JoinHorizontal(lipgloss.Top, wheelPanel, sidePanel)
	return lipgloss.JoinVertical(lipgloss.Left, menuBar, middle, statusBar)
}

// RenderWheelPanel wraps wheel content with a styled border.
// The wheel itself is drawn by the render package.
func RenderWheelPanel(width, height int, wheelContent, legend string) string {
	content := wheelContent + "\n" + legend
	return StylePanelBorder.Width(width - 2).Height(height - 2).Render(content)
}
