package ui

import "github.com/charmbracelet/lipgloss"

// Casino gold palette
var (
	ColorGold         = lipgloss.Color("#FFD700")
	ColorAmber        = lipgloss.Color("#FFB000")
	ColorDarkGold     = lipgloss.Color("#B8860B")
	ColorDimGold      = lipgloss.Color("#5C4400")
	ColorFelt         = lipgloss.Color("#0B3D0B")
	ColorBorderBright = lipgloss.Color("#FFD700")
	ColorBorderNorm   = lipgloss.Color("#B8860B")
	ColorWarning      = lipgloss.Color("#FF6F00")
)

// Pre-built styles
var (
	StyleMenuBar = lipgloss.NewStyle().
			Background(ColorFelt).
			Foreground(ColorGold).
			Bold(true).
			Padding(0, 1)

	StyleMenuKey = lipgloss.NewStyle().
			Foreground(ColorGold).
			Bold(true)

	StyleMenuLabel = lipgloss.NewStyle().
			Foreground(ColorAmber)

	StyleStatusBar = lipgloss.NewStyle().
			Background(ColorFelt).
			Foreground(ColorAmber).
			Padding(0, 1)

	StyleStatusIdle = lipgloss.NewStyle().
			Foreground(ColorGold).
			Bold(true)

	StyleStatusSpinning = lipgloss.NewStyle().
				Foreground(ColorWarning).
				Bold(true)

	StylePanelBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorderNorm)

	StylePanelActive = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorderBright)

	StylePanelTitle = lipgloss.NewStyle().
			Foreground(ColorGold).
			Bold(true).
			Padding(0, 1)

	StyleSeparator = lipgloss.NewStyle().
			Foreground(ColorDarkGold)

	StyleSpinSector = lipgloss.NewStyle().
			Foreground(ColorGold).
			Bold(true)

	StyleSpinInfo = lipgloss.NewStyle().
			Foreground(ColorDarkGold)

	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorDimGold)

	StyleCursorRow = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(ColorGold).
			Bold(true)
)

// Swatch renders a two-cell colour sample.
func Swatch(hex string) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
}
