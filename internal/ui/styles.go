package ui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha.
const (
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorMauve    lipgloss.Color = "#cba6f7"
	colorPink     lipgloss.Color = "#f5c2e7"
	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface1 lipgloss.Color = "#45475a"
)

// listPalette is the set of colors offered by the list editor, in cycle order.
var listPalette = []lipgloss.Color{colorBlue, colorRed, colorPeach, colorYellow, colorGreen, colorTeal, colorMauve, colorPink}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorText)
	subtleStyle   = lipgloss.NewStyle().Foreground(colorSubtext0)
	faintStyle    = lipgloss.NewStyle().Foreground(colorOverlay0)
	cursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorPink)
	addListStyle  = lipgloss.NewStyle().Foreground(colorBlue)
	statusStyle   = lipgloss.NewStyle().Foreground(colorYellow)
	doneStyle     = lipgloss.NewStyle().Foreground(colorOverlay0).Strikethrough(true)
	reminderStyle = lipgloss.NewStyle().Foreground(colorTeal)

	tileStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 1).
			Width(20)
	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorBlue).
			Padding(0, 1)
	sheetStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMauve).
			Padding(1, 2)
)

var categoryColors = [4]lipgloss.Color{colorBlue, colorRed, colorSubtext0, colorGreen}

// iconGlyphs maps symbolic icon identifiers to terminal glyphs.
var iconGlyphs = map[string]string{
	"calendar":              "▦",
	"calendar.circle.fill":  "◉",
	"tray.circle.fill":      "▣",
	"checkmark.circle.fill": "✔",
}

func glyph(icon string) string {
	if g, ok := iconGlyphs[icon]; ok {
		return g
	}
	return "•"
}

func colorDot(hex string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("●")
}

func paletteIndex(hex string) int {
	for i, c := range listPalette {
		if string(c) == hex {
			return i
		}
	}
	return 0
}
