package tui

import "github.com/charmbracelet/lipgloss"

const sidebarWidth = 34

var categoryColors = map[string]lipgloss.Color{
	"blue":   lipgloss.Color("#2563EB"),
	"green":  lipgloss.Color("#16A34A"),
	"purple": lipgloss.Color("#9333EA"),
	"orange": lipgloss.Color("#EA580C"),
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#2563EB")).
			Padding(0, 1)

	scrolledHeaderStyle = headerStyle.
				Border(lipgloss.NormalBorder(), false, false, true, false).
				BorderForeground(lipgloss.Color("#444444"))

	sidebarStyle = lipgloss.NewStyle().
			Width(sidebarWidth).
			Padding(0, 1).
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(lipgloss.Color("#333333"))

	activeItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1E40AF")).
			Background(lipgloss.Color("#DBEAFE")).
			Bold(true)

	itemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#D1D5DB"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#DC2626")).
			Padding(0, 1)
)
