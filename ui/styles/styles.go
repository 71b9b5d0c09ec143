package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette
const (
	ColorPrimary   = "#7C6FE8" // soft violet
	ColorUser      = "#5FAFFF"
	ColorAssistant = "#AFD7AF"
	ColorProgram   = "#808080"
	ColorError     = "#FF5F5F"
	ColorCrisis    = "#FFAF5F"
	ColorMuted     = "241"
)

func TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorPrimary)).
		Padding(0, 1)
}

func SubtitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Padding(0, 1)
}

func UserLabelStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorUser))
}

func AssistantLabelStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAssistant))
}

func ProgramStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Italic(true).
		Foreground(lipgloss.Color(ColorProgram))
}

func ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorError))
}

func CrisisStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorCrisis)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorCrisis)).
		Padding(0, 1)
}

func StatusBarStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Padding(0, 1)
}

func InputStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorPrimary)).
		Padding(0, 1)
}

func ModeActiveStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color(ColorPrimary)).
		Padding(0, 1)
}

func ModeInactiveStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Padding(0, 1)
}

func MoodStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAssistant))
}
