package components

import (
	"strings"

	"github.com/sakha-ai/sakha-tui/internal/models"
	"github.com/sakha-ai/sakha-tui/ui/styles"
)

// RenderStatusBar renders connectivity, mood and the active language.
func RenderStatusBar(m models.AppModel, loc Localizer) string {
	parts := []string{m.Status}

	if m.Mood != "" {
		parts = append(parts, styles.MoodStyle().Render(m.Mood))
	}
	if m.Language != "" {
		parts = append(parts, m.Language)
	}
	parts = append(parts, loc.T("app.help.keys"))

	return styles.StatusBarStyle().Render(strings.Join(parts, " · "))
}
