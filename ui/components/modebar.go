package components

import (
	"strings"

	"github.com/sakha-ai/sakha-tui/internal/models"
	"github.com/sakha-ai/sakha-tui/ui/styles"
)

// RenderModeBar renders the closed mode set with the active one highlighted.
func RenderModeBar(m models.AppModel, loc Localizer) string {
	rendered := make([]string, 0, len(m.Modes))
	for _, mode := range m.Modes {
		label := loc.T("app.modes." + mode)
		if mode == m.Mode {
			rendered = append(rendered, styles.ModeActiveStyle().Render(label))
		} else {
			rendered = append(rendered, styles.ModeInactiveStyle().Render(label))
		}
	}
	return strings.Join(rendered, " ")
}
