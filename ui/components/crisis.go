package components

import (
	"github.com/sakha-ai/sakha-tui/internal/markup"
	"github.com/sakha-ai/sakha-tui/internal/models"
	"github.com/sakha-ai/sakha-tui/ui/labels"
	"github.com/sakha-ai/sakha-tui/ui/styles"
)

// RenderCrisis renders the crisis support banner. It stays visible across
// subsequent turns until the user dismisses it with esc.
func RenderCrisis(m models.AppModel, store *labels.Store) string {
	if !m.CrisisShown {
		return ""
	}
	body := markup.Render(store.Markup(LabelCrisisMessage), m.Width)
	helpline := store.Text(LabelCrisisHelpline)
	if helpline != "" {
		body += "\n" + helpline
	}
	return styles.CrisisStyle().Width(m.Width - 4).Render(body)
}
