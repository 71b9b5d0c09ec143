package components

import (
	"github.com/sakha-ai/sakha-tui/internal/models"
	"github.com/sakha-ai/sakha-tui/ui/styles"
)

// RenderInput renders the message entry box. While a request is outstanding
// the spinner replaces the prompt.
func RenderInput(m models.AppModel) string {
	if m.Loading {
		return styles.InputStyle().Render(m.Spinner.View() + " " + m.Status)
	}
	return styles.InputStyle().Render(m.Input.View())
}
