package components

import (
	"strings"

	"github.com/sakha-ai/sakha-tui/internal/markup"
	"github.com/sakha-ai/sakha-tui/internal/models"
	"github.com/sakha-ai/sakha-tui/ui/styles"
)

// Localizer resolves translation keys for component labels.
type Localizer interface {
	T(key string, params ...map[string]string) string
}

// RenderMessages renders the transcript. Assistant turns pass through the
// markup pipeline; user turns render verbatim so typed markers stay literal.
func RenderMessages(m models.AppModel, loc Localizer) string {
	if len(m.Messages) == 0 {
		return ""
	}

	var b strings.Builder
	for i, msg := range m.Messages {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(renderMessage(msg, m.Width, loc))
	}
	return b.String()
}

func renderMessage(msg models.Message, width int, loc Localizer) string {
	switch {
	case msg.Role == models.User:
		return styles.UserLabelStyle().Render(loc.T("app.roles.user")) + "\n" + msg.Content

	case msg.Role == models.Program:
		return styles.ProgramStyle().Render(msg.Content)

	case msg.Error:
		// Error turns go through the same formatting pipeline
		return styles.AssistantLabelStyle().Render(loc.T("app.roles.assistant")) + "\n" +
			styles.ErrorStyle().Render(markup.Render(markup.Format(msg.Content), width))

	default:
		return styles.AssistantLabelStyle().Render(loc.T("app.roles.assistant")) + "\n" +
			markup.Render(markup.Format(msg.Content), width)
	}
}
