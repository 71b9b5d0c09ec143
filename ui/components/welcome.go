package components

import (
	"github.com/sakha-ai/sakha-tui/internal/markup"
	"github.com/sakha-ai/sakha-tui/internal/models"
	"github.com/sakha-ai/sakha-tui/ui/labels"
	"github.com/sakha-ai/sakha-tui/ui/styles"
)

// Label store ids the localization manager is bound to.
const (
	LabelWelcomeTitle    = "welcome.title"
	LabelWelcomeSubtitle = "welcome.subtitle"
	LabelInput           = "chat.input"
	LabelCrisisMessage   = "crisis.message"
	LabelCrisisHelpline  = "crisis.helpline"
)

// RenderWelcome renders the pre-conversation view from the label store. It
// disappears for good after the first sent message.
func RenderWelcome(m models.AppModel, store *labels.Store) string {
	title := styles.TitleStyle().Render(store.Text(LabelWelcomeTitle))
	subtitle := styles.SubtitleStyle().Render(
		markup.Render(store.Markup(LabelWelcomeSubtitle), m.Width),
	)
	return title + "\n\n" + subtitle
}
