package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sakha-ai/sakha-tui/internal/i18n"
	"github.com/sakha-ai/sakha-tui/internal/models"
)

// Dispatcher is what key handling needs from the event dispatcher.
type Dispatcher interface {
	SendMessage(message string)
	SetMode(mode string)
	SetLanguage(code string)
	CheckHealth()
	DismissCrisis()
}

// HandleKeyMsg routes a key press. Session-changing keys dispatch events to
// the core and never mutate session state locally; everything else feeds the
// input field.
func HandleKeyMsg(m models.AppModel, msg tea.KeyMsg, d Dispatcher) (models.AppModel, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "enter":
		text := m.Input.Value()
		if text != "" {
			d.SendMessage(text)
			m.Input.Reset()
		}
		return m, nil

	case "tab":
		d.SetMode(nextInCycle(m.Modes, m.Mode))
		return m, nil

	case "ctrl+l":
		d.SetLanguage(nextLanguage(m.Language))
		return m, nil

	case "ctrl+r":
		d.CheckHealth()
		return m, nil

	case "esc":
		if m.CrisisShown {
			d.DismissCrisis()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}

func nextInCycle(items []string, current string) string {
	if len(items) == 0 {
		return current
	}
	for i, item := range items {
		if item == current {
			return items[(i+1)%len(items)]
		}
	}
	return items[0]
}

func nextLanguage(current string) string {
	languages := i18n.SupportedLanguages()
	for i, lang := range languages {
		if lang.Code == current {
			return languages[(i+1)%len(languages)].Code
		}
	}
	return i18n.DefaultLanguage
}
