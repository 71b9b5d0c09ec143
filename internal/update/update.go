package update

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sakha-ai/sakha-tui/internal/eventbus"
	"github.com/sakha-ai/sakha-tui/internal/models"
)

// CoreEventMsg wraps a core event for the bubbletea update loop.
type CoreEventMsg struct {
	Event eventbus.CoreEvent
}

// Localizer resolves translation keys for status and placeholder text.
type Localizer interface {
	T(key string, params ...map[string]string) string
	Language() string
}

// HandleCoreEvent folds one core event into the UI model.
func HandleCoreEvent(m models.AppModel, event eventbus.CoreEvent, loc Localizer) (models.AppModel, tea.Cmd) {
	switch e := event.(type) {
	case eventbus.StateUpdateEvent:
		wasLoading := m.Loading

		// Pushes carry only newly appended messages
		m.Messages = append(m.Messages, e.Messages...)
		m.Loading = e.IsProcessing
		m.Mood = e.Mood
		m.Started = e.Started
		m.CrisisShown = e.CrisisShown
		m.Mode = e.Mode
		m.Input.Placeholder = loc.T("app.placeholders." + m.Mode)
		m.Status = statusText(m, loc)

		if m.Loading && !wasLoading {
			return m, m.Spinner.Tick
		}
		return m, nil

	case eventbus.ConnectivityEvent:
		m.Connectivity = e.Connectivity
		m.AIEnabled = e.AIEnabled
		m.Status = statusText(m, loc)
		return m, nil

	case eventbus.LanguageChangedEvent:
		return applyLanguage(m, e.Code, loc)

	case eventbus.TranslationsLoadedEvent:
		return applyLanguage(m, e.Code, loc)
	}

	return m, nil
}

// applyLanguage refreshes every localized surface the UI owns directly. The
// label store refreshes separately through the localization manager.
func applyLanguage(m models.AppModel, code string, loc Localizer) (models.AppModel, tea.Cmd) {
	m.Language = code
	m.Input.Placeholder = loc.T("app.placeholders." + m.Mode)
	m.Status = statusText(m, loc)
	return m, tea.SetWindowTitle(loc.T("app.title"))
}

func statusText(m models.AppModel, loc Localizer) string {
	if m.Loading {
		return loc.T("app.status.thinking")
	}
	switch m.Connectivity {
	case models.ConnConnected:
		if m.AIEnabled {
			return loc.T("app.status.aiReady")
		}
		return loc.T("app.status.limited")
	case models.ConnDisconnected:
		return loc.T("app.status.disconnected")
	}
	return loc.T("app.status.checking")
}

// HandleWindowSizeMsg updates terminal dimensions.
func HandleWindowSizeMsg(m models.AppModel, msg tea.WindowSizeMsg) models.AppModel {
	m.Width = msg.Width
	m.Height = msg.Height
	m.Input.Width = msg.Width - 6
	return m
}

// HandleSpinnerTick advances the loading spinner while a request is out.
func HandleSpinnerTick(m models.AppModel, msg spinner.TickMsg) (models.AppModel, tea.Cmd) {
	if !m.Loading {
		return m, nil
	}
	var cmd tea.Cmd
	m.Spinner, cmd = m.Spinner.Update(msg)
	return m, cmd
}
