package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sakha-ai/sakha-tui/internal/models"
	"github.com/sakha-ai/sakha-tui/internal/update"
	"github.com/sakha-ai/sakha-tui/ui/components"
	"github.com/sakha-ai/sakha-tui/ui/styles"
)

// AppModel is the bubbletea model. All session state lives in the core; this
// model holds only what the terminal needs to draw the current frame.
type AppModel struct {
	app *Application
	ui  models.AppModel
}

func NewAppModel(a *Application) AppModel {
	input := textinput.New()
	input.CharLimit = 2000
	input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(styles.ColorPrimary))

	state := a.service.State()
	return AppModel{
		app: a,
		ui: models.AppModel{
			Input:    input,
			Spinner:  sp,
			Mode:     state.Mode(),
			Modes:    state.Modes(),
			Language: a.i18n.Language(),
			Width:    80,
			Height:   24,
		},
	}
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.app.dispatcher.ListenForCoreEvents(),
	)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		var cmd tea.Cmd
		m.ui, cmd = update.HandleKeyMsg(m.ui, msg, m.app.dispatcher)
		return m, cmd

	case tea.WindowSizeMsg:
		m.ui = update.HandleWindowSizeMsg(m.ui, msg)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.ui, cmd = update.HandleSpinnerTick(m.ui, msg)
		return m, cmd

	case update.CoreEventMsg:
		var cmd tea.Cmd
		m.ui, cmd = update.HandleCoreEvent(m.ui, msg.Event, m.app.i18n)
		// Keep listening for the next core event
		return m, tea.Batch(cmd, m.app.dispatcher.ListenForCoreEvents())
	}

	return m, nil
}

func (m AppModel) View() string {
	var sections []string

	if m.ui.Started {
		sections = append(sections, components.RenderMessages(m.ui, m.app.i18n))
	} else {
		sections = append(sections, components.RenderWelcome(m.ui, m.app.labels))
	}

	if crisis := components.RenderCrisis(m.ui, m.app.labels); crisis != "" {
		sections = append(sections, crisis)
	}

	sections = append(sections,
		components.RenderModeBar(m.ui, m.app.i18n),
		components.RenderInput(m.ui),
		components.RenderStatusBar(m.ui, m.app.i18n),
	)

	return strings.Join(sections, "\n\n")
}
