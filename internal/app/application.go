package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/sakha-ai/sakha-tui/internal/api"
	"github.com/sakha-ai/sakha-tui/internal/config"
	"github.com/sakha-ai/sakha-tui/internal/core"
	"github.com/sakha-ai/sakha-tui/internal/dispatcher"
	"github.com/sakha-ai/sakha-tui/internal/eventbus"
	"github.com/sakha-ai/sakha-tui/internal/i18n"
	"github.com/sakha-ai/sakha-tui/internal/logging"
	"github.com/sakha-ai/sakha-tui/ui/components"
	"github.com/sakha-ai/sakha-tui/ui/labels"
)

// Application wires configuration, the backend client, the localization
// manager and the chat service together behind the TUI.
type Application struct {
	cfg        *config.Config
	log        *logrus.Logger
	bus        *eventbus.EventBus
	client     *api.Client
	labels     *labels.Store
	i18n       *i18n.Manager
	service    *core.ChatService
	dispatcher *dispatcher.EventDispatcher
}

func NewApplication(cfg *config.Config) *Application {
	log := logging.New()

	bus := eventbus.NewEventBus()
	bus.SetErrorCallback(func(busErr eventbus.EventBusError) {
		log.WithError(busErr.Err).WithField("operation", busErr.Operation).Warn("event bus error")
	})

	client := api.NewClient(cfg.ServerURL)
	store := labels.NewStore()

	manager := i18n.NewManager(client, cfg, store, bus, log)
	manager.Bind(
		i18n.Binding{ID: components.LabelWelcomeTitle, Key: "app.welcome.title", Kind: i18n.BindText},
		i18n.Binding{ID: components.LabelWelcomeSubtitle, Key: "app.welcome.subtitle", Kind: i18n.BindMarkup},
		i18n.Binding{ID: components.LabelInput, Key: "app.placeholders.normal", Kind: i18n.BindPlaceholder},
		i18n.Binding{ID: components.LabelCrisisMessage, Key: "app.crisis.message", Kind: i18n.BindMarkup},
		i18n.Binding{ID: components.LabelCrisisHelpline, Key: "app.crisis.helpline", Kind: i18n.BindText},
	)

	return &Application{
		cfg:        cfg,
		log:        log,
		bus:        bus,
		client:     client,
		labels:     store,
		i18n:       manager,
		service:    core.NewChatService(client, manager, cfg.Modes, bus, log),
		dispatcher: dispatcher.NewEventDispatcher(bus, log),
	}
}

// Run starts the core service and blocks on the TUI until the user quits.
func (a *Application) Run() error {
	a.service.Start()
	defer a.Stop()

	program := tea.NewProgram(NewAppModel(a), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run application: %w", err)
	}
	return nil
}

func (a *Application) Stop() {
	a.service.Stop()
	a.bus.Close()
}
