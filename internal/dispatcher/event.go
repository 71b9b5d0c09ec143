package dispatcher

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/sakha-ai/sakha-tui/internal/eventbus"
	"github.com/sakha-ai/sakha-tui/internal/update"
)

// EventDispatcher bridges the bubbletea UI and the event bus. Key handlers
// call the Send* methods; the Listen command feeds core events back into the
// Update loop as messages.
type EventDispatcher struct {
	eventBus *eventbus.EventBus
	log      *logrus.Logger
}

func NewEventDispatcher(eb *eventbus.EventBus, log *logrus.Logger) *EventDispatcher {
	return &EventDispatcher{
		eventBus: eb,
		log:      log,
	}
}

// ListenForCoreEvents returns a command that blocks on the next core event
// and delivers it to Update. The Update loop re-issues it after every event.
func (d *EventDispatcher) ListenForCoreEvents() tea.Cmd {
	return func() tea.Msg {
		event, ok := <-d.eventBus.CoreToUI()
		if !ok {
			return nil
		}
		return update.CoreEventMsg{Event: event}
	}
}

func (d *EventDispatcher) SendMessage(message string) {
	if err := d.eventBus.SendToCore(eventbus.SendMessageEvent{Message: message}); err != nil {
		d.log.WithError(err).Warn("failed to dispatch send message event")
	}
}

func (d *EventDispatcher) SetMode(mode string) {
	if err := d.eventBus.SendToCore(eventbus.SetModeEvent{Mode: mode}); err != nil {
		d.log.WithError(err).Warn("failed to dispatch mode change event")
	}
}

func (d *EventDispatcher) SetLanguage(code string) {
	if err := d.eventBus.SendToCore(eventbus.SetLanguageEvent{Code: code}); err != nil {
		d.log.WithError(err).Warn("failed to dispatch language change event")
	}
}

func (d *EventDispatcher) CheckHealth() {
	if err := d.eventBus.SendToCore(eventbus.CheckHealthEvent{}); err != nil {
		d.log.WithError(err).Warn("failed to dispatch health check event")
	}
}

func (d *EventDispatcher) DismissCrisis() {
	if err := d.eventBus.SendToCore(eventbus.DismissCrisisEvent{}); err != nil {
		d.log.WithError(err).Warn("failed to dispatch crisis dismissal event")
	}
}
