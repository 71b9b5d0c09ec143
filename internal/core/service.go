package core

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/sakha-ai/sakha-tui/internal/api"
	"github.com/sakha-ai/sakha-tui/internal/eventbus"
	"github.com/sakha-ai/sakha-tui/internal/models"
)

// Localization is the read-only-plus-reload capability the controller holds
// on the localization manager.
type Localization interface {
	T(key string, params ...map[string]string) string
	Language() string
	LoadTranslations(ctx context.Context)
	SetLanguage(ctx context.Context, code string)
}

// ChatService owns the visible conversation, the interaction mode, and all
// network interaction with the backend.
type ChatService struct {
	client        *api.Client
	i18n          Localization
	state         *SessionState
	eventBus      *eventbus.EventBus
	log           *logrus.Logger
	ctx           context.Context
	cancel        context.CancelFunc
	lastSentCount int // Track how many messages we've sent to UI
}

func NewChatService(client *api.Client, loc Localization, modes []string, eb *eventbus.EventBus, log *logrus.Logger) *ChatService {
	ctx, cancel := context.WithCancel(context.Background())

	return &ChatService{
		client:   client,
		i18n:     loc,
		state:    NewSessionState(modes),
		eventBus: eb,
		log:      log,
		ctx:      ctx,
		cancel:   cancel,
	}
}

func (cs *ChatService) State() *SessionState {
	return cs.state
}

// Start runs the core logic in a goroutine: one health check, then the
// initial translation load, then the event loop.
func (cs *ChatService) Start() {
	cs.pushStateToUI()
	go func() {
		cs.CheckHealth()
		cs.i18n.LoadTranslations(cs.ctx)
		if err := cs.eventBus.SendToUI(eventbus.TranslationsLoadedEvent{Code: cs.i18n.Language()}); err != nil {
			cs.log.WithError(err).Warn("failed to announce translation load")
		}
		cs.eventLoop()
	}()
}

func (cs *ChatService) Stop() {
	cs.cancel()
}

func (cs *ChatService) eventLoop() {
	for {
		select {
		case <-cs.ctx.Done():
			return
		case event, ok := <-cs.eventBus.UIToCore():
			if !ok {
				return
			}
			cs.handleUIEvent(event)
		}
	}
}

func (cs *ChatService) handleUIEvent(event eventbus.UIEvent) {
	switch e := event.(type) {
	case eventbus.SendMessageEvent:
		cs.SendMessage(e.Message)
	case eventbus.SetModeEvent:
		cs.SetMode(e.Mode)
	case eventbus.SetLanguageEvent:
		cs.i18n.SetLanguage(cs.ctx, e.Code)
	case eventbus.CheckHealthEvent:
		cs.CheckHealth()
	case eventbus.DismissCrisisEvent:
		cs.state.DismissCrisis()
		cs.pushStateToUI()
	}
}

// CheckHealth calls the health endpoint and transitions connectivity. Only a
// body with status "healthy" counts as Connected; everything else, including
// transport failure, is Disconnected.
func (cs *ChatService) CheckHealth() {
	health, err := cs.client.Health(cs.ctx)
	if err != nil || !health.Healthy() {
		if err != nil {
			cs.log.WithError(err).Warn("health check failed")
		}
		cs.state.SetConnectivity(models.ConnDisconnected, false)
	} else {
		cs.state.SetConnectivity(models.ConnConnected, health.AIEnabled)
	}

	if err := cs.eventBus.SendToUI(eventbus.ConnectivityEvent{
		Connectivity: cs.state.Connectivity(),
		AIEnabled:    cs.state.AIEnabled(),
	}); err != nil {
		cs.log.WithError(err).Warn("failed to push connectivity to UI")
	}
}

// SendMessage drives one chat round trip. Guarded: empty input, a missing
// connection or an outstanding request make it a silent no-op. The user turn
// is appended before the network call; the matching assistant or error turn
// follows when the call resolves, so the pair ordering always holds. A
// failed call never changes connectivity; that is the health check's job.
func (cs *ChatService) SendMessage(text string) {
	if !cs.state.CanSend(text) {
		return
	}
	trimmed := strings.TrimSpace(text)

	cs.state.StartProcessingWithUserMessage(trimmed)
	cs.pushStateToUI()

	resp, err := cs.client.Chat(cs.ctx, api.ChatRequest{
		Message:  trimmed,
		Mode:     cs.state.Mode(),
		Language: cs.i18n.Language(),
	})
	if err != nil {
		cs.log.WithError(err).Warn("chat request failed")
		cs.state.FinishProcessingWithErrorTurn(cs.i18n.T("app.errors.generic"))
	} else {
		cs.state.FinishProcessingWithAssistant(resp.Response, resp.CrisisDetected, resp.Mood)
	}
	cs.pushStateToUI()
}

// SetMode switches the active interaction mode. Once the conversation is
// under way a localized program notice marks the switch in the transcript.
func (cs *ChatService) SetMode(mode string) {
	if !cs.state.SetMode(mode) {
		return
	}
	if cs.state.Started() {
		cs.state.AddProgramMessage(cs.i18n.T("app.modes.switched", map[string]string{
			"mode": cs.i18n.T("app.modes." + mode),
		}))
	}
	cs.pushStateToUI()
}

func (cs *ChatService) pushStateToUI() {
	allMessages := cs.state.GetMessages()

	// Only send new messages to reduce resource usage
	newMessages := allMessages[cs.lastSentCount:]
	cs.lastSentCount = len(allMessages)

	if err := cs.eventBus.SendToUI(eventbus.StateUpdateEvent{
		Messages:     newMessages,
		IsProcessing: cs.state.IsProcessing(),
		Mood:         cs.state.Mood(),
		Started:      cs.state.Started(),
		CrisisShown:  cs.state.CrisisShown(),
		Mode:         cs.state.Mode(),
	}); err != nil {
		cs.log.WithError(err).Warn("failed to push state to UI")
	}
}
