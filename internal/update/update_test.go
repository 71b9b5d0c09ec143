package update

import (
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakha-ai/sakha-tui/internal/eventbus"
	"github.com/sakha-ai/sakha-tui/internal/models"
)

type keyLocalizer struct{}

func (keyLocalizer) T(key string, params ...map[string]string) string { return key }
func (keyLocalizer) Language() string                                 { return "en" }

func testModel() models.AppModel {
	return models.AppModel{
		Input:   textinput.New(),
		Spinner: spinner.New(),
		Mode:    "normal",
		Modes:   []string{"normal", "gita", "inspire"},
		Width:   80,
		Height:  24,
	}
}

func TestHandleCoreEventAppendsNewMessages(t *testing.T) {
	m := testModel()
	m.Messages = []models.Message{models.NewMessage(models.User, "hello")}

	m, _ = HandleCoreEvent(m, eventbus.StateUpdateEvent{
		Messages:     []models.Message{models.NewMessage(models.Assistant, "hi there")},
		IsProcessing: false,
		Mood:         "calm",
		Started:      true,
		Mode:         "normal",
	}, keyLocalizer{})

	require.Len(t, m.Messages, 2)
	assert.Equal(t, "hi there", m.Messages[1].Content)
	assert.Equal(t, "calm", m.Mood)
	assert.True(t, m.Started)
}

func TestHandleCoreEventLoadingStartsSpinner(t *testing.T) {
	m := testModel()

	m, cmd := HandleCoreEvent(m, eventbus.StateUpdateEvent{IsProcessing: true, Mode: "normal"}, keyLocalizer{})

	assert.True(t, m.Loading)
	assert.NotNil(t, cmd, "a fresh request kicks off the spinner")
	assert.Equal(t, "app.status.thinking", m.Status)
}

func TestHandleCoreEventConnectivityStatus(t *testing.T) {
	m := testModel()

	m, _ = HandleCoreEvent(m, eventbus.ConnectivityEvent{Connectivity: models.ConnConnected, AIEnabled: true}, keyLocalizer{})
	assert.Equal(t, "app.status.aiReady", m.Status)

	m, _ = HandleCoreEvent(m, eventbus.ConnectivityEvent{Connectivity: models.ConnConnected, AIEnabled: false}, keyLocalizer{})
	assert.Equal(t, "app.status.limited", m.Status)

	m, _ = HandleCoreEvent(m, eventbus.ConnectivityEvent{Connectivity: models.ConnDisconnected}, keyLocalizer{})
	assert.Equal(t, "app.status.disconnected", m.Status)
}

func TestHandleCoreEventLanguageChangeRefreshesSurfaces(t *testing.T) {
	m := testModel()
	m.Mode = "gita"

	m, cmd := HandleCoreEvent(m, eventbus.LanguageChangedEvent{Code: "hi"}, keyLocalizer{})

	assert.Equal(t, "hi", m.Language)
	assert.Equal(t, "app.placeholders.gita", m.Input.Placeholder)
	assert.NotNil(t, cmd, "the window title refresh is a command")
}

func TestHandleWindowSizeMsg(t *testing.T) {
	m := testModel()

	m = HandleWindowSizeMsg(m, windowSize(120, 40))

	assert.Equal(t, 120, m.Width)
	assert.Equal(t, 40, m.Height)
}
