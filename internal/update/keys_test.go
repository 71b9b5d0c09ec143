package update

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

type recordingDispatcher struct {
	sent      []string
	modes     []string
	languages []string
	health    int
	dismissed int
}

func (d *recordingDispatcher) SendMessage(message string) { d.sent = append(d.sent, message) }
func (d *recordingDispatcher) SetMode(mode string)        { d.modes = append(d.modes, mode) }
func (d *recordingDispatcher) SetLanguage(code string)    { d.languages = append(d.languages, code) }
func (d *recordingDispatcher) CheckHealth()               { d.health++ }
func (d *recordingDispatcher) DismissCrisis()             { d.dismissed++ }

func windowSize(w, h int) tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: w, Height: h}
}

func TestEnterDispatchesAndClearsInput(t *testing.T) {
	m := testModel()
	m.Input.SetValue("hello there")
	d := &recordingDispatcher{}

	m, _ = HandleKeyMsg(m, tea.KeyMsg{Type: tea.KeyEnter}, d)

	assert.Equal(t, []string{"hello there"}, d.sent)
	assert.Empty(t, m.Input.Value(), "the field clears optimistically")
}

func TestEnterWithEmptyInputDispatchesNothing(t *testing.T) {
	m := testModel()
	d := &recordingDispatcher{}

	_, _ = HandleKeyMsg(m, tea.KeyMsg{Type: tea.KeyEnter}, d)

	assert.Empty(t, d.sent)
}

func TestTabCyclesModes(t *testing.T) {
	m := testModel()
	d := &recordingDispatcher{}

	_, _ = HandleKeyMsg(m, tea.KeyMsg{Type: tea.KeyTab}, d)
	assert.Equal(t, []string{"gita"}, d.modes)

	m.Mode = "inspire"
	_, _ = HandleKeyMsg(m, tea.KeyMsg{Type: tea.KeyTab}, d)
	assert.Equal(t, "normal", d.modes[1], "the cycle wraps around")
}

func TestCtrlLCyclesLanguages(t *testing.T) {
	m := testModel()
	m.Language = "en"
	d := &recordingDispatcher{}

	_, _ = HandleKeyMsg(m, tea.KeyMsg{Type: tea.KeyCtrlL}, d)
	assert.Equal(t, []string{"hi"}, d.languages)

	m.Language = "es"
	_, _ = HandleKeyMsg(m, tea.KeyMsg{Type: tea.KeyCtrlL}, d)
	assert.Equal(t, "en", d.languages[1], "the cycle wraps around the catalog")
}

func TestCtrlRRequestsHealthCheck(t *testing.T) {
	d := &recordingDispatcher{}

	_, _ = HandleKeyMsg(testModel(), tea.KeyMsg{Type: tea.KeyCtrlR}, d)

	assert.Equal(t, 1, d.health)
}

func TestEscDismissesCrisisOnlyWhenShown(t *testing.T) {
	d := &recordingDispatcher{}

	_, _ = HandleKeyMsg(testModel(), tea.KeyMsg{Type: tea.KeyEscape}, d)
	assert.Equal(t, 0, d.dismissed)

	m := testModel()
	m.CrisisShown = true
	_, _ = HandleKeyMsg(m, tea.KeyMsg{Type: tea.KeyEscape}, d)
	assert.Equal(t, 1, d.dismissed)
}

func TestTypedRunesFeedTheInput(t *testing.T) {
	m := testModel()
	m.Input.Focus()
	d := &recordingDispatcher{}

	m, _ = HandleKeyMsg(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hi")}, d)

	assert.Equal(t, "hi", m.Input.Value())
	assert.Empty(t, d.sent)
}

func TestNextInCycle(t *testing.T) {
	items := []string{"a", "b", "c"}

	assert.Equal(t, "b", nextInCycle(items, "a"))
	assert.Equal(t, "a", nextInCycle(items, "c"))
	assert.Equal(t, "a", nextInCycle(items, "unknown"))
}
