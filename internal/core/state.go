package core

import (
	"strings"
	"sync"

	"github.com/sakha-ai/sakha-tui/internal/models"
)

// SessionState owns the conversation transcript and session flags for the
// event-driven architecture. The transcript is append-only in call order;
// nothing edits or removes a displayed entry.
type SessionState struct {
	mu           sync.RWMutex
	transcript   []models.Message
	isProcessing bool
	connectivity models.Connectivity
	aiEnabled    bool
	mode         string
	modes        []string
	started      bool
	crisisShown  bool
	mood         string
}

func NewSessionState(modes []string) *SessionState {
	mode := ""
	if len(modes) > 0 {
		mode = modes[0]
	}
	return &SessionState{
		transcript:   make([]models.Message, 0),
		connectivity: models.ConnUnknown,
		mode:         mode,
		modes:        modes,
	}
}

func (s *SessionState) GetMessages() []models.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]models.Message, len(s.transcript))
	copy(result, s.transcript)
	return result
}

func (s *SessionState) IsProcessing() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isProcessing
}

func (s *SessionState) Connectivity() models.Connectivity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.connectivity
}

func (s *SessionState) AIEnabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.aiEnabled
}

func (s *SessionState) Mode() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

func (s *SessionState) Modes() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]string, len(s.modes))
	copy(result, s.modes)
	return result
}

func (s *SessionState) Started() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.started
}

func (s *SessionState) CrisisShown() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.crisisShown
}

func (s *SessionState) Mood() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mood
}

// CanSend reports whether a send of input would go through: non-empty after
// trimming, backend Connected, and no request already outstanding.
func (s *SessionState) CanSend(input string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return strings.TrimSpace(input) != "" &&
		s.connectivity == models.ConnConnected &&
		!s.isProcessing
}

// Atomic operations for event ordering

// StartProcessingWithUserMessage appends the user's turn optimistically and
// marks a request outstanding. The first call flips the session out of the
// welcome view for good.
func (s *SessionState) StartProcessingWithUserMessage(content string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.isProcessing = true
	s.started = true
	s.transcript = append(s.transcript, models.NewMessage(models.User, content))
}

// FinishProcessingWithAssistant appends the assistant's turn and clears the
// outstanding flag. A crisis signal surfaces the affordance; it stays up
// until explicitly dismissed.
func (s *SessionState) FinishProcessingWithAssistant(content string, crisis bool, mood string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.isProcessing = false
	s.mood = mood
	if crisis {
		s.crisisShown = true
	}
	s.transcript = append(s.transcript, models.NewMessage(models.Assistant, content))
}

// FinishProcessingWithErrorTurn appends an error-flagged assistant turn
// carrying the localized generic error text.
func (s *SessionState) FinishProcessingWithErrorTurn(content string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.isProcessing = false
	s.transcript = append(s.transcript, models.NewErrorMessage(content))
}

// AddProgramMessage appends a program notice (mode switches and the like).
func (s *SessionState) AddProgramMessage(content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcript = append(s.transcript, models.NewMessage(models.Program, content))
}

// SetConnectivity records the health check outcome. Only the health check
// calls this; chat failures leave connectivity untouched.
func (s *SessionState) SetConnectivity(conn models.Connectivity, aiEnabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.connectivity = conn
	s.aiEnabled = aiEnabled
}

// SetMode activates a member of the mode set. Returns false for unknown
// modes and for switching to the already-active mode.
func (s *SessionState) SetMode(mode string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if mode == s.mode {
		return false
	}
	for _, m := range s.modes {
		if m == mode {
			s.mode = mode
			return true
		}
	}
	return false
}

func (s *SessionState) DismissCrisis() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.crisisShown = false
}
