// Package labels holds the translated strings the localization manager
// pushes into the UI. Components read it at render time, so a language
// switch repaints on the next frame without the manager knowing anything
// about bubbletea.
package labels

import (
	"sync"

	"github.com/sakha-ai/sakha-tui/internal/i18n"
)

// Store is a concurrency-safe label table implementing i18n.View.
type Store struct {
	mu           sync.RWMutex
	title        string
	language     string
	texts        map[string]string
	placeholders map[string]string
	markups      map[string]string
}

var _ i18n.View = (*Store)(nil)

func NewStore() *Store {
	return &Store{
		texts:        make(map[string]string),
		placeholders: make(map[string]string),
		markups:      make(map[string]string),
	}
}

func (s *Store) SetTitle(title string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.title = title
}

func (s *Store) SetText(id, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.texts[id] = text
}

func (s *Store) SetPlaceholder(id, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.placeholders[id] = text
}

func (s *Store) SetMarkup(id, markup string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.markups[id] = markup
}

func (s *Store) SetSelectedLanguage(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.language = code
}

func (s *Store) Title() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.title
}

func (s *Store) Text(id string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.texts[id]
}

func (s *Store) Placeholder(id string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.placeholders[id]
}

func (s *Store) Markup(id string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.markups[id]
}

func (s *Store) SelectedLanguage() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.language
}
