// Package i18n is the single source of truth for the active language and for
// resolving and applying translated text. Every failure here degrades to a
// visible fallback (English content or the raw key); nothing is fatal.
package i18n

import (
	"context"
	"regexp"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/sakha-ai/sakha-tui/internal/eventbus"
)

// Source fetches the translation document for a language code.
type Source interface {
	Translations(ctx context.Context, code string) (map[string]any, error)
}

// Store persists the user's explicit language choice.
type Store interface {
	PersistedLanguage() string
	SetLanguage(code string) error
}

var placeholderRe = regexp.MustCompile(`\{\{(\w+)\}\}`)

// Manager owns the translation table and the current language. Other
// components hold it as a read-only capability (the Localizer interface in
// core); only explicit user-driven changes mutate it.
type Manager struct {
	mu       sync.RWMutex
	table    map[string]any
	current  string
	source   Source
	store    Store
	view     View
	bindings []Binding
	bus      *eventbus.EventBus
	log      *logrus.Logger
}

func NewManager(source Source, store Store, view View, bus *eventbus.EventBus, log *logrus.Logger) *Manager {
	return &Manager{
		table:   make(map[string]any),
		current: DetectLanguage(store.PersistedLanguage()),
		source:  source,
		store:   store,
		view:    view,
		bus:     bus,
		log:     log,
	}
}

// Bind declares the view elements ApplyTranslations refreshes.
func (m *Manager) Bind(bindings ...Binding) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bindings = append(m.bindings, bindings...)
}

func (m *Manager) Language() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// LoadTranslations fetches the document for the current language and applies
// it. On any failure it logs and falls back to English; if the fallback load
// fails too, the previous table stays in place.
func (m *Manager) LoadTranslations(ctx context.Context) {
	code := m.Language()

	table, err := m.source.Translations(ctx, code)
	if err != nil {
		m.log.WithError(err).WithField("language", code).Warn("translation load failed, falling back to English")

		table, err = m.source.Translations(ctx, DefaultLanguage)
		if err != nil {
			m.log.WithError(err).Warn("English fallback load failed, keeping previous translations")
			return
		}
	}

	m.mu.Lock()
	m.table = table
	m.mu.Unlock()

	m.ApplyTranslations()
}

// T resolves a dotted key path against the translation table. A miss returns
// the key unchanged. {{name}} placeholders are substituted from params;
// absent params leave the placeholder text intact.
func (m *Manager) T(key string, params ...map[string]string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var node any = m.table
	for _, segment := range strings.Split(key, ".") {
		branch, ok := node.(map[string]any)
		if !ok {
			m.log.WithField("key", key).Debug("translation key miss")
			return key
		}
		node, ok = branch[segment]
		if !ok {
			m.log.WithField("key", key).Debug("translation key miss")
			return key
		}
	}

	leaf, ok := node.(string)
	if !ok {
		m.log.WithField("key", key).Debug("translation key resolves to a subtree, not a string")
		return key
	}

	if len(params) == 0 {
		return leaf
	}
	return placeholderRe.ReplaceAllStringFunc(leaf, func(match string) string {
		name := placeholderRe.FindStringSubmatch(match)[1]
		if value, ok := params[0][name]; ok {
			return value
		}
		return match
	})
}

// ApplyTranslations pushes every bound translation into the view: the title
// from app.title, each declared element by kind, and finally the language
// selector mirroring the current code.
func (m *Manager) ApplyTranslations() {
	if m.view == nil {
		return
	}

	m.view.SetTitle(m.T("app.title"))

	m.mu.RLock()
	bindings := make([]Binding, len(m.bindings))
	copy(bindings, m.bindings)
	m.mu.RUnlock()

	for _, b := range bindings {
		text := m.T(b.Key)
		switch b.Kind {
		case BindPlaceholder:
			m.view.SetPlaceholder(b.ID, text)
		case BindMarkup:
			m.view.SetMarkup(b.ID, text)
		default:
			m.view.SetText(b.ID, text)
		}
	}

	m.view.SetSelectedLanguage(m.Language())
}

// SetLanguage switches the active language: a no-op when code already is the
// current language, otherwise exactly one persisted write, a reload (with
// English fallback), and exactly one broadcast carrying the new code.
func (m *Manager) SetLanguage(ctx context.Context, code string) {
	if code == m.Language() {
		return
	}

	m.mu.Lock()
	m.current = code
	m.mu.Unlock()

	if err := m.store.SetLanguage(code); err != nil {
		m.log.WithError(err).WithField("language", code).Warn("failed to persist language choice")
	}

	m.LoadTranslations(ctx)

	if err := m.bus.SendToUI(eventbus.LanguageChangedEvent{Code: code}); err != nil {
		m.log.WithError(err).Warn("failed to broadcast language change")
	}
}
