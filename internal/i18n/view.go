package i18n

// View receives declarative translation updates. The TUI implements it with
// a label store its components read at render time; tests implement it with
// a recorder. This keeps the manager free of any rendering dependency.
type View interface {
	// SetTitle sets the window title.
	SetTitle(title string)
	// SetText replaces the plain text of the element with the given id.
	SetText(id, text string)
	// SetPlaceholder replaces the placeholder attribute of an input element.
	SetPlaceholder(id, text string)
	// SetMarkup replaces the element content with raw markup.
	SetMarkup(id, markup string)
	// SetSelectedLanguage mirrors the current language into the picker.
	SetSelectedLanguage(code string)
}

type BindingKind int

const (
	// BindText marks an element whose text content is translated.
	BindText BindingKind = iota
	// BindPlaceholder marks an input whose placeholder attribute is translated.
	BindPlaceholder
	// BindMarkup marks an element translated as raw markup.
	BindMarkup
)

// Binding declares that the view element with ID shows the translation of Key.
type Binding struct {
	ID   string
	Key  string
	Kind BindingKind
}
