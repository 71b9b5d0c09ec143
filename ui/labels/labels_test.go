package labels

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoreRoundTrip(t *testing.T) {
	s := NewStore()

	s.SetTitle("Sakha")
	s.SetText("welcome.title", "Welcome")
	s.SetPlaceholder("chat.input", "Share what's on your mind")
	s.SetMarkup("crisis.message", "**You are not alone**")
	s.SetSelectedLanguage("hi")

	assert.Equal(t, "Sakha", s.Title())
	assert.Equal(t, "Welcome", s.Text("welcome.title"))
	assert.Equal(t, "Share what's on your mind", s.Placeholder("chat.input"))
	assert.Equal(t, "**You are not alone**", s.Markup("crisis.message"))
	assert.Equal(t, "hi", s.SelectedLanguage())
}

func TestStoreUnknownIDsAreEmpty(t *testing.T) {
	s := NewStore()

	assert.Empty(t, s.Text("nope"))
	assert.Empty(t, s.Placeholder("nope"))
	assert.Empty(t, s.Markup("nope"))
}
