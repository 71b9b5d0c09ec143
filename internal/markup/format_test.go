package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPlainTextUnchanged(t *testing.T) {
	assert.Equal(t, "hello there", Format("hello there"))
}

func TestFormatBold(t *testing.T) {
	assert.Equal(t, "<strong>deep breaths</strong>", Format("**deep breaths**"))
}

func TestFormatItalic(t *testing.T) {
	assert.Equal(t, "<em>calm</em>", Format("*calm*"))
}

func TestFormatBoldBeforeItalic(t *testing.T) {
	// Double markers must win over single ones
	assert.Equal(t, "<strong>a</strong> and <em>b</em>", Format("**a** and *b*"))
}

func TestFormatNewlineBecomesBreak(t *testing.T) {
	assert.Equal(t, "first<br>second", Format("first\nsecond"))
}

func TestFormatBareURL(t *testing.T) {
	got := Format("see https://example.com/help now")
	want := `see <a href="https://example.com/help" target="_blank" rel="noopener noreferrer">https://example.com/help</a> now`
	assert.Equal(t, want, got)
}

func TestFormatURLTextEqualsHref(t *testing.T) {
	got := Format("https://example.com/path?x=1")
	want := `<a href="https://example.com/path?x=1" target="_blank" rel="noopener noreferrer">https://example.com/path?x=1</a>`
	assert.Equal(t, want, got)
}

func TestFormatHorizontalRule(t *testing.T) {
	assert.Equal(t, "a<br><hr><br>b", Format("a\n---\nb"))
	assert.Equal(t, "<hr>", Format("-----"))
}

func TestFormatHeadings(t *testing.T) {
	assert.Equal(t, "<h2>Tips</h2>", Format("## Tips"))
	assert.Equal(t, "<h3>Sleep</h3>", Format("### Sleep"))
}

func TestFormatHeadingOnlyAtLineStart(t *testing.T) {
	assert.Equal(t, "note ## not a heading", Format("note ## not a heading"))
}

func TestFormatListItems(t *testing.T) {
	assert.Equal(t, "<ul><li>rest</li><li>breathe</li></ul>", Format("- rest\n- breathe"))
	assert.Equal(t, "<ul><li>walk</li></ul>", Format("• walk"))
}

func TestFormatSeparateListRuns(t *testing.T) {
	// Runs split by non-list lines become separate lists
	got := Format("- a\n\ntext\n- b")
	want := "<ul><li>a</li></ul><br><br>text<br><ul><li>b</li></ul>"
	assert.Equal(t, want, got)
}

func TestFormatInlineMarkersInsideList(t *testing.T) {
	got := Format("## Tips\n- **rest**\n- breathe")
	want := "<h2>Tips</h2><br><ul><li><strong>rest</strong></li><li>breathe</li></ul>"
	assert.Equal(t, want, got)
}

func TestFormatURLInsideList(t *testing.T) {
	got := Format("- https://example.com")
	want := `<ul><li><a href="https://example.com" target="_blank" rel="noopener noreferrer">https://example.com</a></li></ul>`
	assert.Equal(t, want, got)
}
