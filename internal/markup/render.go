package markup

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Markup styles
func StrongStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true)
}

func EmStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Italic(true)
}

func HeadingStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true)
}

func SubheadingStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true)
}

func LinkStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Underline(true)
}

func ListStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		MarginLeft(2)
}

func RuleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
}

var (
	ulRe     = regexp.MustCompile(`<ul>(.*?)</ul>`)
	liRe     = regexp.MustCompile(`<li>(.*?)</li>`)
	h2Re     = regexp.MustCompile(`<h2>(.*?)</h2>`)
	h3Re     = regexp.MustCompile(`<h3>(.*?)</h3>`)
	anchorRe = regexp.MustCompile(`<a href="([^"]*)"[^>]*>(.*?)</a>`)
	strongRe = regexp.MustCompile(`<strong>(.*?)</strong>`)
	emRe     = regexp.MustCompile(`<em>(.*?)</em>`)
)

// Render converts Format output into styled terminal text. Anchors become
// OSC 8 hyperlinks so capable terminals open them in the browser.
func Render(markup string, width int) string {
	if width < 8 {
		width = 8
	}

	// Lists first: one enclosing block, one bulleted line per item
	s := ulRe.ReplaceAllStringFunc(markup, func(block string) string {
		items := liRe.FindAllStringSubmatch(block, -1)
		lines := make([]string, len(items))
		for i, item := range items {
			lines[i] = ListStyle().Render("• " + item[1])
		}
		return strings.Join(lines, "\n")
	})

	s = h2Re.ReplaceAllStringFunc(s, func(match string) string {
		return HeadingStyle().Render(h2Re.FindStringSubmatch(match)[1])
	})
	s = h3Re.ReplaceAllStringFunc(s, func(match string) string {
		return SubheadingStyle().Render(h3Re.FindStringSubmatch(match)[1])
	})

	s = strings.ReplaceAll(s, "<hr>", RuleStyle().Render(strings.Repeat("─", width-4)))

	s = anchorRe.ReplaceAllStringFunc(s, func(match string) string {
		parts := anchorRe.FindStringSubmatch(match)
		return termenv.Hyperlink(parts[1], LinkStyle().Render(parts[2]))
	})

	s = strongRe.ReplaceAllStringFunc(s, func(match string) string {
		return StrongStyle().Render(strongRe.FindStringSubmatch(match)[1])
	})
	s = emRe.ReplaceAllStringFunc(s, func(match string) string {
		return EmStyle().Render(emRe.FindStringSubmatch(match)[1])
	})

	return strings.ReplaceAll(s, "<br>", "\n")
}
