// Package markup turns assistant-authored text into display markup. The
// transform is deliberately not a markdown parser: a fixed, ordered list of
// rewrite rules with no nesting, escaping, tables or code blocks. User
// messages never pass through it so typed markers stay literal.
package markup

import (
	"regexp"
	"strings"
)

var (
	boldRe   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicRe = regexp.MustCompile(`\*(.+?)\*`)
	urlRe    = regexp.MustCompile(`https?://[^\s<]+`)
	ruleRe   = regexp.MustCompile(`-{3,}`)
	listRe   = regexp.MustCompile(`<li>.*?</li>(?:<br><li>.*?</li>)*`)
)

// Format rewrites text into markup. Rule order is load-bearing: bold runs
// before italic because the italic pattern matches inside bold markers, and
// the line rules operate on the break markers the newline rule produced.
func Format(content string) string {
	// 1. Bold, then 2. italic.
	s := boldRe.ReplaceAllString(content, "<strong>$1</strong>")
	s = italicRe.ReplaceAllString(s, "<em>$1</em>")

	// 3. Newlines become explicit breaks.
	s = strings.ReplaceAll(s, "\n", "<br>")

	// 4. Bare URLs become anchors opened in an isolated new context.
	s = urlRe.ReplaceAllStringFunc(s, func(url string) string {
		return `<a href="` + url + `" target="_blank" rel="noopener noreferrer">` + url + `</a>`
	})

	// 5. Divider runs.
	s = ruleRe.ReplaceAllString(s, "<hr>")

	// 6. Headings and 7. list items, applied per line.
	segments := strings.Split(s, "<br>")
	for i, seg := range segments {
		switch {
		case strings.HasPrefix(seg, "### "):
			segments[i] = "<h3>" + strings.TrimPrefix(seg, "### ") + "</h3>"
		case strings.HasPrefix(seg, "## "):
			segments[i] = "<h2>" + strings.TrimPrefix(seg, "## ") + "</h2>"
		case strings.HasPrefix(seg, "• "):
			segments[i] = "<li>" + strings.TrimPrefix(seg, "• ") + "</li>"
		case strings.HasPrefix(seg, "- "):
			segments[i] = "<li>" + strings.TrimPrefix(seg, "- ") + "</li>"
		}
	}
	s = strings.Join(segments, "<br>")

	// 8. Adjacent list items merge into one enclosing list; separate runs
	// form separate lists.
	s = listRe.ReplaceAllStringFunc(s, func(run string) string {
		return "<ul>" + strings.ReplaceAll(run, "<br>", "") + "</ul>"
	})

	return s
}
