// Package content formats publication content for display.
package content

import (
	"html/template"
	"strings"

	"github.com/wansing/editorial/util"
	"gitlab.com/golang-commonmark/markdown"
)

// ExcerptRunes is the length of excerpts in publication lists.
const ExcerptRunes = 150

// raw HTML is escaped, content comes from the publications backend
var markdownParser *markdown.Markdown = markdown.New(markdown.HTML(false), markdown.Linkify(true), markdown.Typographer(true), markdown.MaxNesting(10))

// Markdown renders CommonMark markdown to HTML.
func Markdown(text string) template.HTML {
	return template.HTML(markdownParser.RenderToString([]byte(text)))
}

// Excerpt returns the first maxRunes runes of the text content of the rendered markdown.
// If the text is longer, "..." is appended.
func Excerpt(text string, maxRunes int) string {
	var rendered = markdownParser.RenderToString([]byte(text))
	var plain = util.PlainText(strings.NewReader(rendered), 4*maxRunes+16) // a rune has at most four bytes
	if excerpt, truncated := util.Trunc(plain, maxRunes); truncated {
		return excerpt + "..."
	} else {
		return excerpt
	}
}
