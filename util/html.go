package util

import (
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// PlainText returns the text content of an HTML fragment, with whitespace collapsed.
// It collects at most maxBytes bytes of collapsed text, so runs of whitespace don't count against the limit.
func PlainText(input io.Reader, maxBytes int) string {

	tokenizer := html.NewTokenizerFragment(input, "body")

	var text = &strings.Builder{}
	var space bool

	for text.Len() < maxBytes {

		tt := tokenizer.Next()
		if tt == html.ErrorToken {
			break // assuming tokenizer.Err() == io.EOF
		}

		if tt != html.TextToken {
			continue
		}

		for _, r := range string(tokenizer.Text()) { // entities are unescaped
			if unicode.IsSpace(r) {
				space = text.Len() > 0
				continue
			}
			if space {
				text.WriteByte(' ')
				space = false
			}
			text.WriteRune(r)
			if text.Len() >= maxBytes {
				break
			}
		}
	}

	var s = text.String()
	if len(s) > maxBytes {
		var cut = maxBytes
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		s = s[:cut]
	}

	return strings.TrimSpace(s)
}
