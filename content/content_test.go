package content

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestMarkdown(t *testing.T) {
	got := string(Markdown("# Engines\n\nThe *analytical* engine."))
	for _, want := range []string{"<h1>Engines</h1>", "<em>analytical</em>"} {
		if !strings.Contains(got, want) {
			t.Errorf("Markdown() = %q, want it to contain %q", got, want)
		}
	}
}

func TestMarkdownEscapesHTML(t *testing.T) {
	got := string(Markdown(`<script>alert("x")</script>`))
	if strings.Contains(got, "<script>") {
		t.Errorf("Markdown() did not escape raw HTML: %q", got)
	}
}

func TestExcerpt(t *testing.T) {
	if got := Excerpt("Short **note**.", ExcerptRunes); got != "Short note." {
		t.Errorf("Excerpt() = %q, want %q", got, "Short note.")
	}

	long := strings.Repeat("lorem ipsum ", 50)
	got := Excerpt(long, ExcerptRunes)
	if !strings.HasSuffix(got, "...") {
		t.Errorf("Excerpt() = %q, want suffix ...", got)
	}
	if n := utf8.RuneCountInString(strings.TrimSuffix(got, "...")); n > ExcerptRunes {
		t.Errorf("Excerpt() has %d runes, want at most %d", n, ExcerptRunes)
	}

	indented := "```\n" + strings.Repeat(" ", 700) + "x\n```\n\nThe actual article text follows here."
	if got, want := Excerpt(indented, ExcerptRunes), "x The actual article text follows here."; got != want {
		t.Errorf("Excerpt() = %q, want %q", got, want)
	}

	got = Excerpt(indented+" "+long, ExcerptRunes)
	if !strings.HasPrefix(got, "x The actual article text") || !strings.HasSuffix(got, "...") {
		t.Errorf("Excerpt() = %q, want text after the indented block and suffix ...", got)
	}

	if got := Excerpt("", ExcerptRunes); got != "" {
		t.Errorf("Excerpt(\"\") = %q", got)
	}
}
