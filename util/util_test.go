package util

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestTrunc(t *testing.T) {
	tests := []struct {
		input         string
		max           int
		want          string
		wantTruncated bool
	}{
		{"hello", 10, "hello", false},
		{"hello", 5, "hello", false},
		{"hello world", 6, "hello", true},
		{"  padded  ", 10, "padded", false},
		{"äöüß", 2, "äö", true},
		{"", 3, "", false},
	}
	for _, tt := range tests {
		got, truncated := Trunc(tt.input, tt.max)
		if got != tt.want || truncated != tt.wantTruncated {
			t.Errorf("Trunc(%q, %d) = %q, %v, want %q, %v", tt.input, tt.max, got, truncated, tt.want, tt.wantTruncated)
		}
	}
}

func TestPlainText(t *testing.T) {
	got := PlainText(strings.NewReader("<h1>Title</h1>\n<p>Some <em>emphasized</em>\n  text &amp; more.</p>"), 1000)
	want := "Title Some emphasized text & more."
	if got != want {
		t.Errorf("PlainText() = %q, want %q", got, want)
	}

	got = PlainText(strings.NewReader("<p>"+strings.Repeat("word ", 1000)+"</p>"), 20)
	if len(got) > 25 {
		t.Errorf("PlainText() did not stop early, got %d bytes", len(got))
	}

	// indentation must not use up the limit
	got = PlainText(strings.NewReader("<pre><code>"+strings.Repeat(" ", 700)+"x\n</code></pre>\n<p>Text follows.</p>"), 20)
	if want := "x Text follows."; got != want {
		t.Errorf("PlainText() = %q, want %q", got, want)
	}
}

func TestHandlePrefix(t *testing.T) {
	var handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/old" {
			http.Redirect(w, r, "/new", http.StatusSeeOther)
			return
		}
		w.Write([]byte(r.URL.Path))
	})

	mux := http.NewServeMux()
	HandlePrefix(mux, NormalizePrefix("console/"), handler)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/console/authors", nil))
	if rec.Body.String() != "/authors" {
		t.Errorf("path = %q, want /authors", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/console/old", nil))
	if loc := rec.Header().Get("Location"); loc != "/console/new" {
		t.Errorf("location = %q, want /console/new", loc)
	}
}

func TestNormalizePrefix(t *testing.T) {
	for input, want := range map[string]string{
		"":          "",
		"/":         "",
		"console":   "/console",
		"/console/": "/console",
		"a/b/":      "/a/b",
	} {
		if got := NormalizePrefix(input); got != want {
			t.Errorf("NormalizePrefix(%q) = %q, want %q", input, got, want)
		}
	}
}
