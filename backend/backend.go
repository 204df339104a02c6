package backend

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/wansing/editorial/content"
	"github.com/wansing/editorial/core"
	"github.com/wansing/editorial/gateway"
	"github.com/wansing/editorial/workflow"
)

//go:embed assets
var assets embed.FS

// we need the Console in the backend
type context struct {
	*core.Request
	Prefix  string // with trailing slash
	path    string
	console *core.Console
}

// Active reports whether the current page belongs to the given navigation tab.
func (ctx *context) Active(tab string) bool {
	return ctx.path == "/"+tab || strings.HasPrefix(ctx.path, "/"+tab+"/")
}

func middleware(console *core.Console, prefix string, f func(http.ResponseWriter, *http.Request, *context, httprouter.Params) error) httprouter.Handle {
	return func(w http.ResponseWriter, req *http.Request, params httprouter.Params) {

		var ctx = &context{
			Request: console.NewRequest(w, req),
			Prefix:  prefix + "/",
			path:    req.URL.Path,
			console: console,
		}
		defer ctx.Cleanup()

		if err := f(w, req, ctx, params); err != nil {
			if gateway.IsNotFound(err) {
				w.WriteHeader(http.StatusNotFound)
			}
			// probably no template has been executed, so execute error template
			errorTmpl.Execute(w, struct {
				*context
				Err error
			}{
				context: ctx,
				Err:     err,
			})
		}
	}
}

var errorTmpl = tmpl(`
	<div class="alert alert-danger" role="alert">
		{{ .Err }}
	</div>`)

// NewRouter returns the console handler. Its links are relative to prefix, which must not have a trailing slash.
func NewRouter(console *core.Console, prefix string) http.Handler {

	var router = httprouter.New()

	static, err := fs.Sub(assets, "assets")
	if err != nil {
		panic(err)
	}
	router.ServeFiles("/assets/*filepath", http.FS(static))

	var GETAndPOST = func(path string, handle httprouter.Handle) {
		router.GET(path, handle)
		router.POST(path, handle)
	}

	router.GET("/", middleware(console, prefix, root))
	GETAndPOST("/authors", middleware(console, prefix, authors))
	router.GET("/authors/:id", middleware(console, prefix, author))
	GETAndPOST("/publications", middleware(console, prefix, publications))
	router.GET("/publications/:id", middleware(console, prefix, publication))
	GETAndPOST("/publications/:id/status", middleware(console, prefix, status))

	return router
}

func root(w http.ResponseWriter, req *http.Request, ctx *context, params httprouter.Params) error {
	ctx.SeeOther("/authors")
	return nil
}

func tmpl(text string) *template.Template {
	t := template.Must(backendTmpl.Clone())
	t = template.Must(t.Parse(`{{ define "content" }}` + text + `{{ end }}`))
	return t
}

var backendTmpl = template.Must(template.New("backend").Funcs(
	template.FuncMap{
		"Excerpt": func(text string) string {
			return content.Excerpt(text, content.ExcerptRunes)
		},
		"Markdown": content.Markdown,
		"StatusColor": func(s workflow.Status) template.CSS {
			return template.CSS(s.Color())
		},
		"StatusLabel": func(s workflow.Status) string {
			return s.Label()
		},
	},
).Parse(`
<!DOCTYPE html>
<html>
	<head>
		<base href="{{ .Prefix }}">
		<meta charset="utf-8">
		<meta name="viewport" content="width=device-width, initial-scale=1, shrink-to-fit=no">
		<title>Editorial Management System</title>
		<link rel="stylesheet" type="text/css" href="assets/editorial.css">
	</head>
	<body>

		<header class="header">
			<h1>Editorial Management System</h1>
			<p>Manage Authors and Publications</p>
		</header>

		<nav class="nav">
			<a {{ if .Active "authors" }}class="active" {{ end }}href="authors">Authors</a>
			<a {{ if .Active "publications" }}class="active" {{ end }}href="publications">Publications</a>
		</nav>

		<div class="container">
			{{ .RenderNotifications }}
			{{ template "content" . }}
		</div>

	</body>
</html>`))
