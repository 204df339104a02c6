package backend

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/wansing/editorial/core"
)

var authorsTmpl = tmpl(`
	<div class="tab-header">
		<h2>Authors Management</h2>
		{{ if .ShowForm }}
			<a class="btn btn-primary" href="authors">Cancel</a>
		{{ else }}
			<a class="btn btn-primary" href="authors?new=1">+ New Author</a>
		{{ end }}
	</div>

	{{ with .Err }}
		<div class="alert alert-danger" role="alert">{{ . }}</div>
	{{ end }}

	{{ if .ShowForm }}
		<form class="card" method="post" action="authors">
			<input class="form-control" type="text" name="firstName" placeholder="First Name" value="{{ .Form.FirstName }}" required>
			<input class="form-control" type="text" name="lastName" placeholder="Last Name" value="{{ .Form.LastName }}" required>
			<input class="form-control" type="email" name="email" placeholder="Email" value="{{ .Form.Email }}" required>
			<input class="form-control" type="text" name="organization" placeholder="Organization" value="{{ .Form.Organization }}">
			<textarea class="form-control" name="biography" placeholder="Biography" rows="4">{{ .Form.Biography }}</textarea>
			<button class="btn btn-success" type="submit">Create Author</button>
		</form>
	{{ end }}

	{{ range .Authors }}
		<div class="card">
			<h3><a href="authors/{{ .ID }}">{{ .Name }}</a></h3>
			<p>{{ .Email }}</p>
			{{ with .Organization }}<p><em>{{ . }}</em></p>{{ end }}
			{{ with .Biography }}<p>{{ . }}</p>{{ end }}
			<div class="meta">
				<span>ID: {{ .ID }}</span>
				{{ if .Active }}
					<span class="badge" style="background-color: #4caf50">Active</span>
				{{ else }}
					<span class="badge" style="background-color: #999">Inactive</span>
				{{ end }}
			</div>
		</div>
	{{ else }}
		<div class="empty">
			<p>No authors found. Create your first author!</p>
		</div>
	{{ end }}`)

type authorsData struct {
	*context
	*core.AuthorDirectory
}

func authors(w http.ResponseWriter, req *http.Request, ctx *context, params httprouter.Params) error {

	var dir = ctx.console.NewAuthorDirectory()

	if req.Method == http.MethodPost {

		var form = core.AuthorForm{
			FirstName:    req.PostFormValue("firstName"),
			LastName:     req.PostFormValue("lastName"),
			Email:        req.PostFormValue("email"),
			Organization: req.PostFormValue("organization"),
			Biography:    req.PostFormValue("biography"),
		}

		if err := dir.Submit(req.Context(), form); err == nil {
			var input = form.Input()
			ctx.Success("author %s %s has been created", input.FirstName, input.LastName)
			ctx.SeeOther("/authors")
			return nil
		}
		var submitErr = dir.Err
		dir.Load(req.Context())
		dir.Err = submitErr
	} else {
		dir.Load(req.Context())
		dir.ShowForm = req.URL.Query().Get("new") != ""
	}

	return authorsTmpl.Execute(w, &authorsData{
		context:         ctx,
		AuthorDirectory: dir,
	})
}
