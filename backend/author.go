package backend

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/wansing/editorial/core"
)

var authorTmpl = tmpl(`
	<div class="tab-header">
		<h2>{{ .Author.Name }}</h2>
		<a class="btn btn-secondary" href="authors">Back</a>
	</div>

	<div class="card">
		<p>{{ .Author.Email }}</p>
		{{ with .Author.Organization }}<p><em>{{ . }}</em></p>{{ end }}
		{{ with .Author.Biography }}<p>{{ . }}</p>{{ end }}
		<div class="meta">
			<span>ID: {{ .Author.ID }}</span>
			<span>{{ .FormatDate .Author.CreatedAt }}</span>
		</div>
	</div>

	<h2>Publications</h2>

	{{ with .Err }}
		<div class="alert alert-danger" role="alert">{{ . }}</div>
	{{ end }}

	{{ range .Publications }}
		<div class="card">
			<div class="tab-header">
				<h3><a href="publications/{{ .ID }}">{{ .Title }}</a></h3>
				<span class="badge" style="background-color: {{ StatusColor .Status }}">{{ StatusLabel .Status }}</span>
			</div>
			<p>{{ Excerpt .Content }}</p>
			<div class="meta">
				<span>ID: {{ .ID }}</span>
				<span>{{ $.FormatDate .CreatedAt }}</span>
			</div>
		</div>
	{{ else }}
		<div class="empty">
			<p>No publications found.</p>
		</div>
	{{ end }}`)

type authorData struct {
	*context
	*core.AuthorProfile
}

func author(w http.ResponseWriter, req *http.Request, ctx *context, params httprouter.Params) error {

	id, err := strconv.ParseInt(params.ByName("id"), 10, 64)
	if err != nil {
		return err
	}

	profile, err := ctx.console.LoadAuthorProfile(req.Context(), id)
	if err != nil {
		return err
	}

	return authorTmpl.Execute(w, &authorData{
		context:       ctx,
		AuthorProfile: profile,
	})
}
