package backend

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/wansing/editorial/core"
)

var publicationsTmpl = tmpl(`
	<div class="tab-header">
		<h2>Publications Management</h2>
		{{ if .ShowForm }}
			<a class="btn btn-primary" href="publications">Cancel</a>
		{{ else }}
			<a class="btn btn-primary" href="publications?new=1">+ New Publication</a>
		{{ end }}
	</div>

	{{ if not .Dialog }}
		{{ with .Err }}
			<div class="alert alert-danger" role="alert">{{ . }}</div>
		{{ end }}
	{{ end }}

	{{ if .ShowForm }}
		<form class="card" method="post" action="publications">
			<input class="form-control" type="text" name="title" placeholder="Publication Title" value="{{ .Form.Title }}" required>
			<select class="form-control" name="authorId" required>
				<option value="">Select Author</option>
				{{ range .Authors }}
					<option {{ if eq (print .ID) $.Form.AuthorID }}selected="selected" {{ end }}value="{{ .ID }}">{{ .Name }}</option>
				{{ end }}
			</select>
			<textarea class="form-control" name="content" placeholder="Publication Content" rows="6" required>{{ .Form.Content }}</textarea>
			<button class="btn btn-success" type="submit">Create Publication</button>
		</form>
	{{ end }}

	{{ range .Publications }}
		<div class="card">
			<div class="tab-header">
				<h3><a href="publications/{{ .ID }}">{{ .Title }}</a></h3>
				<span class="badge" style="background-color: {{ StatusColor .Status }}">{{ StatusLabel .Status }}</span>
			</div>
			<p>Author: {{ $.AuthorName . }}</p>
			<p>{{ Excerpt .Content }}</p>
			{{ with .Author }}
				<p><strong>Author Details:</strong> {{ .Email }}</p>
			{{ end }}
			<form method="get" action="publications/{{ .ID }}/status">
				{{ range $.Actions . }}
					<button class="btn btn-{{ .Style }}" type="submit" name="to" value="{{ .Target }}">{{ .Label }}</button>
				{{ end }}
			</form>
			<div class="meta">
				<span>ID: {{ .ID }}</span>
				<span>{{ $.FormatDate .CreatedAt }}</span>
			</div>
		</div>
	{{ else }}
		<div class="empty">
			<p>No publications found. Create your first publication!</p>
		</div>
	{{ end }}

	{{ with .Dialog }}
		{{ $dialog := . }}
		<div class="modal-overlay">
			<div class="modal">
				<h3>Change Publication Status</h3>
				<p>New status: <span class="badge" style="background-color: {{ StatusColor .NewStatus }}">{{ StatusLabel .NewStatus }}</span></p>
				{{ with $.Err }}
					<div class="alert alert-danger" role="alert">{{ . }}</div>
				{{ end }}
				<form method="post" action="publications/{{ .PublicationID }}/status">
					<input type="hidden" name="to" value="{{ .NewStatus }}">
					{{ range .Fields }}
						{{ if .Multiline }}
							<textarea class="form-control" name="{{ .Name }}" placeholder="{{ .Placeholder }}" rows="4" {{ if .Required }}required{{ end }}>{{ $dialog.Value .Name }}</textarea>
						{{ else }}
							<input class="form-control" type="text" name="{{ .Name }}" placeholder="{{ .Placeholder }}" value="{{ $dialog.Value .Name }}" {{ if .Required }}required{{ end }}>
						{{ end }}
					{{ end }}
					<button class="btn btn-success" type="submit">Confirm</button>
					<a class="btn btn-primary" href="publications">Cancel</a>
				</form>
			</div>
		</div>
	{{ end }}`)

type publicationsData struct {
	*context
	*core.PublicationWorkflow
}

func publications(w http.ResponseWriter, req *http.Request, ctx *context, params httprouter.Params) error {

	var wf = ctx.console.NewPublicationWorkflow()

	if req.Method == http.MethodPost {

		var form = core.PublicationForm{
			Title:    req.PostFormValue("title"),
			Content:  req.PostFormValue("content"),
			AuthorID: req.PostFormValue("authorId"),
		}

		if err := wf.Submit(req.Context(), form); err == nil {
			ctx.Success("publication %s has been created", form.Input().Title)
			ctx.SeeOther("/publications")
			return nil
		}
		var submitErr = wf.Err
		wf.Load(req.Context())
		wf.Err = submitErr
	} else {
		wf.Load(req.Context())
		wf.ShowForm = req.URL.Query().Get("new") != ""
	}

	return publicationsTmpl.Execute(w, &publicationsData{
		context:             ctx,
		PublicationWorkflow: wf,
	})
}
