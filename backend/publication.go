package backend

import (
	"log"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/wansing/editorial/gateway"
	"github.com/wansing/editorial/workflow"
)

var publicationTmpl = tmpl(`
	<div class="tab-header">
		<h2>{{ .Publication.Title }}</h2>
		<span class="badge" style="background-color: {{ StatusColor .Publication.Status }}">{{ StatusLabel .Publication.Status }}</span>
	</div>

	<div class="card">
		<p>Author: <a href="authors/{{ .Publication.AuthorID }}">{{ .AuthorName }}</a></p>
		{{ Markdown .Publication.Content }}
		<div class="meta">
			<span>ID: {{ .Publication.ID }}</span>
			<span>{{ .FormatDate .Publication.CreatedAt }}</span>
		</div>
	</div>

	{{ with .Publication.EditorName }}
		<p><strong>Editor:</strong> {{ . }}</p>
	{{ end }}
	{{ with .Publication.ReviewComments }}
		<p><strong>Review Comments:</strong> {{ . }}</p>
	{{ end }}
	{{ with .Publication.RejectionReason }}
		<p><strong>Rejection Reason:</strong> {{ . }}</p>
	{{ end }}

	<form method="get" action="publications/{{ .Publication.ID }}/status">
		{{ range .Actions }}
			<button class="btn btn-{{ .Style }}" type="submit" name="to" value="{{ .Target }}">{{ .Label }}</button>
		{{ end }}
		<a class="btn btn-secondary" href="publications">Back</a>
	</form>`)

type publicationData struct {
	*context
	Publication *gateway.Publication
	AuthorName  string
}

func (data *publicationData) Actions() []workflow.Action {
	return workflow.Actions(data.Publication.Status)
}

func publication(w http.ResponseWriter, req *http.Request, ctx *context, params httprouter.Params) error {

	id, err := strconv.ParseInt(params.ByName("id"), 10, 64)
	if err != nil {
		return err
	}

	pub, err := ctx.console.Publications.Get(req.Context(), id)
	if err != nil {
		return err
	}

	var wf = ctx.console.NewPublicationWorkflow()
	if author, err := ctx.console.Authors.Get(req.Context(), pub.AuthorID); err == nil {
		wf.Authors = append(wf.Authors, *author)
	} else {
		log.Printf("error loading author %d: %v", pub.AuthorID, err)
	}

	return publicationTmpl.Execute(w, &publicationData{
		context:     ctx,
		Publication: pub,
		AuthorName:  wf.AuthorName(*pub),
	})
}
