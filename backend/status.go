package backend

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/wansing/editorial/workflow"
)

// status renders the publication list with the status dialog open (GET) or submits the dialog (POST).
func status(w http.ResponseWriter, req *http.Request, ctx *context, params httprouter.Params) error {

	id, err := strconv.ParseInt(params.ByName("id"), 10, 64)
	if err != nil {
		return err
	}

	var wf = ctx.console.NewPublicationWorkflow()

	if req.Method == http.MethodPost {

		target, err := workflow.Parse(req.PostFormValue("to"))
		if err != nil {
			ctx.Danger(err)
			ctx.SeeOther("/publications")
			return nil
		}

		var dialog = wf.OpenDialog(id, target)
		for _, field := range dialog.Fields() {
			dialog.Set(field.Name, req.PostFormValue(field.Name))
		}

		if err := wf.SubmitStatus(req.Context(), dialog); err == nil {
			ctx.Success("publication %d has been moved to %s", id, target.Label())
			ctx.SeeOther("/publications")
			return nil
		}
		var submitErr = wf.Err
		wf.Load(req.Context())
		wf.Err = submitErr
	} else {

		target, err := workflow.Parse(req.URL.Query().Get("to"))
		if err != nil {
			ctx.Danger(err)
			ctx.SeeOther("/publications")
			return nil
		}

		wf.Load(req.Context())
		wf.OpenDialog(id, target)
	}

	return publicationsTmpl.Execute(w, &publicationsData{
		context:             ctx,
		PublicationWorkflow: wf,
	})
}
