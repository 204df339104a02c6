package core

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/wansing/editorial/gateway"
	"github.com/wansing/editorial/workflow"
)

// PublicationForm holds the raw values of the "Create Publication" form.
type PublicationForm struct {
	Title    string
	Content  string
	AuthorID string
}

// Validate checks that all fields are set and that AuthorID is a number.
func (f PublicationForm) Validate() error {
	for _, field := range []struct{ value, label string }{
		{f.Title, "Title"},
		{f.Content, "Content"},
		{f.AuthorID, "Author"},
	} {
		if strings.TrimSpace(field.value) == "" {
			return fmt.Errorf("%w: %s", ErrRequired, field.label)
		}
	}
	if _, err := strconv.ParseInt(strings.TrimSpace(f.AuthorID), 10, 64); err != nil {
		return fmt.Errorf("invalid author id: %q", f.AuthorID)
	}
	return nil
}

// Input returns the form values as a create request body. Call Validate first.
func (f PublicationForm) Input() gateway.PublicationInput {
	authorID, _ := strconv.ParseInt(strings.TrimSpace(f.AuthorID), 10, 64)
	return gateway.PublicationInput{
		Title:    strings.TrimSpace(f.Title),
		Content:  f.Content,
		AuthorID: authorID,
	}
}

// PublicationWorkflow is the state of the publications page.
type PublicationWorkflow struct {
	Publications []gateway.Publication
	Authors      []gateway.Author // for the author select and name resolution
	Err          string           // shown as a banner, empty if there is no error
	ShowForm     bool
	Form         PublicationForm
	Dialog       *workflow.Dialog // nil if closed

	authors      AuthorService
	publications PublicationService
}

// Load replaces the publication list and the author list with the first page of each backend.
// A failing publication list empties it and sets Err. A failing author list is only logged.
func (w *PublicationWorkflow) Load(ctx context.Context) {
	w.Err = ""
	page, err := w.publications.List(ctx, 0, ListSize)
	w.setPublications(page, err)
	w.loadAuthors(ctx)
}

// LoadByAuthor is like Load, but the publication list contains the publications of one author only.
func (w *PublicationWorkflow) LoadByAuthor(ctx context.Context, authorID int64) {
	w.Err = ""
	page, err := w.publications.ListByAuthor(ctx, authorID, 0, ListSize)
	w.setPublications(page, err)
	w.loadAuthors(ctx)
}

func (w *PublicationWorkflow) setPublications(page *gateway.Page[gateway.Publication], err error) {
	if err != nil {
		log.Printf("error loading publications: %v", err)
		w.Publications = nil
		w.Err = gateway.Message(err, "Failed to load publications")
		return
	}
	w.Publications = page.Content
}

func (w *PublicationWorkflow) loadAuthors(ctx context.Context) {
	page, err := w.authors.List(ctx, 0, ListSize)
	if err != nil {
		log.Printf("error loading authors: %v", err)
		w.Authors = nil
		return
	}
	w.Authors = page.Content
}

// Submit creates a publication. The backend assigns the DRAFT status.
// On success, the form is reset and hidden, and the caller should reload the list.
// On failure, the form stays open with the entered values and Err is set.
func (w *PublicationWorkflow) Submit(ctx context.Context, form PublicationForm) error {
	w.Err = ""
	w.Form = form
	w.ShowForm = true

	if err := form.Validate(); err != nil {
		w.Err = err.Error()
		return err
	}

	pub, err := w.publications.Create(ctx, form.Input())
	if err != nil {
		log.Printf("error creating publication: %v", err)
		w.Err = gateway.Message(err, "Failed to create publication")
		return err
	}

	log.Printf("created publication %d", pub.ID)
	w.Form = PublicationForm{}
	w.ShowForm = false
	return nil
}

// OpenDialog opens the status dialog for the transition of a publication to target.
func (w *PublicationWorkflow) OpenDialog(publicationID int64, target workflow.Status) *workflow.Dialog {
	w.Dialog = workflow.NewDialog(publicationID, target)
	return w.Dialog
}

// CloseDialog discards the dialog and its values.
func (w *PublicationWorkflow) CloseDialog() {
	w.Dialog = nil
}

// SubmitStatus sends the status change of the dialog to the backend.
// Only the publication id and the target status are transmitted.
// On success, the dialog is closed and the caller should reload the list.
// On failure, the dialog stays open and Err is set.
func (w *PublicationWorkflow) SubmitStatus(ctx context.Context, dialog *workflow.Dialog) error {
	w.Err = ""
	w.Dialog = dialog

	if err := dialog.Validate(); err != nil {
		w.Err = err.Error()
		return err
	}

	id, status := dialog.Transition()
	if _, err := w.publications.ChangeStatus(ctx, id, status); err != nil {
		log.Printf("error changing status of publication %d to %s: %v", id, status, err)
		w.Err = gateway.Message(err, "Failed to update publication status")
		return err
	}

	log.Printf("changed status of publication %d to %s", id, status)
	w.Dialog = nil
	return nil
}

// Publication returns the loaded publication with the given id.
func (w *PublicationWorkflow) Publication(id int64) (gateway.Publication, bool) {
	for _, pub := range w.Publications {
		if pub.ID == id {
			return pub, true
		}
	}
	return gateway.Publication{}, false
}

// AuthorName resolves the display name of the author of pub.
// It tries the loaded author list first, then the author snapshot embedded in pub.
func (w *PublicationWorkflow) AuthorName(pub gateway.Publication) string {
	for _, author := range w.Authors {
		if author.ID == pub.AuthorID {
			return author.Name()
		}
	}
	if pub.Author != nil {
		if name := strings.TrimSpace(pub.Author.Name()); name != "" {
			return name
		}
	}
	return fmt.Sprintf("Author #%d", pub.AuthorID)
}

// Actions returns the transitions offered for pub.
func (w *PublicationWorkflow) Actions(pub gateway.Publication) []workflow.Action {
	return workflow.Actions(pub.Status)
}
