package core

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/wansing/editorial/gateway"
	"github.com/wansing/editorial/workflow"
)

// ErrRequired is returned by form validation. It is the same error as in the status dialog.
var ErrRequired = workflow.ErrRequired

// AuthorForm holds the raw values of the "Create Author" form.
type AuthorForm struct {
	FirstName    string
	LastName     string
	Email        string
	Organization string
	Biography    string
}

// Validate checks that first name, last name and email are not empty.
func (f AuthorForm) Validate() error {
	for _, field := range []struct{ value, label string }{
		{f.FirstName, "First Name"},
		{f.LastName, "Last Name"},
		{f.Email, "Email"},
	} {
		if strings.TrimSpace(field.value) == "" {
			return fmt.Errorf("%w: %s", ErrRequired, field.label)
		}
	}
	return nil
}

// Input returns the trimmed form values as a create request body.
func (f AuthorForm) Input() gateway.AuthorInput {
	return gateway.AuthorInput{
		FirstName:    strings.TrimSpace(f.FirstName),
		LastName:     strings.TrimSpace(f.LastName),
		Email:        strings.TrimSpace(f.Email),
		Organization: strings.TrimSpace(f.Organization),
		Biography:    strings.TrimSpace(f.Biography),
	}
}

// AuthorDirectory is the state of the authors page.
type AuthorDirectory struct {
	Authors  []gateway.Author
	Err      string // shown as a banner, empty if there is no error
	ShowForm bool
	Form     AuthorForm

	authors AuthorService
}

// Load replaces the author list with the first page from the backend.
// On failure, the list is emptied and Err is set.
func (d *AuthorDirectory) Load(ctx context.Context) {
	d.Err = ""
	page, err := d.authors.List(ctx, 0, ListSize)
	if err != nil {
		log.Printf("error loading authors: %v", err)
		d.Authors = nil
		d.Err = gateway.Message(err, "Failed to load authors")
		return
	}
	d.Authors = page.Content
}

// Submit creates an author. On success, the form is reset and hidden, and the caller should reload the list.
// On failure, the form stays open with the entered values and Err is set.
func (d *AuthorDirectory) Submit(ctx context.Context, form AuthorForm) error {
	d.Err = ""
	d.Form = form
	d.ShowForm = true

	if err := form.Validate(); err != nil {
		d.Err = err.Error()
		return err
	}

	author, err := d.authors.Create(ctx, form.Input())
	if err != nil {
		log.Printf("error creating author: %v", err)
		d.Err = gateway.Message(err, "Failed to create author")
		return err
	}

	log.Printf("created author %d", author.ID)
	d.Form = AuthorForm{}
	d.ShowForm = false
	return nil
}

// AuthorProfile is the state of the author detail page.
type AuthorProfile struct {
	Author       *gateway.Author
	Publications []gateway.Publication
	Err          string
}

// LoadAuthorProfile fetches an author and their publications.
// A failing publication list only sets Err, while a failing author lookup is returned.
func (c *Console) LoadAuthorProfile(ctx context.Context, id int64) (*AuthorProfile, error) {
	author, err := c.Authors.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	var profile = &AuthorProfile{
		Author: author,
	}
	page, err := c.Publications.ListByAuthor(ctx, id, 0, ListSize)
	if err != nil {
		log.Printf("error loading publications of author %d: %v", id, err)
		profile.Err = gateway.Message(err, "Failed to load publications")
		return profile, nil
	}
	profile.Publications = page.Content
	return profile, nil
}
