package core

import (
	"context"
	"errors"
	"sync"

	"github.com/wansing/editorial/gateway"
	"github.com/wansing/editorial/workflow"
)

var errUnavailable = &gateway.APIError{Backend: "test", StatusCode: 500}

// in-memory backends

type fakeAuthors struct {
	mu        sync.Mutex
	authors   []gateway.Author
	listErr   error
	createErr error
}

func (f *fakeAuthors) Create(ctx context.Context, input gateway.AuthorInput) (*gateway.Author, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	var author = gateway.Author{
		ID:           int64(len(f.authors) + 1),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		Organization: input.Organization,
		Biography:    input.Biography,
		Active:       true,
	}
	f.authors = append(f.authors, author)
	return &author, nil
}

func (f *fakeAuthors) Get(ctx context.Context, id int64) (*gateway.Author, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.authors {
		if a.ID == id {
			return &a, nil
		}
	}
	return nil, &gateway.APIError{Backend: "authors", StatusCode: 404, Message: "Author not found"}
}

func (f *fakeAuthors) List(ctx context.Context, page, size int) (*gateway.Page[gateway.Author], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return &gateway.Page[gateway.Author]{Content: append([]gateway.Author(nil), f.authors...)}, nil
}

type statusChange struct {
	ID     int64
	Status workflow.Status
}

type fakePublications struct {
	mu        sync.Mutex
	pubs      []gateway.Publication
	listErr   error
	createErr error
	statusErr error
	changes   []statusChange
}

func (f *fakePublications) Create(ctx context.Context, input gateway.PublicationInput) (*gateway.Publication, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	var pub = gateway.Publication{
		ID:       int64(len(f.pubs) + 1),
		Title:    input.Title,
		Content:  input.Content,
		AuthorID: input.AuthorID,
		Status:   workflow.Draft,
	}
	f.pubs = append(f.pubs, pub)
	return &pub, nil
}

func (f *fakePublications) Get(ctx context.Context, id int64) (*gateway.Publication, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.pubs {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, &gateway.APIError{Backend: "publications", StatusCode: 404}
}

func (f *fakePublications) List(ctx context.Context, page, size int) (*gateway.Page[gateway.Publication], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return &gateway.Page[gateway.Publication]{Content: append([]gateway.Publication(nil), f.pubs...)}, nil
}

func (f *fakePublications) ListByAuthor(ctx context.Context, authorID int64, page, size int) (*gateway.Page[gateway.Publication], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	var result = &gateway.Page[gateway.Publication]{}
	for _, p := range f.pubs {
		if p.AuthorID == authorID {
			result.Content = append(result.Content, p)
		}
	}
	return result, nil
}

func (f *fakePublications) ChangeStatus(ctx context.Context, id int64, status workflow.Status) (*gateway.Publication, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.changes = append(f.changes, statusChange{id, status})
	if f.statusErr != nil {
		return nil, f.statusErr
	}
	for i := range f.pubs {
		if f.pubs[i].ID == id {
			f.pubs[i].Status = status
			var pub = f.pubs[i]
			return &pub, nil
		}
	}
	return nil, errors.New("not found")
}

func newTestConsole() (*Console, *fakeAuthors, *fakePublications) {
	var authors = &fakeAuthors{}
	var pubs = &fakePublications{}
	var console = &Console{
		Authors:      authors,
		Publications: pubs,
	}
	console.Init(nil, "")
	return console, authors, pubs
}
