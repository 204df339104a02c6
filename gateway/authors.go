package gateway

import (
	"context"
	"fmt"
	"net/http"
)

// Authors is the handle for the authors backend.
type Authors struct {
	client
}

// NewAuthors creates a handle for the authors backend at baseURL, e.g. "http://localhost:8001/api".
func NewAuthors(baseURL string, opts ...Option) *Authors {
	return &Authors{
		client: newClient("authors", baseURL, opts...),
	}
}

// Create sends POST /authors.
func (a *Authors) Create(ctx context.Context, input AuthorInput) (*Author, error) {
	var author = &Author{}
	if err := a.do(ctx, http.MethodPost, "/authors", nil, input, author); err != nil {
		return nil, err
	}
	return author, nil
}

// Get sends GET /authors/{id}.
func (a *Authors) Get(ctx context.Context, id int64) (*Author, error) {
	var author = &Author{}
	if err := a.do(ctx, http.MethodGet, fmt.Sprintf("/authors/%d", id), nil, nil, author); err != nil {
		return nil, err
	}
	return author, nil
}

// List sends GET /authors?page=&size=. The page is zero-based.
func (a *Authors) List(ctx context.Context, page, size int) (*Page[Author], error) {
	var result = &Page[Author]{}
	if err := a.do(ctx, http.MethodGet, "/authors", pageQuery(page, size), nil, result); err != nil {
		return nil, err
	}
	return result, nil
}

// Update sends PUT /authors/{id}. The console does not offer editing authors.
func (a *Authors) Update(ctx context.Context, id int64, input AuthorInput) (*Author, error) {
	var author = &Author{}
	if err := a.do(ctx, http.MethodPut, fmt.Sprintf("/authors/%d", id), nil, input, author); err != nil {
		return nil, err
	}
	return author, nil
}

// Delete sends DELETE /authors/{id}. The console does not offer deleting authors.
func (a *Authors) Delete(ctx context.Context, id int64) error {
	return a.do(ctx, http.MethodDelete, fmt.Sprintf("/authors/%d", id), nil, nil, nil)
}
