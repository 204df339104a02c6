package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/wansing/editorial/workflow"
)

// Publications is the handle for the publications backend.
type Publications struct {
	client
}

// NewPublications creates a handle for the publications backend at baseURL, e.g. "http://localhost:8002/api".
func NewPublications(baseURL string, opts ...Option) *Publications {
	return &Publications{
		client: newClient("publications", baseURL, opts...),
	}
}

// Create sends POST /publications.
func (p *Publications) Create(ctx context.Context, input PublicationInput) (*Publication, error) {
	var pub = &Publication{}
	if err := p.do(ctx, http.MethodPost, "/publications", nil, input, pub); err != nil {
		return nil, err
	}
	return pub, nil
}

// Get sends GET /publications/{id}.
func (p *Publications) Get(ctx context.Context, id int64) (*Publication, error) {
	var pub = &Publication{}
	if err := p.do(ctx, http.MethodGet, fmt.Sprintf("/publications/%d", id), nil, nil, pub); err != nil {
		return nil, err
	}
	return pub, nil
}

// List sends GET /publications?page=&size=.
func (p *Publications) List(ctx context.Context, page, size int) (*Page[Publication], error) {
	var result = &Page[Publication]{}
	if err := p.do(ctx, http.MethodGet, "/publications", pageQuery(page, size), nil, result); err != nil {
		return nil, err
	}
	return result, nil
}

// ListByAuthor sends GET /publications/author/{authorId}?page=&size=.
func (p *Publications) ListByAuthor(ctx context.Context, authorID int64, page, size int) (*Page[Publication], error) {
	var result = &Page[Publication]{}
	if err := p.do(ctx, http.MethodGet, fmt.Sprintf("/publications/author/%d", authorID), pageQuery(page, size), nil, result); err != nil {
		return nil, err
	}
	return result, nil
}

// ChangeStatus sends PATCH /publications/{id}/status?status={status} without a body.
func (p *Publications) ChangeStatus(ctx context.Context, id int64, status workflow.Status) (*Publication, error) {
	var pub = &Publication{}
	var query = url.Values{"status": []string{string(status)}}
	if err := p.do(ctx, http.MethodPatch, fmt.Sprintf("/publications/%d/status", id), query, nil, pub); err != nil {
		return nil, err
	}
	return pub, nil
}
