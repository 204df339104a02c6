package core

import (
	"context"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/alexedwards/scs/v2/memstore"
	"github.com/wansing/editorial/gateway"
	"github.com/wansing/editorial/workflow"
)

// ListSize is the page size for all list requests. The console shows the first page only.
const ListSize = 100

// AuthorService is implemented by gateway.Authors.
type AuthorService interface {
	Create(ctx context.Context, input gateway.AuthorInput) (*gateway.Author, error)
	Get(ctx context.Context, id int64) (*gateway.Author, error)
	List(ctx context.Context, page, size int) (*gateway.Page[gateway.Author], error)
}

// PublicationService is implemented by gateway.Publications.
type PublicationService interface {
	Create(ctx context.Context, input gateway.PublicationInput) (*gateway.Publication, error)
	Get(ctx context.Context, id int64) (*gateway.Publication, error)
	List(ctx context.Context, page, size int) (*gateway.Page[gateway.Publication], error)
	ListByAuthor(ctx context.Context, authorID int64, page, size int) (*gateway.Page[gateway.Publication], error)
	ChangeStatus(ctx context.Context, id int64, status workflow.Status) (*gateway.Publication, error)
}

type Console struct {
	Authors        AuthorService
	Publications   PublicationService
	SessionManager *scs.SessionManager
}

// Init creates the session manager. If sessionStore is nil, sessions are kept in memory.
func (c *Console) Init(sessionStore scs.Store, cookiePath string) {

	if sessionStore == nil {
		sessionStore = memstore.New()
	}

	c.SessionManager = scs.New()
	c.SessionManager.Store = sessionStore
	c.SessionManager.Cookie.Name = "editorial_session"
	c.SessionManager.Cookie.Path = cookiePath + "/"         // 'The default value is "/". Passing the empty string "" will result in it being set to the path that the cookie was issued from.'
	c.SessionManager.Cookie.Persist = false                 // don't store cookie across browser sessions
	c.SessionManager.Cookie.SameSite = http.SameSiteLaxMode // good CSRF protection if HTTP GET doesn't modify anything
	c.SessionManager.Cookie.Secure = false                  // else running on localhost or behind a http proxy fails
	c.SessionManager.IdleTimeout = 1 * time.Hour
	c.SessionManager.Lifetime = 12 * time.Hour
}

// NewAuthorDirectory returns an empty AuthorDirectory.
func (c *Console) NewAuthorDirectory() *AuthorDirectory {
	return &AuthorDirectory{
		authors: c.Authors,
	}
}

// NewPublicationWorkflow returns an empty PublicationWorkflow.
func (c *Console) NewPublicationWorkflow() *PublicationWorkflow {
	return &PublicationWorkflow{
		authors:      c.Authors,
		publications: c.Publications,
	}
}
