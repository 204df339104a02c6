package gateway

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/wansing/editorial/workflow"
)

// Author is an author as returned by the authors backend.
type Author struct {
	ID           int64     `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	Biography    string    `json:"biography,omitempty"`
	Organization string    `json:"organization,omitempty"`
	Active       bool      `json:"active"`
	CreatedAt    Timestamp `json:"createdAt"`
	UpdatedAt    Timestamp `json:"updatedAt"`
}

// Name returns "FirstName LastName".
func (a Author) Name() string {
	return a.FirstName + " " + a.LastName
}

// AuthorInput is the request body for creating or updating an author.
type AuthorInput struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	Biography    string `json:"biography,omitempty"`
	Organization string `json:"organization,omitempty"`
}

// AuthorInfo is the author snapshot which the publications backend may embed into a publication.
type AuthorInfo struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

func (a AuthorInfo) Name() string {
	return a.FirstName + " " + a.LastName
}

// Publication is a publication as returned by the publications backend.
type Publication struct {
	ID              int64           `json:"id"`
	Title           string          `json:"title"`
	Content         string          `json:"content"`
	AuthorID        int64           `json:"authorId"`
	Status          workflow.Status `json:"status"`
	EditorName      string          `json:"editorName,omitempty"`
	ReviewComments  string          `json:"reviewComments,omitempty"`
	RejectionReason string          `json:"rejectionReason,omitempty"`
	CreatedAt       Timestamp       `json:"createdAt"`
	UpdatedAt       Timestamp       `json:"updatedAt"`
	Author          *AuthorInfo     `json:"author,omitempty"`
}

// PublicationInput is the request body for creating a publication. The backend assigns the initial status.
type PublicationInput struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	AuthorID int64  `json:"authorId"`
}

// Page is a page of a paged list response. The console only relies on Content.
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Number        int   `json:"number"`
	Size          int   `json:"size"`
}

// Timestamp accepts RFC 3339 and zone-less ISO 8601 date-times, which are interpreted in the local time zone.
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05", // fractional seconds are accepted when parsing
	"2006-01-02",
}

func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		ts.Time = time.Time{}
		return nil
	}
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("timestamp %s: %w", data, err)
	}
	if s == "" {
		ts.Time = time.Time{}
		return nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			ts.Time = t
			return nil
		}
	}
	return fmt.Errorf("timestamp %q: unknown format", s)
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if ts.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(ts.Format(time.RFC3339Nano))
}
