package workflow

import (
	"errors"
	"fmt"
	"strings"
)

var ErrRequired = errors.New("required field is empty")

// A Field is an input of the status dialog.
type Field struct {
	Name        string // form field name
	Placeholder string
	Multiline   bool
	Required    bool
}

const (
	FieldEditorName      = "editorName"
	FieldReviewComments  = "reviewComments"
	FieldRejectionReason = "rejectionReason"
)

var dialogFields = map[Status][]Field{
	InReview: {
		{Name: FieldEditorName, Placeholder: "Editor Name"},
	},
	Rejected: {
		{Name: FieldRejectionReason, Placeholder: "Rejection Reason", Multiline: true, Required: true},
	},
}

// A Dialog confirms a status change of one publication.
//
// EditorName, ReviewComments and RejectionReason are collected from the user,
// but the publications backend only receives the target status. See Transition.
type Dialog struct {
	PublicationID   int64
	NewStatus       Status
	EditorName      string
	ReviewComments  string
	RejectionReason string
}

// NewDialog returns an empty dialog which is pre-populated with the target status.
func NewDialog(publicationID int64, target Status) *Dialog {
	return &Dialog{
		PublicationID: publicationID,
		NewStatus:     target,
	}
}

// Fields returns the inputs shown for the target status.
func (d *Dialog) Fields() []Field {
	return dialogFields[d.NewStatus]
}

// Value returns the current value of the named field.
func (d *Dialog) Value(name string) string {
	switch name {
	case FieldEditorName:
		return d.EditorName
	case FieldReviewComments:
		return d.ReviewComments
	case FieldRejectionReason:
		return d.RejectionReason
	default:
		return ""
	}
}

// Set sets the named field. Unknown names are ignored.
func (d *Dialog) Set(name, value string) {
	switch name {
	case FieldEditorName:
		d.EditorName = value
	case FieldReviewComments:
		d.ReviewComments = value
	case FieldRejectionReason:
		d.RejectionReason = value
	}
}

// Validate checks the required fields of the target status. It does not check whether the transition is offered.
func (d *Dialog) Validate() error {
	if !d.NewStatus.Known() {
		return fmt.Errorf("unknown publication status %q", d.NewStatus)
	}
	for _, f := range d.Fields() {
		if f.Required && strings.TrimSpace(d.Value(f.Name)) == "" {
			return fmt.Errorf("%w: %s", ErrRequired, f.Placeholder)
		}
	}
	return nil
}

// Transition returns what is sent to the publications backend.
func (d *Dialog) Transition() (int64, Status) {
	return d.PublicationID, d.NewStatus
}
