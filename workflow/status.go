package workflow

import (
	"fmt"
	"strings"
)

// A Status is the editorial state of a publication, as reported by the publications backend.
type Status string

const (
	Draft           Status = "DRAFT"
	InReview        Status = "IN_REVIEW"
	Approved        Status = "APPROVED"
	Published       Status = "PUBLISHED"
	Rejected        Status = "REJECTED"
	RequiresChanges Status = "REQUIRES_CHANGES"
)

// All lists the known states in pipeline order.
var All = []Status{Draft, InReview, Approved, Published, Rejected, RequiresChanges}

// UnknownColor is used for states which are not in the color table.
const UnknownColor = "#999"

var colors = map[Status]string{
	Draft:           "#757575",
	InReview:        "#ff9800",
	Approved:        "#4caf50",
	Published:       "#2196f3",
	Rejected:        "#f44336",
	RequiresChanges: "#ff5722",
}

// Parse returns the known Status with the given name. Surrounding whitespace is ignored.
func Parse(s string) (Status, error) {
	var status = Status(strings.TrimSpace(s))
	if !status.Known() {
		return "", fmt.Errorf("unknown publication status %q", s)
	}
	return status, nil
}

func (s Status) Known() bool {
	_, ok := colors[s]
	return ok
}

// Terminal returns true if no transition is offered from s.
func (s Status) Terminal() bool {
	return len(Actions(s)) == 0
}

// Color returns the badge color of s.
func (s Status) Color() string {
	if c, ok := colors[s]; ok {
		return c
	}
	return UnknownColor
}

// Label returns the human readable name, e.g. "IN REVIEW".
func (s Status) Label() string {
	return strings.ReplaceAll(string(s), "_", " ")
}

func (s Status) String() string {
	return string(s)
}
