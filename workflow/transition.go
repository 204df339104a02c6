package workflow

// An Action is a transition which the console offers to the user.
//
// The publications backend is the authority on transitions. It may reject an offered one,
// and it may accept one which is not offered here.
type Action struct {
	Label  string
	Target Status
	Style  string // bootstrap button style without the leading "btn-"
}

var transitions = map[Status][]Action{
	Draft: {
		{Label: "Send to Review", Target: InReview, Style: "warning"},
	},
	InReview: {
		{Label: "Approve", Target: Approved, Style: "success"},
		{Label: "Reject", Target: Rejected, Style: "danger"},
	},
	Approved: {
		{Label: "Publish", Target: Published, Style: "success"},
	},
}

// Actions returns the transitions offered from the given status. It is empty for terminal and unknown states.
func Actions(from Status) []Action {
	var actions = transitions[from]
	var result = make([]Action, len(actions))
	copy(result, actions)
	return result
}

// Offered returns whether the console offers a transition from one status to another.
func Offered(from, to Status) bool {
	for _, a := range transitions[from] {
		if a.Target == to {
			return true
		}
	}
	return false
}
