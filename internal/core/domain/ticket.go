package domain

// Ticket states as reported by the tracker.
const (
	TicketStateOpen   = "open"
	TicketStateClosed = "closed"
)

// Labels applied to every ticket this system creates.
var TicketLabels = []string{"support", "ai-generated"}

// Ticket is a tracked support issue. The canonical copy lives in the
// external tracker; this system never caches it.
type Ticket struct {
	// ID is the tracker's issue number.
	ID int

	// Title is the issue title.
	Title string

	// URL is the human-facing issue link.
	URL string

	// State is TicketStateOpen or TicketStateClosed.
	State string
}

// TicketRequest holds the four fields the user supplies when opening
// a ticket via the form path.
type TicketRequest struct {
	Name        string
	Email       string
	Summary     string
	Description string
}
