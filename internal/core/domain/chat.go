package domain

// Message roles in a chat session.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is a single turn in a session's append-only history.
// The history is owned by the session boundary; the assistant reads
// it but never mutates it.
type ChatMessage struct {
	// Role is either RoleUser or RoleAssistant.
	Role string

	// Content is the message text.
	Content string
}

// Intent is the classified purpose of a user turn.
type Intent string

// Known intents. Anything else from the model is a schema violation.
const (
	IntentGeneral          Intent = "general"
	IntentSupport          Intent = "support"
	IntentTicketManagement Intent = "ticket_management"
)

// Valid reports whether the intent is one the schema allows.
func (i Intent) Valid() bool {
	switch i {
	case IntentGeneral, IntentSupport, IntentTicketManagement:
		return true
	}
	return false
}

// AnswerResult is the outcome of one user turn.
type AnswerResult struct {
	// Intent is the classified purpose of the turn.
	Intent Intent `json:"intent"`

	// Answer is the assistant's reply text.
	Answer string `json:"answer"`

	// NeedsConfirmation is set when the assistant is asking the user
	// whether to open a support ticket. The surrounding boundary
	// renders the yes/no prompt and the ticket form.
	NeedsConfirmation bool `json:"needs_confirmation"`
}

// TicketReceipt is returned after a ticket is created via the form path.
type TicketReceipt struct {
	// Created is true on success.
	Created bool `json:"created"`

	// URL is the tracker's link to the new ticket.
	URL string `json:"url"`
}
