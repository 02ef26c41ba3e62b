package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/torqueware/assist/internal/core/domain"
)

// AnswerInput is the input schema for the answer_question tool.
type AnswerInput struct {
	Question string `json:"question" jsonschema:"the user's support question"`
}

// AnswerOutput is the output schema for the answer_question tool.
type AnswerOutput struct {
	Intent            string `json:"intent"`
	Answer            string `json:"answer"`
	NeedsConfirmation bool   `json:"needs_confirmation"`
}

// SubmitTicketInput is the input schema for the submit_ticket tool.
type SubmitTicketInput struct {
	Name        string `json:"name" jsonschema:"user full name"`
	Email       string `json:"email" jsonschema:"user email address"`
	Summary     string `json:"summary" jsonschema:"short issue title"`
	Description string `json:"description" jsonschema:"detailed issue description"`
}

// SubmitTicketOutput is the output schema for the submit_ticket tool.
type SubmitTicketOutput struct {
	Created bool   `json:"created"`
	URL     string `json:"url"`
}

// ListTicketsInput is the input schema for the list_tickets tool.
type ListTicketsInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"maximum number of tickets to return (default 5)"`
}

// ListTicketsOutput is the output schema for the list_tickets tool.
type ListTicketsOutput struct {
	Tickets []TicketOutput `json:"tickets"`
	Count   int            `json:"count"`
}

// TicketOutput represents a single ticket.
type TicketOutput struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
	State string `json:"state"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "answer_question",
		Description: "Answer a customer support question from the indexed vehicle documentation",
	}, s.handleAnswer)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "submit_ticket",
		Description: "Create a support ticket from the user's details",
	}, s.handleSubmitTicket)

	if s.ports.Tracker != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "list_tickets",
			Description: "List recent open support tickets",
		}, s.handleListTickets)
	}
}

// handleAnswer handles the answer_question tool invocation.
func (s *Server) handleAnswer(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AnswerInput,
) (*mcp.CallToolResult, AnswerOutput, error) {
	result, err := s.ports.Assistant.Answer(ctx, input.Question, nil)
	if err != nil {
		return nil, AnswerOutput{}, err
	}
	return nil, AnswerOutput{
		Intent:            string(result.Intent),
		Answer:            result.Answer,
		NeedsConfirmation: result.NeedsConfirmation,
	}, nil
}

// handleSubmitTicket handles the submit_ticket tool invocation.
func (s *Server) handleSubmitTicket(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SubmitTicketInput,
) (*mcp.CallToolResult, SubmitTicketOutput, error) {
	receipt, err := s.ports.Assistant.SubmitTicket(ctx, domain.TicketRequest{
		Name:        input.Name,
		Email:       input.Email,
		Summary:     input.Summary,
		Description: input.Description,
	})
	if err != nil {
		return nil, SubmitTicketOutput{}, err
	}
	return nil, SubmitTicketOutput{
		Created: receipt.Created,
		URL:     receipt.URL,
	}, nil
}

// handleListTickets handles the list_tickets tool invocation.
func (s *Server) handleListTickets(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListTicketsInput,
) (*mcp.CallToolResult, ListTicketsOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 5
	}

	tickets, err := s.ports.Tracker.List(ctx, limit)
	if err != nil {
		return nil, ListTicketsOutput{}, err
	}

	output := ListTicketsOutput{
		Tickets: make([]TicketOutput, len(tickets)),
		Count:   len(tickets),
	}
	for i := range tickets {
		output.Tickets[i] = TicketOutput{
			ID:    tickets[i].ID,
			Title: tickets[i].Title,
			URL:   tickets[i].URL,
			State: tickets[i].State,
		}
	}

	return nil, output, nil
}
