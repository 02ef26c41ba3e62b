package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/torqueware/assist/internal/core/domain"
	"github.com/torqueware/assist/internal/core/ports/driven"
	"github.com/torqueware/assist/internal/core/ports/driving"
	"github.com/torqueware/assist/internal/logger"
)

// fallbackAnswer is returned verbatim whenever the model's output
// violates the JSON schema the system prompt demands.
const fallbackAnswer = "Sorry, I had trouble understanding the request."

// defaultListLimit bounds ticket listings when the model omits one.
const defaultListLimit = 5

// assistantTools are the two actions the model may invoke directly.
// Ticket creation is deliberately absent; it always goes through the
// confirmation-and-form path instead.
var assistantTools = []driven.Tool{
	{
		Name:        "list_support_tickets",
		Description: "List recent open support tickets",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"limit": map[string]any{
					"type":        "integer",
					"description": "Maximum number of tickets to return",
				},
			},
		},
	},
	{
		Name:        "close_support_ticket",
		Description: "Close an existing support ticket",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"issue_id": map[string]any{
					"type":        "integer",
					"description": "Support ticket number",
				},
			},
			"required": []string{"issue_id"},
		},
	},
}

// AssistantService orchestrates one user turn: retrieve supporting
// chunks, invoke the model with the tool set, dispatch any ticket
// action it requested and normalise the output.
type AssistantService struct {
	retriever Retriever
	llm       driven.LLMService
	tracker   driven.TicketTracker
	topK      int
}

var _ driving.Assistant = (*AssistantService)(nil)

func NewAssistantService(
	retriever Retriever,
	llm driven.LLMService,
	tracker driven.TicketTracker,
	topK int,
) *AssistantService {
	if topK <= 0 {
		topK = DefaultTopK
	}
	return &AssistantService{
		retriever: retriever,
		llm:       llm,
		tracker:   tracker,
		topK:      topK,
	}
}

// Answer runs one user turn. Retrieval happens eagerly for every turn;
// the model decides from the system prompt whether the documents are
// relevant. The history is read by the boundary for display only and
// is not forwarded to the model.
func (s *AssistantService) Answer(ctx context.Context, question string, _ []domain.ChatMessage) (*domain.AnswerResult, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, fmt.Errorf("%w: question must not be empty", domain.ErrInvalidInput)
	}

	chunks, err := s.retriever.Search(ctx, question, s.topK)
	if err != nil {
		return nil, err
	}

	messages := []driven.ChatMessage{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: buildUserMessage(question, chunks)},
	}
	result, err := s.llm.Chat(ctx, messages, assistantTools, driven.ChatOptions{Temperature: 0})
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}

	if result.ToolCall != nil {
		return s.dispatchToolCall(ctx, result.ToolCall)
	}
	return parseAnswer(result.Content), nil
}

// SubmitTicket creates a ticket from the four form fields. Confirmation
// already happened at the boundary, so this is a direct tracker call.
func (s *AssistantService) SubmitTicket(ctx context.Context, req domain.TicketRequest) (*domain.TicketReceipt, error) {
	ticket, err := s.tracker.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	return &domain.TicketReceipt{Created: true, URL: ticket.URL}, nil
}

// dispatchToolCall executes the tracker action the model requested.
// Tracker failures propagate to the caller; only malformed arguments
// degrade to the fallback answer.
func (s *AssistantService) dispatchToolCall(ctx context.Context, call *driven.ToolCall) (*domain.AnswerResult, error) {
	switch call.Name {
	case "list_support_tickets":
		var args struct {
			Limit int `json:"limit"`
		}
		if len(call.Arguments) > 0 {
			if err := json.Unmarshal(call.Arguments, &args); err != nil {
				logger.Warn("malformed list_support_tickets arguments: %v", err)
				return fallbackResult(), nil
			}
		}
		if args.Limit <= 0 {
			args.Limit = defaultListLimit
		}
		tickets, err := s.tracker.List(ctx, args.Limit)
		if err != nil {
			return nil, err
		}
		return &domain.AnswerResult{
			Intent: domain.IntentTicketManagement,
			Answer: formatTickets(tickets),
		}, nil

	case "close_support_ticket":
		var args struct {
			IssueID int `json:"issue_id"`
		}
		if err := json.Unmarshal(call.Arguments, &args); err != nil || args.IssueID <= 0 {
			logger.Warn("malformed close_support_ticket arguments: %s", call.Arguments)
			return fallbackResult(), nil
		}
		if err := s.tracker.Close(ctx, args.IssueID); err != nil {
			return nil, err
		}
		return &domain.AnswerResult{
			Intent: domain.IntentTicketManagement,
			Answer: fmt.Sprintf("Ticket #%d has been closed.", args.IssueID),
		}, nil
	}

	logger.Warn("model requested unknown tool %q", call.Name)
	return fallbackResult(), nil
}

// buildUserMessage assembles the single user turn: the question plus a
// context block of retrieved chunks, or a sentinel when retrieval found
// nothing so the model cannot mistake absence for an empty document.
func buildUserMessage(question string, chunks []domain.RetrievedChunk) string {
	docs := "NO_DOCUMENTS_FOUND"
	if len(chunks) > 0 {
		blocks := make([]string, 0, len(chunks))
		for _, c := range chunks {
			blocks = append(blocks, fmt.Sprintf("[File: %s, Page: %d]\n%s", c.File, c.Page, c.Text))
		}
		docs = strings.Join(blocks, "\n\n")
	}
	return fmt.Sprintf("User question:\n%s\n\nDocuments:\n%s", question, docs)
}

// parseAnswer decodes the model's JSON reply. Any schema violation,
// from broken JSON to an unknown intent, yields the fixed fallback
// rather than surfacing raw model output to the user.
func parseAnswer(content string) *domain.AnswerResult {
	var result domain.AnswerResult
	if err := json.Unmarshal([]byte(stripCodeFence(content)), &result); err != nil {
		logger.Debug("unparseable model output: %v", err)
		return fallbackResult()
	}
	if !result.Intent.Valid() || result.Answer == "" {
		logger.Debug("model output violates schema: intent=%q", result.Intent)
		return fallbackResult()
	}
	return &result
}

// stripCodeFence unwraps a ```json ... ``` block if the model added one
// despite the prompt's ONLY-valid-JSON instruction.
func stripCodeFence(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(strings.TrimSpace(content), "```")
	return strings.TrimSpace(content)
}

func fallbackResult() *domain.AnswerResult {
	return &domain.AnswerResult{
		Intent: domain.IntentGeneral,
		Answer: fallbackAnswer,
	}
}

func formatTickets(tickets []domain.Ticket) string {
	if len(tickets) == 0 {
		return "There are no open support tickets."
	}
	lines := []string{"Here are the open support tickets:"}
	for _, t := range tickets {
		lines = append(lines, fmt.Sprintf("- #%d: %s (%s)", t.ID, t.Title, t.URL))
	}
	return strings.Join(lines, "\n")
}
