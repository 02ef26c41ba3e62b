package mcp

import (
	"context"

	"github.com/torqueware/assist/internal/core/domain"
)

// mockAssistant is a mock implementation of driving.Assistant.
type mockAssistant struct {
	result   *domain.AnswerResult
	receipt  *domain.TicketReceipt
	err      error
	question string
	request  domain.TicketRequest
}

func (m *mockAssistant) Answer(_ context.Context, question string, _ []domain.ChatMessage) (*domain.AnswerResult, error) {
	m.question = question
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

func (m *mockAssistant) SubmitTicket(_ context.Context, req domain.TicketRequest) (*domain.TicketReceipt, error) {
	m.request = req
	if m.err != nil {
		return nil, m.err
	}
	return m.receipt, nil
}

// mockTracker is a mock implementation of driven.TicketTracker.
type mockTracker struct {
	tickets []domain.Ticket
	err     error
	limit   int
}

func (m *mockTracker) Create(_ context.Context, req domain.TicketRequest) (*domain.Ticket, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Ticket{ID: 1, Title: req.Summary, State: domain.TicketStateOpen}, nil
}

func (m *mockTracker) List(_ context.Context, limit int) ([]domain.Ticket, error) {
	m.limit = limit
	if m.err != nil {
		return nil, m.err
	}
	if limit > len(m.tickets) {
		limit = len(m.tickets)
	}
	return m.tickets[:limit], nil
}

func (m *mockTracker) Close(_ context.Context, _ int) error {
	return m.err
}
