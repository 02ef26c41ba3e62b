package cli

import (
	"context"
	"fmt"

	"github.com/torqueware/assist/internal/adapters/driven/storage/memory"
	"github.com/torqueware/assist/internal/config"
	"github.com/torqueware/assist/internal/core/domain"
)

// mockAssistant implements driving.Assistant for command tests.
type mockAssistant struct {
	result    *domain.AnswerResult
	receipt   *domain.TicketReceipt
	err       error
	questions []string
	requests  []domain.TicketRequest
}

func (m *mockAssistant) Answer(_ context.Context, question string, _ []domain.ChatMessage) (*domain.AnswerResult, error) {
	m.questions = append(m.questions, question)
	if m.err != nil {
		return nil, m.err
	}
	if m.result != nil {
		return m.result, nil
	}
	return &domain.AnswerResult{Intent: domain.IntentGeneral, Answer: "mock answer"}, nil
}

func (m *mockAssistant) SubmitTicket(_ context.Context, req domain.TicketRequest) (*domain.TicketReceipt, error) {
	m.requests = append(m.requests, req)
	if m.err != nil {
		return nil, m.err
	}
	if m.receipt != nil {
		return m.receipt, nil
	}
	return &domain.TicketReceipt{Created: true, URL: "https://example.com/issues/1"}, nil
}

// mockIndexer implements driving.Indexer for command tests.
type mockIndexer struct {
	err    error
	builds int
	forces []bool
}

func (m *mockIndexer) Build(_ context.Context, force bool) error {
	m.builds++
	m.forces = append(m.forces, force)
	return m.err
}

// mockTracker implements driven.TicketTracker for command tests.
type mockTracker struct {
	tickets []domain.Ticket
	err     error
	closed  []int
	created []domain.TicketRequest
}

func (m *mockTracker) Create(_ context.Context, req domain.TicketRequest) (*domain.Ticket, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.created = append(m.created, req)
	return &domain.Ticket{
		ID:    len(m.created),
		Title: req.Summary,
		URL:   fmt.Sprintf("https://example.com/issues/%d", len(m.created)),
		State: domain.TicketStateOpen,
	}, nil
}

func (m *mockTracker) List(_ context.Context, limit int) ([]domain.Ticket, error) {
	if m.err != nil {
		return nil, m.err
	}
	if limit > len(m.tickets) {
		limit = len(m.tickets)
	}
	return m.tickets[:limit], nil
}

func (m *mockTracker) Close(_ context.Context, id int) error {
	if m.err != nil {
		return m.err
	}
	m.closed = append(m.closed, id)
	return nil
}

// setupTestServices installs mock services and a fixed config, and
// returns a cleanup that restores the previous wiring.
func setupTestServices() func() {
	oldCfg := cfg
	oldAssistant := assistantService
	oldIndexer := indexerService
	oldTracker := ticketTracker
	oldHistory := historyStore

	cfg = &config.Config{CorpusDir: "data", IndexDir: "vectorstore"}
	assistantService = &mockAssistant{}
	indexerService = &mockIndexer{}
	ticketTracker = &mockTracker{}
	historyStore = memory.NewHistoryStore()

	return func() {
		cfg = oldCfg
		assistantService = oldAssistant
		indexerService = oldIndexer
		ticketTracker = oldTracker
		historyStore = oldHistory
	}
}
