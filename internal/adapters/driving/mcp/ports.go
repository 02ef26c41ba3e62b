package mcp

import (
	"github.com/torqueware/assist/internal/core/ports/driven"
	"github.com/torqueware/assist/internal/core/ports/driving"
)

// Ports aggregates the driving-side dependencies the MCP server needs.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Assistant answers questions and submits tickets.
	Assistant driving.Assistant

	// Tracker lists tickets directly, without a model round trip.
	Tracker driven.TicketTracker
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Assistant == nil {
		return ErrMissingAssistant
	}
	// Tracker is optional; the list_tickets tool is simply not
	// registered without it.
	return nil
}
