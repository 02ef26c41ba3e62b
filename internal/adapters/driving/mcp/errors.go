// Package mcp provides an MCP (Model Context Protocol) server adapter for
// the support assistant. It lets MCP-compatible AI hosts answer questions
// from the indexed documentation and manage support tickets.
package mcp

import "errors"

// ErrMissingAssistant is returned when the assistant service is not provided.
var ErrMissingAssistant = errors.New("mcp: assistant service is required")
