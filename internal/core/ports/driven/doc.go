// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them:
//
//   - Extractor: Reads a source document into per-page text
//   - EmbeddingService: Generates vector embeddings
//   - VectorIndex: Persists and searches embedded chunks
//   - LLMService: Chat completion with optional tool calls
//   - TicketTracker: Issue tracker operations (create, list, close)
//   - HistoryStore: Per-session chat history
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
