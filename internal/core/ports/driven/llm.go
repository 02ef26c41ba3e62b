package driven

import (
	"context"
	"encoding/json"
)

// LLMService provides chat completion with optional tool calling.
type LLMService interface {
	// Chat sends a conversation to the model. When tools are offered the
	// model may answer with a tool call instead of text; exactly one of
	// ChatResult.Content and ChatResult.ToolCall is meaningful.
	Chat(ctx context.Context, messages []ChatMessage, tools []Tool, opts ChatOptions) (*ChatResult, error)

	// ModelName returns the name of the model being used.
	ModelName() string
}

// ChatMessage represents a single message in a conversation.
type ChatMessage struct {
	// Role is one of "system", "user", or "assistant".
	Role string

	// Content is the message text.
	Content string
}

// Tool describes a callable action offered to the model.
type Tool struct {
	// Name identifies the tool.
	Name string

	// Description tells the model when to call it.
	Description string

	// Parameters is a JSON Schema object describing the arguments.
	Parameters map[string]any
}

// ToolCall is the model's structured request to invoke a tool.
type ToolCall struct {
	// Name is the tool being invoked.
	Name string

	// Arguments is the raw JSON argument object.
	Arguments json.RawMessage
}

// ChatResult is the model's response to a Chat call.
type ChatResult struct {
	// Content is the model's text output, empty when a tool was called.
	Content string

	// ToolCall is non-nil when the model chose to invoke a tool.
	ToolCall *ToolCall
}

// ChatOptions configures chat behaviour.
type ChatOptions struct {
	// MaxTokens is the maximum number of tokens to generate.
	MaxTokens int

	// Temperature controls randomness (0.0 = deterministic, 1.0 = creative).
	Temperature float64
}
