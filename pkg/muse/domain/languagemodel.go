package domain

import "context"

// LanguageModel a generic interface for a hosted large language model (LLM).
type LanguageModel interface {
	// Name the name of the model. Useful for debugging and attribution.
	Name() string
	// Complete sends a single system+user prompt pair and waits for the reply. Fails with *ProviderError on
	// network/auth/rate-limit failures and with *MalformedResponseError if the reply has no usable content.
	Complete(ctx context.Context, systemPrompt, userPrompt string, options CompleteOptions) (*Completion, error)
}

// ToolDesc describes a function the model may call instead of replying with text.
type ToolDesc struct {
	Name        string
	Description string
	// Parameters JSON Schema of the arguments object.
	Parameters any
}

// ToolCall a tool invocation requested by the model.
type ToolCall struct {
	Name string
	// Arguments JSON-encoded arguments object.
	Arguments string
}

type Completion struct {
	Text      string
	ToolCalls []ToolCall
}

// ToolCall returns the first call of the tool named `name`, if any.
func (c *Completion) ToolCall(name string) (ToolCall, bool) {
	for _, toolCall := range c.ToolCalls {
		if toolCall.Name == name {
			return toolCall, true
		}
	}
	return ToolCall{}, false
}
