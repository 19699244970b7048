package llmprovider

import "context"

// Provider defines the interface for language-model providers. The service
// is treated as an opaque text-completion function: prompts in, text out.
// Prompt construction and response parsing belong to the caller.
type Provider interface {
	// Complete sends a completion request and returns the model text
	Complete(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "openai", "gemini")
	Name() string

	// Model returns the model being used
	Model() string
}

// Request represents a normalized completion request
type Request struct {
	SystemPrompt string
	UserPrompt   string
	Temperature  float64
	MaxTokens    int
}

// Response represents a normalized completion response
type Response struct {
	Text         string
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
