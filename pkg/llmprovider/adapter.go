package llmprovider

import (
	"context"

	openai "github.com/sashabaranov/go-openai"

	"github.com/nadavsuissa/EmailManager-sub000/pkg/deepseek"
	"github.com/nadavsuissa/EmailManager-sub000/pkg/gemini"
)

// --- OpenAI ---

// OpenAIAdapter adapts the go-openai client to the Provider interface.
type OpenAIAdapter struct {
	client *openai.Client
	model  string
}

// NewOpenAIAdapter wraps a go-openai client.
func NewOpenAIAdapter(client *openai.Client, model string) *OpenAIAdapter {
	return &OpenAIAdapter{client: client, model: model}
}

func (a *OpenAIAdapter) Name() string  { return "openai" }
func (a *OpenAIAdapter) Model() string { return a.model }

func (a *OpenAIAdapter) Complete(ctx context.Context, req *Request) (*Response, error) {
	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if req.SystemPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.SystemPrompt,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.UserPrompt,
	})

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       a.model,
		Messages:    messages,
		Temperature: float32(req.Temperature),
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, &ProviderError{Provider: a.Name(), Err: err}
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return nil, &ProviderError{Provider: a.Name(), Err: ErrEmptyCompletion}
	}

	return &Response{
		Text:         resp.Choices[0].Message.Content,
		ProviderName: a.Name(),
		ModelName:    a.model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// --- Gemini ---

// GeminiAdapter adapts the gemini HTTP client to the Provider interface.
type GeminiAdapter struct {
	client *gemini.Client
}

// NewGeminiAdapter wraps a gemini client.
func NewGeminiAdapter(client *gemini.Client) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

func (a *GeminiAdapter) Name() string  { return "gemini" }
func (a *GeminiAdapter) Model() string { return a.client.Model() }

func (a *GeminiAdapter) Complete(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := gemini.GenerateRequest{
		Contents: []gemini.Content{
			{Role: "user", Parts: []gemini.Part{{Text: req.UserPrompt}}},
		},
		GenerationConfig: &gemini.GenerationConfig{
			Temperature:     req.Temperature,
			MaxOutputTokens: req.MaxTokens,
		},
	}
	if req.SystemPrompt != "" {
		geminiReq.SystemInstruction = &gemini.Content{
			Parts: []gemini.Part{{Text: req.SystemPrompt}},
		}
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, &ProviderError{Provider: a.Name(), Err: err}
	}

	text := resp.Text()
	if text == "" {
		return nil, &ProviderError{Provider: a.Name(), Err: ErrEmptyCompletion}
	}

	return &Response{
		Text:         text,
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage:        &Usage{},
	}, nil
}

// --- DeepSeek ---

// DeepSeekAdapter adapts the deepseek client to the Provider interface.
type DeepSeekAdapter struct {
	client *deepseek.Client
}

// NewDeepSeekAdapter wraps a deepseek client.
func NewDeepSeekAdapter(client *deepseek.Client) *DeepSeekAdapter {
	return &DeepSeekAdapter{client: client}
}

func (a *DeepSeekAdapter) Name() string  { return "deepseek" }
func (a *DeepSeekAdapter) Model() string { return a.client.Model() }

func (a *DeepSeekAdapter) Complete(ctx context.Context, req *Request) (*Response, error) {
	messages := make([]deepseek.Message, 0, 2)
	if req.SystemPrompt != "" {
		messages = append(messages, deepseek.Message{Role: "system", Content: req.SystemPrompt})
	}
	messages = append(messages, deepseek.Message{Role: "user", Content: req.UserPrompt})

	resp, err := a.client.ChatCompletion(ctx, &deepseek.Request{
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, &ProviderError{Provider: a.Name(), Err: err}
	}

	text := resp.Text()
	if text == "" {
		return nil, &ProviderError{Provider: a.Name(), Err: ErrEmptyCompletion}
	}

	return &Response{
		Text:         text,
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}
