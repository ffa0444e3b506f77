package llmprovider

import (
	"context"
	"errors"
	"fmt"

	"syllabus-extraction/pkg/deepseek"
	"syllabus-extraction/pkg/gemini"
)

// GeminiAdapter adapts pkg/gemini to the llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements the Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	resp, err := a.client.GenerateContent(ctx, &gemini.Request{
		SystemInstruction: req.SystemInstruction,
		Prompt:            req.Prompt,
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	})
	if err != nil {
		var apiErr *gemini.APIError
		if errors.As(err, &apiErr) {
			return nil, &ProviderError{Provider: a.Name(), Err: fmt.Errorf("%w: %v", ErrUpstream, err)}
		}
		return nil, &ProviderError{Provider: a.Name(), Err: fmt.Errorf("%w: %v", ErrUnavailable, err)}
	}
	if resp.Text == "" {
		return nil, &ProviderError{Provider: a.Name(), Err: fmt.Errorf("%w: empty response", ErrUnavailable)}
	}

	return &Response{
		Text:         resp.Text,
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns the provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns the model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// DeepSeekAdapter adapts pkg/deepseek to the llmprovider.Provider interface
type DeepSeekAdapter struct {
	client deepseek.IDeepSeek
}

// NewDeepSeekAdapter creates a new DeepSeek adapter
func NewDeepSeekAdapter(client deepseek.IDeepSeek) *DeepSeekAdapter {
	return &DeepSeekAdapter{client: client}
}

// GenerateContent implements the Provider interface
func (a *DeepSeekAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	resp, err := a.client.GenerateContent(ctx, &deepseek.Request{
		SystemInstruction: req.SystemInstruction,
		Prompt:            req.Prompt,
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	})
	if err != nil {
		var apiErr *deepseek.APIError
		if errors.As(err, &apiErr) {
			return nil, &ProviderError{Provider: a.Name(), Err: fmt.Errorf("%w: %v", ErrUpstream, err)}
		}
		return nil, &ProviderError{Provider: a.Name(), Err: fmt.Errorf("%w: %v", ErrUnavailable, err)}
	}
	if resp.Text == "" {
		return nil, &ProviderError{Provider: a.Name(), Err: fmt.Errorf("%w: empty response", ErrUnavailable)}
	}

	return &Response{
		Text:         resp.Text,
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns the provider name
func (a *DeepSeekAdapter) Name() string {
	return "deepseek"
}

// Model returns the model name
func (a *DeepSeekAdapter) Model() string {
	return a.client.Model()
}
