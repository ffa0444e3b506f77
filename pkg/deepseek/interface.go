package deepseek

import "context"

// IDeepSeek defines the interface for the DeepSeek LLM client
type IDeepSeek interface {
	// GenerateContent sends a chat completion request to the DeepSeek API
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Model returns the model being used
	Model() string
}
