package provider

import (
	"context"
	"net/http"
)

const (
	KindGemini = "gemini"
	KindOpenAI = "openai"

	DefaultGeminiModel = "gemini-2.5-flash"
	DefaultOpenAIModel = "gpt-4.1-mini"
)

// Provider defines the minimal interface for LLM completion.
type Provider interface {
	Complete(ctx context.Context, req Request) (string, error)
	Validate() error
}

// Request is one completion call: a prompt plus optional role instructions
// that are sent as the system message.
type Request struct {
	// Name labels the call in logs (e.g. "dietary_expert").
	Name         string
	Instructions []string
	Prompt       string
}

type options struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

type Option func(*options)

func WithAPIKey(apiKey string) Option {
	return func(o *options) {
		o.apiKey = apiKey
	}
}

func WithModel(model string) Option {
	return func(o *options) {
		o.model = model
	}
}

// WithBaseURL points the SDK at a different endpoint (proxies, tests).
func WithBaseURL(u string) Option {
	return func(o *options) {
		o.baseURL = u
	}
}

func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		o.httpClient = c
	}
}

func buildOptions(defaultModel string, opts []Option) options {
	o := options{model: defaultModel}
	for _, opt := range opts {
		opt(&o)
	}
	if o.model == "" {
		o.model = defaultModel
	}
	return o
}
