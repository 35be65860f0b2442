package provider

import (
	"context"
	"fmt"
	"strings"
)

// New builds the provider named by kind ("gemini" or "openai").
func New(ctx context.Context, kind string, opts ...Option) (Provider, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case KindGemini, "":
		return NewGeminiProvider(ctx, opts...)
	case KindOpenAI:
		return NewOpenAIProvider(opts...)
	default:
		return nil, fmt.Errorf("unknown llm provider %q", kind)
	}
}
