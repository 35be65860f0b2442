package provider

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// GeminiProvider implements Provider on the Gemini API via google.golang.org/genai.
type GeminiProvider struct {
	apiKey string
	model  string

	client *genai.Client
}

func NewGeminiProvider(ctx context.Context, opts ...Option) (*GeminiProvider, error) {
	o := buildOptions(DefaultGeminiModel, opts)
	p := &GeminiProvider{apiKey: o.apiKey, model: o.model}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	cfg := &genai.ClientConfig{
		APIKey:     p.apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: o.httpClient,
	}
	if o.baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: o.baseURL}
	}
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	p.client = client
	return p, nil
}

func (p *GeminiProvider) Validate() error {
	if p.apiKey == "" {
		return fmt.Errorf("api key not set")
	}
	return nil
}

func (p *GeminiProvider) Complete(ctx context.Context, req Request) (string, error) {
	var gcfg *genai.GenerateContentConfig
	if len(req.Instructions) > 0 {
		gcfg = &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{
				Parts: []*genai.Part{{Text: strings.Join(req.Instructions, "\n")}},
			},
		}
	}
	resp, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(req.Prompt), gcfg)
	if err != nil {
		return "", err
	}
	s := strings.TrimSpace(resp.Text())
	if s == "" {
		return "", fmt.Errorf("no message content")
	}
	return s, nil
}
