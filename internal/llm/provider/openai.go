package provider

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
)

// OpenAIProvider implements Provider using the official openai-go client.
type OpenAIProvider struct {
	apiKey string
	model  string

	Client openai.Client
}

func NewOpenAIProvider(opts ...Option) (*OpenAIProvider, error) {
	o := buildOptions(DefaultOpenAIModel, opts)
	p := &OpenAIProvider{apiKey: o.apiKey, model: o.model}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	reqOpts := []option.RequestOption{
		option.WithAPIKey(p.apiKey),
		// Retries belong to the shared transport, which has them off by default.
		option.WithMaxRetries(0),
	}
	if o.baseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(o.baseURL))
	}
	if o.httpClient != nil {
		reqOpts = append(reqOpts, option.WithHTTPClient(o.httpClient))
	}
	p.Client = openai.NewClient(reqOpts...)
	return p, nil
}

func (p *OpenAIProvider) Validate() error {
	if p.apiKey == "" {
		return fmt.Errorf("api key not set")
	}
	return nil
}

func (p *OpenAIProvider) Complete(ctx context.Context, req Request) (string, error) {
	var msgs []openai.ChatCompletionMessageParamUnion
	if len(req.Instructions) > 0 {
		msgs = append(msgs, openai.SystemMessage(strings.Join(req.Instructions, "\n")))
	}
	msgs = append(msgs, openai.UserMessage(req.Prompt))

	chat, err := p.Client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: msgs,
		Model:    openai.ChatModel(p.model),
	})
	if err != nil {
		return "", err
	}
	if len(chat.Choices) == 0 {
		return "", fmt.Errorf("no choices in completion")
	}
	s := strings.TrimSpace(chat.Choices[0].Message.Content)
	if s == "" {
		return "", fmt.Errorf("no message content")
	}
	return s, nil
}
