package ai

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

const defaultOpenAIModel = openai.GPT4oMini

// OpenAIProvider implements Provider using the OpenAI chat completion API.
type OpenAIProvider struct {
	client    *openai.Client
	modelName string
}

// NewOpenAIProvider creates a new OpenAI provider instance.
func NewOpenAIProvider(apiKey string) *OpenAIProvider {
	return &OpenAIProvider{
		client:    openai.NewClient(apiKey),
		modelName: defaultOpenAIModel,
	}
}

// Name identifies the provider in logs.
func (p *OpenAIProvider) Name() string { return "openai" }

// Generate produces a completion for the prompt.
func (p *OpenAIProvider) Generate(ctx context.Context, prompt string, config GenerateConfig) (string, error) {
	request := openai.ChatCompletionRequest{
		Model:       p.modelName,
		Temperature: config.Temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	}
	if config.JSONOutput {
		request.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := p.client.CreateChatCompletion(ctx, request)
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
