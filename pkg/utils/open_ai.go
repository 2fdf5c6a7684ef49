package utils

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIGenerativeClient implements GenerativeClientInterface on OpenAI
// chat completions. Gemini model identifiers from requests are mapped to
// the configured default model.
type OpenAIGenerativeClient struct {
	client       *openai.Client
	defaultModel string
}

func NewOpenAIGenerativeClient(apiKey, defaultModel string) GenerativeClientInterface {
	if defaultModel == "" {
		defaultModel = openai.GPT4oMini
	}
	return &OpenAIGenerativeClient{
		client:       openai.NewClient(apiKey),
		defaultModel: defaultModel,
	}
}

func (c *OpenAIGenerativeClient) GenerateText(ctx context.Context, model, prompt string, maxTokens int32, temperature float32) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt cannot be empty: %w", ErrInvalidInput)
	}
	if model == "" || strings.HasPrefix(model, "gemini") {
		model = c.defaultModel
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctxWithTimeout, openai.ChatCompletionRequest{
		Model:       model,
		MaxTokens:   int(maxTokens),
		Temperature: temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai API call failed: %v: %w", err, ErrUnexpectedBehaviorOfAI)
	}

	for _, choice := range resp.Choices {
		if s := strings.TrimSpace(choice.Message.Content); s != "" {
			return s, nil
		}
	}

	return "", fmt.Errorf("openai returned empty response: %w", ErrUnexpectedBehaviorOfAI)
}

func (c *OpenAIGenerativeClient) Close() error {
	return nil
}
