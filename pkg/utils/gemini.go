package utils

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GenerativeClientInterface is the single-shot text-in/text-out contract for
// the external language model. No streaming, no conversation state.
type GenerativeClientInterface interface {
	GenerateText(ctx context.Context, model, prompt string, maxTokens int32, temperature float32) (string, error)
	Close() error
}

// generateTimeout bounds every model call so a stuck generation cannot hold
// a request slot indefinitely.
const generateTimeout = 30 * time.Second

// GeminiGenerativeClient implements GenerativeClientInterface on Google's
// Gemini models.
type GeminiGenerativeClient struct {
	client       *genai.Client
	defaultModel string
}

func NewGeminiGenerativeClient(apiKey, defaultModel string) (GenerativeClientInterface, error) {
	if defaultModel == "" {
		defaultModel = "gemini-flash-latest"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiGenerativeClient{
		client:       client,
		defaultModel: defaultModel,
	}, nil
}

func (c *GeminiGenerativeClient) GenerateText(ctx context.Context, model, prompt string, maxTokens int32, temperature float32) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt cannot be empty: %w", ErrInvalidInput)
	}
	if model == "" {
		model = c.defaultModel
	}

	m := c.client.GenerativeModel(model)
	m.SetTemperature(temperature)
	m.SetMaxOutputTokens(maxTokens)

	ctxWithTimeout, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	resp, err := m.GenerateContent(ctxWithTimeout, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini API call failed: %v: %w", err, ErrUnexpectedBehaviorOfAI)
	}

	text := extractText(resp)
	if text == "" {
		return "", fmt.Errorf("gemini returned empty response: %w", ErrUnexpectedBehaviorOfAI)
	}

	return text, nil
}

// extractText walks candidates and parts and returns the first non-empty
// text payload.
func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				if s := strings.TrimSpace(string(text)); s != "" {
					return s
				}
			}
		}
	}
	return ""
}

func (c *GeminiGenerativeClient) Close() error {
	return c.client.Close()
}

// CleanJSONResponse strips a single leading/trailing markdown fence and
// trims whitespace. Safe to apply twice: once the fences are gone it is a
// plain trim.
func CleanJSONResponse(raw string) string {
	text := strings.TrimSpace(raw)

	if strings.HasPrefix(text, "```json") {
		text = text[7:]
	} else if strings.HasPrefix(text, "```") {
		text = text[3:]
	}

	if strings.HasSuffix(text, "```") {
		text = text[:len(text)-3]
	}

	return strings.TrimSpace(text)
}

// NewGenerativeClient builds a client for the configured provider.
func NewGenerativeClient(provider, apiKey, model string) (GenerativeClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIGenerativeClient(apiKey, model), nil
	case "gemini":
		return NewGeminiGenerativeClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported provider: %s. Use 'openai' or 'gemini'", provider)
	}
}
