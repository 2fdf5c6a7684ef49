package services

import (
	"context"
)

// mockGenerativeClient scripts model responses for service tests.
type mockGenerativeClient struct {
	response string
	err      error

	calls       int
	lastModel   string
	lastPrompt  string
	lastMaxTok  int32
	lastTemp    float32
	responderFn func(prompt string) (string, error)
}

func (m *mockGenerativeClient) GenerateText(ctx context.Context, model, prompt string, maxTokens int32, temperature float32) (string, error) {
	m.calls++
	m.lastModel = model
	m.lastPrompt = prompt
	m.lastMaxTok = maxTokens
	m.lastTemp = temperature

	if m.responderFn != nil {
		return m.responderFn(prompt)
	}
	return m.response, m.err
}

func (m *mockGenerativeClient) Close() error { return nil }
