package providers

import (
	"context"
	"strings"
)

// MockProvider returns deterministic text so the pipeline can run without any
// API keys configured.
type MockProvider struct{}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (m *MockProvider) Generate(ctx context.Context, req GenerateRequest) (GenerateResponse, ProviderInfo, error) {
	_ = ctx
	op := strings.ToLower(req.Operation)
	text := "Mock response."
	switch {
	case strings.Contains(op, "summar"):
		text = "## Mock Summary\nDeterministic per-paper summary output."
	case strings.Contains(op, "insight"):
		text = "## Mock Insights\n1. Key findings\n2. Common themes\n3. Novel methods"
	case strings.Contains(op, "review"):
		text = "## Mock Literature Review\nIntroduction, themes, synthesis, gaps, conclusion."
	}
	return GenerateResponse{Text: text}, ProviderInfo{Name: "mock", Model: "mock-llm-v1", Key: "mock"}, nil
}
