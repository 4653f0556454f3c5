package ai

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"researchhub/internal/providers"
)

type capturingProvider struct {
	lastReq providers.GenerateRequest
	text    string
	err     error
}

func (c *capturingProvider) Generate(_ context.Context, req providers.GenerateRequest) (providers.GenerateResponse, providers.ProviderInfo, error) {
	c.lastReq = req
	if c.err != nil {
		return providers.GenerateResponse{}, providers.ProviderInfo{Name: "capture"}, c.err
	}
	return providers.GenerateResponse{Text: c.text}, providers.ProviderInfo{Name: "capture"}, nil
}

func TestGenerateSummariesPromptAndSampling(t *testing.T) {
	p := &capturingProvider{text: "summary text"}
	svc := NewService(p, zap.NewNop().Sugar())

	long := strings.Repeat("x", 1500)
	out := svc.GenerateSummaries(context.Background(), []string{long, "short text"}, []string{"Paper One", "Paper Two"})
	require.Equal(t, "summary text", out)

	require.Equal(t, float32(0.3), p.lastReq.Temperature)
	require.Equal(t, 2000, p.lastReq.MaxTokens)
	require.Contains(t, p.lastReq.Prompt, "Paper 1: Paper One")
	require.Contains(t, p.lastReq.Prompt, "Paper 2: Paper Two")
	require.Contains(t, p.lastReq.Prompt, "concise summaries")

	// Each paper's text is bounded to a 1000-char prefix.
	require.NotContains(t, p.lastReq.Prompt, strings.Repeat("x", 1001))
	require.Contains(t, p.lastReq.Prompt, strings.Repeat("x", 1000)+"...")
}

func TestExtractInsightsSampling(t *testing.T) {
	p := &capturingProvider{text: "insights"}
	svc := NewService(p, zap.NewNop().Sugar())

	out := svc.ExtractInsights(context.Background(), []string{"abc"}, []string{"T"})
	require.Equal(t, "insights", out)
	require.Equal(t, float32(0.4), p.lastReq.Temperature)
	require.Equal(t, 2500, p.lastReq.MaxTokens)
	require.Contains(t, p.lastReq.Prompt, "Common themes across papers")
}

func TestGenerateLiteratureReviewPrompt(t *testing.T) {
	p := &capturingProvider{text: "review"}
	svc := NewService(p, zap.NewNop().Sugar())

	year := 2021
	long := strings.Repeat("y", 2000)
	out := svc.GenerateLiteratureReview(context.Background(), []PaperInput{
		{Title: "A", Authors: []string{"Ada", "Grace"}, Abstract: "overview", Text: long, Year: &year},
		{Title: "B", Authors: nil, Abstract: "", Text: "", Year: nil},
	})
	require.Equal(t, "review", out)
	require.Equal(t, float32(0.3), p.lastReq.Temperature)
	require.Equal(t, 3000, p.lastReq.MaxTokens)
	require.Contains(t, p.lastReq.Prompt, "Authors: Ada, Grace")
	require.Contains(t, p.lastReq.Prompt, "Year: 2021")
	require.Contains(t, p.lastReq.Prompt, "Year: N/A")
	require.Contains(t, p.lastReq.Prompt, "Abstract: N/A")

	// Literature reviews take a longer 1500-char prefix.
	require.Contains(t, p.lastReq.Prompt, strings.Repeat("y", 1500)+"...")
	require.NotContains(t, p.lastReq.Prompt, strings.Repeat("y", 1501))
}

func TestGenerationFailureDegradesToContent(t *testing.T) {
	p := &capturingProvider{err: errors.New("upstream 500")}
	svc := NewService(p, zap.NewNop().Sugar())

	require.Equal(t, "Error generating summary: upstream 500",
		svc.GenerateSummaries(context.Background(), []string{"t"}, []string{"a"}))
	require.Equal(t, "Error extracting insights: upstream 500",
		svc.ExtractInsights(context.Background(), []string{"t"}, []string{"a"}))
	require.Equal(t, "Error generating literature review: upstream 500",
		svc.GenerateLiteratureReview(context.Background(), []PaperInput{{Title: "a"}}))
}
