package ai

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"researchhub/internal/providers"
	"researchhub/internal/util"
)

// PaperInput is the per-paper record snapshotted for literature reviews.
type PaperInput struct {
	Title    string   `json:"title"`
	Authors  []string `json:"authors"`
	Abstract string   `json:"abstract"`
	Text     string   `json:"text"`
	Year     *int     `json:"year"`
}

// Service builds deterministic prompts per analysis kind and calls the
// configured completion provider. Call failures are converted to a
// human-readable error string and returned as the generated content, so the
// surrounding job persists them instead of dropping the analysis.
type Service struct {
	llm providers.LLMProvider
	log *zap.SugaredLogger
}

func NewService(llm providers.LLMProvider, log *zap.SugaredLogger) *Service {
	return &Service{llm: llm, log: log}
}

func (s *Service) warnGenerateFailed(op string, err error) {
	s.log.Warnw("generation failed, degrading to error content",
		"operation", op, "error_type", providers.ClassifyError(err), "error", err)
}

const (
	summaryTextLimit = 1000
	reviewTextLimit  = 1500
)

func (s *Service) GenerateSummaries(ctx context.Context, texts, titles []string) string {
	blocks := make([]string, 0, len(texts))
	for i, text := range texts {
		title := ""
		if i < len(titles) {
			title = titles[i]
		}
		blocks = append(blocks, fmt.Sprintf("Paper %d: %s\nAbstract/Text: %s...",
			i+1, title, util.TruncateRunes(text, summaryTextLimit)))
	}

	prompt := fmt.Sprintf(`Please provide concise summaries of the following research papers:

%s

Please provide a well-structured summary for each paper, highlighting the key contributions, methods, and findings.
`, strings.Join(blocks, "\n\n"))

	resp, _, err := s.llm.Generate(ctx, providers.GenerateRequest{
		Operation:   "generate_summaries",
		System:      "You are a research assistant specializing in summarizing academic papers.",
		Prompt:      prompt,
		Temperature: 0.3,
		MaxTokens:   2000,
	})
	if err != nil {
		s.warnGenerateFailed("generate_summaries", err)
		return "Error generating summary: " + err.Error()
	}
	return resp.Text
}

func (s *Service) ExtractInsights(ctx context.Context, texts, titles []string) string {
	blocks := make([]string, 0, len(texts))
	for i, text := range texts {
		title := ""
		if i < len(titles) {
			title = titles[i]
		}
		blocks = append(blocks, fmt.Sprintf("Paper %d: %s\nAbstract/Text: %s...",
			i+1, title, util.TruncateRunes(text, summaryTextLimit)))
	}

	prompt := fmt.Sprintf(`Extract the most important insights and trends from the following research papers:

%s

Please identify:
1. Key findings and contributions
2. Common themes across papers
3. Novel methodologies or approaches
4. Limitations and future directions
5. Potential applications
`, strings.Join(blocks, "\n\n"))

	resp, _, err := s.llm.Generate(ctx, providers.GenerateRequest{
		Operation:   "extract_insights",
		System:      "You are a research analyst extracting key insights from academic literature.",
		Prompt:      prompt,
		Temperature: 0.4,
		MaxTokens:   2500,
	})
	if err != nil {
		s.warnGenerateFailed("extract_insights", err)
		return "Error extracting insights: " + err.Error()
	}
	return resp.Text
}

func (s *Service) GenerateLiteratureReview(ctx context.Context, papers []PaperInput) string {
	blocks := make([]string, 0, len(papers))
	for i, p := range papers {
		year := "N/A"
		if p.Year != nil {
			year = fmt.Sprintf("%d", *p.Year)
		}
		abstract := p.Abstract
		if abstract == "" {
			abstract = "N/A"
		}
		blocks = append(blocks, fmt.Sprintf("Paper %d: %s\nAuthors: %s\nYear: %s\nAbstract: %s\nKey Content: %s...\n",
			i+1, p.Title, strings.Join(p.Authors, ", "), year, abstract,
			util.TruncateRunes(p.Text, reviewTextLimit)))
	}

	prompt := fmt.Sprintf(`Write a comprehensive literature review based on the following research papers:

%s

The literature review should include:
1. Introduction to the research area
2. Thematic organization of the papers
3. Synthesis of key findings and their relationships
4. Identification of research gaps and controversies
5. Conclusion with future research directions

Write in formal academic style with proper transitions between sections.
`, strings.Join(blocks, "\n\n"))

	resp, _, err := s.llm.Generate(ctx, providers.GenerateRequest{
		Operation:   "generate_literature_review",
		System:      "You are an academic researcher writing a comprehensive literature review.",
		Prompt:      prompt,
		Temperature: 0.3,
		MaxTokens:   3000,
	})
	if err != nil {
		s.warnGenerateFailed("generate_literature_review", err)
		return "Error generating literature review: " + err.Error()
	}
	return resp.Text
}
