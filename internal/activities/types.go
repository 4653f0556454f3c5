package activities

import "researchhub/internal/ai"

type GenerateAnalysisInput struct {
	AnalysisType string          `json:"analysis_type"`
	PaperTitles  []string        `json:"paper_titles"`
	Texts        []string        `json:"texts"`
	Papers       []ai.PaperInput `json:"papers,omitempty"`
}

type GenerateAnalysisOutput struct {
	Content string `json:"content"`
}

type SaveAnalysisInput struct {
	AnalysisType string   `json:"analysis_type"`
	UserID       int64    `json:"user_id"`
	PaperIDs     []int64  `json:"paper_ids"`
	PaperTitles  []string `json:"paper_titles"`
	Content      string   `json:"content"`
}

type SaveAnalysisOutput struct {
	AnalysisID int64 `json:"analysis_id"`
}
