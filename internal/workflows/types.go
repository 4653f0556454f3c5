package workflows

import "researchhub/internal/ai"

// AnalysisInput is the immutable snapshot captured at validation time. It
// carries everything the job needs so the job never touches request-scoped
// state; by the time it runs, the originating request is long gone.
type AnalysisInput struct {
	AnalysisType string          `json:"analysis_type"`
	UserID       int64           `json:"user_id"`
	PaperIDs     []int64         `json:"paper_ids"`
	PaperTitles  []string        `json:"paper_titles"`
	Texts        []string        `json:"texts"`
	Papers       []ai.PaperInput `json:"papers,omitempty"`
}
