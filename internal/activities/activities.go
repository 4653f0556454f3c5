package activities

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"researchhub/internal/ai"
	"researchhub/internal/metrics"
	"researchhub/internal/models"
	"researchhub/internal/storage"
)

// Activities carries the worker-side dependencies for analysis jobs. The
// worker process owns its own database pool and provider client, so nothing
// here is shared with the API process.
type Activities struct {
	analyses *storage.AnalysisRepo
	ai       *ai.Service
	jobs     *metrics.JobCounters
	log      *zap.SugaredLogger
}

func New(analyses *storage.AnalysisRepo, aiSvc *ai.Service, jobs *metrics.JobCounters, log *zap.SugaredLogger) *Activities {
	return &Activities{analyses: analyses, ai: aiSvc, jobs: jobs, log: log}
}

func (a *Activities) GenerateAnalysisActivity(ctx context.Context, in GenerateAnalysisInput) (GenerateAnalysisOutput, error) {
	var content string
	switch in.AnalysisType {
	case models.AnalysisTypeSummary:
		content = a.ai.GenerateSummaries(ctx, in.Texts, in.PaperTitles)
	case models.AnalysisTypeInsights:
		content = a.ai.ExtractInsights(ctx, in.Texts, in.PaperTitles)
	case models.AnalysisTypeLiteratureReview:
		content = a.ai.GenerateLiteratureReview(ctx, in.Papers)
	default:
		a.jobs.JobFailed()
		return GenerateAnalysisOutput{}, fmt.Errorf("unsupported analysis type: %s", in.AnalysisType)
	}
	return GenerateAnalysisOutput{Content: content}, nil
}

func (a *Activities) SaveAnalysisActivity(ctx context.Context, in SaveAnalysisInput) (SaveAnalysisOutput, error) {
	rec := models.Analysis{
		Type:     in.AnalysisType,
		Title:    analysisTitle(in.AnalysisType, len(in.PaperIDs)),
		Content:  in.Content,
		Metadata: analysisMetadata(in.AnalysisType, in.PaperIDs, in.PaperTitles),
		UserID:   in.UserID,
	}
	saved, err := a.analyses.Create(ctx, rec)
	if err != nil {
		a.jobs.JobFailed()
		a.log.Errorw("analysis persistence failed",
			"analysis_type", in.AnalysisType, "user_id", in.UserID, "error", err)
		return SaveAnalysisOutput{}, err
	}
	a.jobs.JobCompleted()
	a.log.Infow("analysis saved",
		"analysis_id", saved.ID, "analysis_type", in.AnalysisType, "user_id", in.UserID)
	return SaveAnalysisOutput{AnalysisID: saved.ID}, nil
}

func analysisTitle(kind string, paperCount int) string {
	switch kind {
	case models.AnalysisTypeInsights:
		return fmt.Sprintf("Insights from %d papers", paperCount)
	case models.AnalysisTypeLiteratureReview:
		return fmt.Sprintf("Literature Review of %d papers", paperCount)
	default:
		return fmt.Sprintf("Summary of %d papers", paperCount)
	}
}

func analysisMetadata(kind string, paperIDs []int64, paperTitles []string) map[string]any {
	if paperIDs == nil {
		paperIDs = []int64{}
	}
	if kind == models.AnalysisTypeLiteratureReview {
		return map[string]any{
			"paper_ids":   paperIDs,
			"paper_count": len(paperIDs),
		}
	}
	if paperTitles == nil {
		paperTitles = []string{}
	}
	return map[string]any{
		"paper_ids":    paperIDs,
		"paper_titles": paperTitles,
	}
}
