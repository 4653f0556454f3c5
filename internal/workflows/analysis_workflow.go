package workflows

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"researchhub/internal/activities"
)

// AnalysisWorkflow is one fire-and-forget analysis job: generate content from
// the snapshot, persist exactly one analysis record. The caller has already
// received its acknowledgment, so every failure is terminal here: logged,
// counted, and swallowed. No retries.
func AnalysisWorkflow(ctx workflow.Context, input AnalysisInput) (string, error) {
	ao := workflow.ActivityOptions{
		StartToCloseTimeout: 5 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 1,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, ao)
	logger := workflow.GetLogger(ctx)

	var genOut activities.GenerateAnalysisOutput
	err := workflow.ExecuteActivity(ctx, "GenerateAnalysisActivity", activities.GenerateAnalysisInput{
		AnalysisType: input.AnalysisType,
		PaperTitles:  input.PaperTitles,
		Texts:        input.Texts,
		Papers:       input.Papers,
	}).Get(ctx, &genOut)
	if err != nil {
		logger.Error("analysis generation failed",
			"analysis_type", input.AnalysisType, "user_id", input.UserID, "error", err)
		return "failed", nil
	}

	var saveOut activities.SaveAnalysisOutput
	err = workflow.ExecuteActivity(ctx, "SaveAnalysisActivity", activities.SaveAnalysisInput{
		AnalysisType: input.AnalysisType,
		UserID:       input.UserID,
		PaperIDs:     input.PaperIDs,
		PaperTitles:  input.PaperTitles,
		Content:      genOut.Content,
	}).Get(ctx, &saveOut)
	if err != nil {
		logger.Error("analysis persistence failed",
			"analysis_type", input.AnalysisType, "user_id", input.UserID, "error", err)
		return "failed", nil
	}

	return "completed", nil
}
