package workflows

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/testsuite"

	"researchhub/internal/activities"
)

func registerActivityName[T any](env *testsuite.TestWorkflowEnvironment, name string, fn T) {
	env.RegisterActivityWithOptions(fn, activity.RegisterOptions{Name: name})
}

func newAnalysisEnv() *testsuite.TestWorkflowEnvironment {
	var ts testsuite.WorkflowTestSuite
	env := ts.NewTestWorkflowEnvironment()
	env.RegisterWorkflow(AnalysisWorkflow)
	registerActivityName(env, "GenerateAnalysisActivity", func(context.Context, activities.GenerateAnalysisInput) (activities.GenerateAnalysisOutput, error) {
		return activities.GenerateAnalysisOutput{}, nil
	})
	registerActivityName(env, "SaveAnalysisActivity", func(context.Context, activities.SaveAnalysisInput) (activities.SaveAnalysisOutput, error) {
		return activities.SaveAnalysisOutput{}, nil
	})
	return env
}

func TestAnalysisWorkflowSuccess(t *testing.T) {
	env := newAnalysisEnv()

	env.OnActivity("GenerateAnalysisActivity", mock.Anything, activities.GenerateAnalysisInput{
		AnalysisType: "summary",
		PaperTitles:  []string{"Paper A", "Paper B"},
		Texts:        []string{"text a"},
	}).Return(activities.GenerateAnalysisOutput{Content: "generated summary"}, nil)
	env.OnActivity("SaveAnalysisActivity", mock.Anything, activities.SaveAnalysisInput{
		AnalysisType: "summary",
		UserID:       7,
		PaperIDs:     []int64{1, 2},
		PaperTitles:  []string{"Paper A", "Paper B"},
		Content:      "generated summary",
	}).Return(activities.SaveAnalysisOutput{AnalysisID: 42}, nil)

	env.ExecuteWorkflow(AnalysisWorkflow, AnalysisInput{
		AnalysisType: "summary",
		UserID:       7,
		PaperIDs:     []int64{1, 2},
		PaperTitles:  []string{"Paper A", "Paper B"},
		Texts:        []string{"text a"},
	})
	require.True(t, env.IsWorkflowCompleted())
	require.NoError(t, env.GetWorkflowError())

	var out string
	require.NoError(t, env.GetWorkflowResult(&out))
	require.Equal(t, "completed", out)
	env.AssertExpectations(t)
}

func TestAnalysisWorkflowGenerationFailureIsSwallowed(t *testing.T) {
	env := newAnalysisEnv()

	env.OnActivity("GenerateAnalysisActivity", mock.Anything, mock.Anything).
		Return(activities.GenerateAnalysisOutput{}, errors.New("provider exploded"))

	env.ExecuteWorkflow(AnalysisWorkflow, AnalysisInput{AnalysisType: "insights", UserID: 7})
	require.True(t, env.IsWorkflowCompleted())
	require.NoError(t, env.GetWorkflowError())

	var out string
	require.NoError(t, env.GetWorkflowResult(&out))
	require.Equal(t, "failed", out)
	env.AssertNotCalled(t, "SaveAnalysisActivity", mock.Anything, mock.Anything)
}

func TestAnalysisWorkflowSaveFailureIsSwallowed(t *testing.T) {
	env := newAnalysisEnv()

	env.OnActivity("GenerateAnalysisActivity", mock.Anything, mock.Anything).
		Return(activities.GenerateAnalysisOutput{Content: "generated review"}, nil)
	env.OnActivity("SaveAnalysisActivity", mock.Anything, mock.Anything).
		Return(activities.SaveAnalysisOutput{}, errors.New("database gone"))

	env.ExecuteWorkflow(AnalysisWorkflow, AnalysisInput{AnalysisType: "literature_review", UserID: 7, PaperIDs: []int64{1, 2}})
	require.True(t, env.IsWorkflowCompleted())
	require.NoError(t, env.GetWorkflowError())

	var out string
	require.NoError(t, env.GetWorkflowResult(&out))
	require.Equal(t, "failed", out)
}
