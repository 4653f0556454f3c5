package activities

import (
	"testing"

	"github.com/stretchr/testify/require"

	"researchhub/internal/models"
)

func TestAnalysisTitle(t *testing.T) {
	require.Equal(t, "Summary of 3 papers", analysisTitle(models.AnalysisTypeSummary, 3))
	require.Equal(t, "Insights from 2 papers", analysisTitle(models.AnalysisTypeInsights, 2))
	require.Equal(t, "Literature Review of 4 papers", analysisTitle(models.AnalysisTypeLiteratureReview, 4))
}

func TestAnalysisMetadataShapes(t *testing.T) {
	meta := analysisMetadata(models.AnalysisTypeSummary, []int64{1, 2}, []string{"A", "B"})
	require.Equal(t, []int64{1, 2}, meta["paper_ids"])
	require.Equal(t, []string{"A", "B"}, meta["paper_titles"])
	require.NotContains(t, meta, "paper_count")

	meta = analysisMetadata(models.AnalysisTypeLiteratureReview, []int64{1, 2, 3}, []string{"A", "B", "C"})
	require.Equal(t, []int64{1, 2, 3}, meta["paper_ids"])
	require.Equal(t, 3, meta["paper_count"])
	require.NotContains(t, meta, "paper_titles")
}

func TestAnalysisMetadataNilSlices(t *testing.T) {
	meta := analysisMetadata(models.AnalysisTypeSummary, nil, nil)
	require.Equal(t, []int64{}, meta["paper_ids"])
	require.Equal(t, []string{}, meta["paper_titles"])
}
