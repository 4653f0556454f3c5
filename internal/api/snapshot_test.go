package api

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"researchhub/internal/models"
)

func paperWith(id int64, title, text, abstract string) models.Paper {
	return models.Paper{ID: id, Title: title, ExtractedText: text, Abstract: abstract}
}

func TestBuildAnalysisSnapshotNoPapers(t *testing.T) {
	_, err := buildAnalysisSnapshot(models.AnalysisTypeSummary, 1, nil)
	require.ErrorIs(t, err, errNoValidPapers)

	_, err = buildAnalysisSnapshot(models.AnalysisTypeLiteratureReview, 1, nil)
	require.ErrorIs(t, err, errNoValidPapers)
}

func TestBuildAnalysisSnapshotNoUsableText(t *testing.T) {
	papers := []models.Paper{
		paperWith(1, "A", "", ""),
		paperWith(2, "B", "", ""),
	}
	_, err := buildAnalysisSnapshot(models.AnalysisTypeSummary, 1, papers)
	require.ErrorIs(t, err, errNoTextContent)
}

func TestBuildAnalysisSnapshotTitlesCoverAllPapers(t *testing.T) {
	// One paper has no text. Its title still rides along in the snapshot
	// even though its text is dropped.
	papers := []models.Paper{
		paperWith(1, "Has text", "full text", ""),
		paperWith(2, "No text", "", ""),
		paperWith(3, "Abstract only", "", "the abstract"),
	}
	input, err := buildAnalysisSnapshot(models.AnalysisTypeInsights, 9, papers)
	require.NoError(t, err)
	require.Equal(t, []int64{1, 2, 3}, input.PaperIDs)
	require.Equal(t, []string{"Has text", "No text", "Abstract only"}, input.PaperTitles)
	require.Equal(t, []string{"full text", "the abstract"}, input.Texts)
	require.Equal(t, int64(9), input.UserID)
	require.Equal(t, models.AnalysisTypeInsights, input.AnalysisType)
}

func TestBuildAnalysisSnapshotExtractedTextWinsOverAbstract(t *testing.T) {
	papers := []models.Paper{paperWith(1, "A", "full text", "the abstract")}
	input, err := buildAnalysisSnapshot(models.AnalysisTypeSummary, 1, papers)
	require.NoError(t, err)
	require.Equal(t, []string{"full text"}, input.Texts)
}

func TestBuildAnalysisSnapshotLiteratureReviewNeedsTwoPapers(t *testing.T) {
	papers := []models.Paper{paperWith(1, "Solo", "text", "")}
	_, err := buildAnalysisSnapshot(models.AnalysisTypeLiteratureReview, 1, papers)
	require.ErrorIs(t, err, errNeedTwoPapers)
}

func TestBuildAnalysisSnapshotLiteratureReviewSkipsTextCheck(t *testing.T) {
	// Text presence is not required for literature review.
	date := time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC)
	papers := []models.Paper{
		{ID: 1, Title: "A", Authors: []string{"Ada"}, PublicationDate: &date},
		{ID: 2, Title: "B"},
	}
	input, err := buildAnalysisSnapshot(models.AnalysisTypeLiteratureReview, 1, papers)
	require.NoError(t, err)
	require.Len(t, input.Papers, 2)
	require.Equal(t, "A", input.Papers[0].Title)
	require.NotNil(t, input.Papers[0].Year)
	require.Equal(t, 2021, *input.Papers[0].Year)
	require.Nil(t, input.Papers[1].Year)
	require.Empty(t, input.Texts)
}

func TestStartMessage(t *testing.T) {
	require.Equal(t, "Summary generation started", startMessage(models.AnalysisTypeSummary))
	require.Equal(t, "Insights extraction started", startMessage(models.AnalysisTypeInsights))
	require.Equal(t, "Literature review generation started", startMessage(models.AnalysisTypeLiteratureReview))
}
