package api

import (
	"errors"

	"researchhub/internal/ai"
	"researchhub/internal/models"
	"researchhub/internal/workflows"
)

var (
	errNoValidPapers = errors.New("no valid papers found")
	errNoTextContent = errors.New("papers have no text content")
	errNeedTwoPapers = errors.New("need at least 2 papers")
)

// buildAnalysisSnapshot turns the caller's resolved papers into the immutable
// job input. Titles cover every resolved paper; texts cover only papers that
// have extracted text or an abstract. Literature review skips the text check
// and instead requires at least two papers.
func buildAnalysisSnapshot(kind string, userID int64, papers []models.Paper) (workflows.AnalysisInput, error) {
	if len(papers) == 0 {
		return workflows.AnalysisInput{}, errNoValidPapers
	}

	ids := make([]int64, 0, len(papers))
	titles := make([]string, 0, len(papers))
	for _, p := range papers {
		ids = append(ids, p.ID)
		titles = append(titles, p.Title)
	}

	input := workflows.AnalysisInput{
		AnalysisType: kind,
		UserID:       userID,
		PaperIDs:     ids,
		PaperTitles:  titles,
	}

	if kind == models.AnalysisTypeLiteratureReview {
		if len(papers) < 2 {
			return workflows.AnalysisInput{}, errNeedTwoPapers
		}
		inputs := make([]ai.PaperInput, 0, len(papers))
		for _, p := range papers {
			in := ai.PaperInput{
				Title:    p.Title,
				Authors:  p.Authors,
				Abstract: p.Abstract,
				Text:     p.ExtractedText,
			}
			if p.PublicationDate != nil {
				year := p.PublicationDate.Year()
				in.Year = &year
			}
			inputs = append(inputs, in)
		}
		input.Papers = inputs
		return input, nil
	}

	texts := make([]string, 0, len(papers))
	for _, p := range papers {
		switch {
		case p.ExtractedText != "":
			texts = append(texts, p.ExtractedText)
		case p.Abstract != "":
			texts = append(texts, p.Abstract)
		}
	}
	if len(texts) == 0 {
		return workflows.AnalysisInput{}, errNoTextContent
	}
	input.Texts = texts
	return input, nil
}

func startMessage(kind string) string {
	switch kind {
	case models.AnalysisTypeInsights:
		return "Insights extraction started"
	case models.AnalysisTypeLiteratureReview:
		return "Literature review generation started"
	default:
		return "Summary generation started"
	}
}
