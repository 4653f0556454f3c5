package search

import (
	"context"
	"net/http"
	"time"

	"researchhub/internal/config"
)

// Params mirrors the catalog search request body.
type Params struct {
	Query      string `json:"query"`
	Source     string `json:"source,omitempty"`
	YearFrom   int    `json:"year_from,omitempty"`
	YearTo     int    `json:"year_to,omitempty"`
	Author     string `json:"author,omitempty"`
	MaxResults int    `json:"max_results,omitempty"`
}

// Result is the normalized shape shared by all catalog backends.
type Result struct {
	Title     string   `json:"title"`
	Authors   []string `json:"authors"`
	Abstract  string   `json:"abstract"`
	Source    string   `json:"source"`
	URL       string   `json:"url"`
	PDFURL    string   `json:"pdf_url,omitempty"`
	DOI       string   `json:"doi,omitempty"`
	Date      string   `json:"date"`
	Citations int      `json:"citations"`
	Tags      []string `json:"tags"`
}

// Client queries external literature catalogs. Backend failures degrade to an
// empty slice for that backend; the merged result is best effort.
type Client struct {
	arxivBase    string
	crossrefBase string
	http         *http.Client
}

func NewClient(cfg config.Config) *Client {
	return &Client{
		arxivBase:    cfg.ArxivBaseURL,
		crossrefBase: cfg.CrossrefBaseURL,
		http:         &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) Search(ctx context.Context, p Params) []Result {
	if p.MaxResults <= 0 {
		p.MaxResults = 20
	}
	results := make([]Result, 0, p.MaxResults)

	if p.Source == "" || p.Source == "All Sources" || p.Source == "arXiv" {
		results = append(results, c.searchArxiv(ctx, p)...)
	}
	if p.Source == "" || p.Source == "All Sources" {
		results = append(results, c.searchCrossref(ctx, p)...)
	}
	if len(results) > p.MaxResults {
		results = results[:p.MaxResults]
	}
	return results
}
