package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"researchhub/internal/util"
)

type crossrefResponse struct {
	Message struct {
		Items []crossrefItem `json:"items"`
	} `json:"message"`
}

type crossrefItem struct {
	Title   []string `json:"title"`
	Authors []struct {
		Given  string `json:"given"`
		Family string `json:"family"`
	} `json:"author"`
	Published struct {
		DateParts [][]int `json:"date-parts"`
	} `json:"published"`
	DOI            string   `json:"DOI"`
	Abstract       string   `json:"abstract"`
	ContainerTitle []string `json:"container-title"`
	CitedByCount   int      `json:"is-referenced-by-count"`
}

func (c *Client) searchCrossref(ctx context.Context, p Params) []Result {
	rows := p.MaxResults
	if rows > 50 {
		rows = 50
	}
	q := url.Values{}
	q.Set("query", p.Query)
	q.Set("rows", strconv.Itoa(rows))
	q.Set("sort", "published")
	q.Set("order", "desc")
	if p.Author != "" {
		q.Set("query.author", p.Author)
	}
	if p.YearFrom > 0 {
		q.Set("filter", fmt.Sprintf("from-pub-date:%d", p.YearFrom))
	}
	if p.YearTo > 0 {
		q.Set("filter", fmt.Sprintf("until-pub-date:%d", p.YearTo))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.crossrefBase+"/works?"+q.Encode(), nil)
	if err != nil {
		return nil
	}
	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil
	}
	body, _ := io.ReadAll(resp.Body)
	results, err := parseCrossrefResponse(body)
	if err != nil {
		return nil
	}
	return results
}

func parseCrossrefResponse(body []byte) ([]Result, error) {
	var parsed crossrefResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode crossref response: %w", err)
	}
	results := make([]Result, 0, len(parsed.Message.Items))
	for _, item := range parsed.Message.Items {
		title := "Untitled"
		if len(item.Title) > 0 && item.Title[0] != "" {
			title = item.Title[0]
		}
		authors := make([]string, 0, len(item.Authors))
		for _, a := range item.Authors {
			name := a.Given
			if a.Family != "" {
				if name != "" {
					name += " "
				}
				name += a.Family
			}
			if name != "" {
				authors = append(authors, name)
			}
		}
		dateStr := "2025-01-01"
		if len(item.Published.DateParts) > 0 && len(item.Published.DateParts[0]) > 0 {
			parts := item.Published.DateParts[0]
			year, month, day := parts[0], 1, 1
			if len(parts) > 1 {
				month = parts[1]
			}
			if len(parts) > 2 {
				day = parts[2]
			}
			dateStr = fmt.Sprintf("%04d-%02d-%02d", year, month, day)
		}
		abstract := item.Abstract
		if abstract == "" {
			abstract = "No abstract available."
		}
		source := "Unknown"
		if len(item.ContainerTitle) > 0 && item.ContainerTitle[0] != "" {
			source = item.ContainerTitle[0]
		}
		var itemURL string
		if item.DOI != "" {
			itemURL = "https://doi.org/" + item.DOI
		}
		results = append(results, Result{
			Title:     title,
			Authors:   authors,
			Abstract:  util.TruncateRunes(abstract, 500) + "...",
			Source:    source,
			URL:       itemURL,
			DOI:       item.DOI,
			Date:      dateStr,
			Citations: item.CitedByCount,
			Tags:      []string{"Crossref"},
		})
	}
	return results, nil
}
