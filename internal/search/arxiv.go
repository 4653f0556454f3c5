package search

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"researchhub/internal/util"
)

type atomFeed struct {
	Entries []atomEntry `xml:"entry"`
}

type atomEntry struct {
	Title     string       `xml:"title"`
	Summary   string       `xml:"summary"`
	Published string       `xml:"published"`
	Authors   []atomAuthor `xml:"author"`
	Links     []atomLink   `xml:"link"`
}

type atomAuthor struct {
	Name string `xml:"name"`
}

type atomLink struct {
	Href  string `xml:"href,attr"`
	Rel   string `xml:"rel,attr"`
	Title string `xml:"title,attr"`
}

func (c *Client) searchArxiv(ctx context.Context, p Params) []Result {
	queryParts := make([]string, 0, 2)
	if p.Query != "" {
		queryParts = append(queryParts, "all:"+url.QueryEscape(p.Query))
	}
	if p.Author != "" {
		queryParts = append(queryParts, "au:"+url.QueryEscape(p.Author))
	}
	query := "all:*"
	if len(queryParts) > 0 {
		query = strings.Join(queryParts, "+AND+")
	}
	if p.YearFrom > 0 || p.YearTo > 0 {
		dateRange := make([]string, 0, 2)
		if p.YearFrom > 0 {
			dateRange = append(dateRange, fmt.Sprintf("from:%d", p.YearFrom))
		}
		if p.YearTo > 0 {
			dateRange = append(dateRange, fmt.Sprintf("to:%d", p.YearTo))
		}
		query += "+AND+submittedDate:[" + strings.Join(dateRange, "+") + "]"
	}

	maxResults := p.MaxResults
	if maxResults > 50 {
		maxResults = 50
	}
	reqURL := c.arxivBase + "/query?search_query=" + query +
		"&start=0&max_results=" + strconv.Itoa(maxResults) +
		"&sortBy=submittedDate&sortOrder=descending"

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
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
	results, err := parseArxivFeed(body)
	if err != nil {
		return nil
	}
	return results
}

func parseArxivFeed(body []byte) ([]Result, error) {
	var feed atomFeed
	if err := xml.Unmarshal(body, &feed); err != nil {
		return nil, fmt.Errorf("decode arxiv feed: %w", err)
	}
	results := make([]Result, 0, len(feed.Entries))
	for _, e := range feed.Entries {
		authors := make([]string, 0, len(e.Authors))
		for _, a := range e.Authors {
			if a.Name != "" {
				authors = append(authors, a.Name)
			}
		}
		var abstractURL, pdfURL string
		for _, l := range e.Links {
			switch {
			case l.Title == "pdf":
				pdfURL = l.Href
			case l.Rel == "alternate":
				abstractURL = l.Href
			}
		}
		published := e.Published
		if len(published) > 10 {
			published = published[:10]
		}
		results = append(results, Result{
			Title:     strings.TrimSpace(e.Title),
			Authors:   authors,
			Abstract:  util.TruncateRunes(strings.TrimSpace(e.Summary), 500) + "...",
			Source:    "arXiv",
			URL:       abstractURL,
			PDFURL:    pdfURL,
			Date:      published,
			Citations: 0,
			Tags:      []string{"arXiv"},
		})
	}
	return results, nil
}
