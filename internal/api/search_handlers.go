package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"researchhub/internal/models"
	"researchhub/internal/search"
)

func (s *Server) handleSearchPapers(w http.ResponseWriter, r *http.Request, _ models.User) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var params search.Params
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		writeErr(w, http.StatusBadRequest, fmt.Errorf("invalid json: %w", err))
		return
	}
	if strings.TrimSpace(params.Query) == "" {
		writeErr(w, http.StatusBadRequest, fmt.Errorf("query is required"))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"results": s.searcher.Search(r.Context(), params),
	})
}

// handleSearchImport persists one external search result as an owned paper.
func (s *Server) handleSearchImport(w http.ResponseWriter, r *http.Request, u models.User) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var req struct {
		search.Result
		WorkspaceID *int64 `json:"workspace_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, fmt.Errorf("invalid json: %w", err))
		return
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		writeErr(w, http.StatusBadRequest, fmt.Errorf("title is required"))
		return
	}

	p := models.Paper{
		Title:         req.Title,
		Authors:       req.Authors,
		Abstract:      req.Abstract,
		Source:        req.Source,
		SourceURL:     req.URL,
		PDFURL:        req.PDFURL,
		DOI:           req.DOI,
		CitationCount: req.Citations,
		Tags:          req.Tags,
		OwnerID:       u.ID,
	}
	if req.Date != "" {
		if t, err := time.Parse("2006-01-02", req.Date); err == nil {
			p.PublicationDate = &t
		}
	}

	created, err := s.papers.Create(r.Context(), p)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err)
		return
	}
	if req.WorkspaceID != nil {
		if err := s.papers.AttachWorkspaces(r.Context(), u.ID, created.ID, []int64{*req.WorkspaceID}); err != nil {
			writeErr(w, http.StatusInternalServerError, err)
			return
		}
	}
	writeJSON(w, http.StatusCreated, created)
}
