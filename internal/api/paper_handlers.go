package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"researchhub/internal/extract"
	"researchhub/internal/models"
	"researchhub/internal/util"
)

type paperCreateRequest struct {
	Title           string   `json:"title"`
	Authors         []string `json:"authors"`
	Abstract        string   `json:"abstract"`
	Source          string   `json:"source"`
	SourceURL       string   `json:"source_url"`
	PDFURL          string   `json:"pdf_url"`
	DOI             string   `json:"doi"`
	PublicationDate *string  `json:"publication_date"`
	CitationCount   int      `json:"citation_count"`
	Tags            []string `json:"tags"`
	IsPublic        bool     `json:"is_public"`
	WorkspaceIDs    []int64  `json:"workspace_ids"`
}

func (s *Server) handlePapers(w http.ResponseWriter, r *http.Request, u models.User) {
	switch r.Method {
	case http.MethodGet:
		papers, err := s.papers.ListByOwner(r.Context(), u.ID, queryInt64(r, "workspace_id"))
		if err != nil {
			writeErr(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusOK, papers)
	case http.MethodPost:
		var req paperCreateRequest
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
			SourceURL:     req.SourceURL,
			PDFURL:        req.PDFURL,
			DOI:           req.DOI,
			CitationCount: req.CitationCount,
			Tags:          req.Tags,
			IsPublic:      req.IsPublic,
			OwnerID:       u.ID,
		}
		if req.PublicationDate != nil && *req.PublicationDate != "" {
			if t, err := time.Parse("2006-01-02", *req.PublicationDate); err == nil {
				p.PublicationDate = &t
			}
		}
		created, err := s.papers.Create(r.Context(), p)
		if err != nil {
			writeErr(w, http.StatusInternalServerError, err)
			return
		}
		if err := s.papers.AttachWorkspaces(r.Context(), u.ID, created.ID, req.WorkspaceIDs); err != nil {
			writeErr(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusCreated, created)
	default:
		methodNotAllowed(w)
	}
}

func (s *Server) handlePaperScoped(w http.ResponseWriter, r *http.Request, u models.User) {
	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/papers/"), "/")
	if rest == "upload" {
		if r.Method != http.MethodPost {
			methodNotAllowed(w)
			return
		}
		s.handlePaperUpload(w, r, u)
		return
	}

	id, tail, ok := pathID(r, "/api/papers/")
	if !ok {
		s.handlePapers(w, r, u)
		return
	}
	if tail != "" {
		writeErr(w, http.StatusNotFound, fmt.Errorf("not found"))
		return
	}

	switch r.Method {
	case http.MethodGet:
		p, err := s.papers.GetByID(r.Context(), u.ID, id)
		if err != nil {
			s.writeRepoErr(w, err, "paper not found")
			return
		}
		writeJSON(w, http.StatusOK, p)
	case http.MethodDelete:
		if wsID := queryInt64(r, "workspace_id"); wsID != nil {
			if err := s.papers.RemoveFromWorkspace(r.Context(), u.ID, id, *wsID); err != nil {
				s.writeRepoErr(w, err, "paper not found")
				return
			}
			writeJSON(w, http.StatusOK, map[string]any{"message": "Paper removed from workspace successfully"})
			return
		}
		p, err := s.papers.GetByID(r.Context(), u.ID, id)
		if err != nil {
			s.writeRepoErr(w, err, "paper not found")
			return
		}
		if err := s.papers.Delete(r.Context(), u.ID, id); err != nil {
			s.writeRepoErr(w, err, "paper not found")
			return
		}
		if p.FilePath != "" {
			if err := os.Remove(p.FilePath); err != nil && !os.IsNotExist(err) {
				s.log.Warnw("remove paper file", "path", p.FilePath, "error", err)
			}
		}
		writeJSON(w, http.StatusOK, map[string]any{"message": "Paper deleted successfully"})
	default:
		methodNotAllowed(w)
	}
}

func (s *Server) handlePaperUpload(w http.ResponseWriter, r *http.Request, u models.User) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadSize)
	if err := r.ParseMultipartForm(s.cfg.MaxUploadSize); err != nil {
		writeErr(w, http.StatusBadRequest, fmt.Errorf("file too large"))
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeErr(w, http.StatusBadRequest, fmt.Errorf("no file provided"))
		return
	}
	defer file.Close()

	if !strings.HasSuffix(strings.ToLower(header.Filename), ".pdf") {
		writeErr(w, http.StatusBadRequest, fmt.Errorf("only pdf files are allowed"))
		return
	}

	userDir := filepath.Join(s.cfg.UploadDir, fmt.Sprintf("%d", u.ID))
	if err := util.EnsureDir(userDir); err != nil {
		writeErr(w, http.StatusInternalServerError, err)
		return
	}
	path := util.SafeJoin(userDir, header.Filename)
	dst, err := os.Create(path)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err)
		return
	}
	size, err := io.Copy(dst, file)
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		writeErr(w, http.StatusInternalServerError, fmt.Errorf("write upload: %w", err))
		return
	}

	title := strings.TrimSpace(r.FormValue("title"))
	if title == "" {
		title = strings.TrimSuffix(header.Filename, ".pdf")
	}

	p, err := s.papers.Create(r.Context(), models.Paper{
		Title:         title,
		FilePath:      path,
		FileSize:      size,
		ExtractedText: extract.TextFromPDF(path),
		OwnerID:       u.ID,
	})
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err)
		return
	}

	var wsIDs []int64
	if raw := r.FormValue("workspace_ids"); raw != "" {
		_ = json.Unmarshal([]byte(raw), &wsIDs)
	}
	if err := s.papers.AttachWorkspaces(r.Context(), u.ID, p.ID, wsIDs); err != nil {
		writeErr(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusCreated, p)
}
