package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"researchhub/internal/models"
)

func (s *Server) handleDocuments(w http.ResponseWriter, r *http.Request, u models.User) {
	switch r.Method {
	case http.MethodGet:
		docs, err := s.documents.ListByOwner(r.Context(), u.ID,
			queryInt64(r, "workspace_id"), r.URL.Query().Get("document_type"))
		if err != nil {
			writeErr(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusOK, docs)
	case http.MethodPost:
		var req struct {
			Name         string `json:"name"`
			Content      string `json:"content"`
			DocumentType string `json:"document_type"`
			ParentID     *int64 `json:"parent_id"`
			WorkspaceID  *int64 `json:"workspace_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeErr(w, http.StatusBadRequest, fmt.Errorf("invalid json: %w", err))
			return
		}
		req.Name = strings.TrimSpace(req.Name)
		if req.Name == "" {
			writeErr(w, http.StatusBadRequest, fmt.Errorf("name is required"))
			return
		}
		doc, err := s.documents.Create(r.Context(), models.Document{
			Name:         req.Name,
			Content:      req.Content,
			DocumentType: req.DocumentType,
			ParentID:     req.ParentID,
			WorkspaceID:  req.WorkspaceID,
			OwnerID:      u.ID,
		})
		if err != nil {
			writeErr(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusCreated, doc)
	default:
		methodNotAllowed(w)
	}
}

func (s *Server) handleDocumentScoped(w http.ResponseWriter, r *http.Request, u models.User) {
	id, tail, ok := pathID(r, "/api/documents/")
	if !ok {
		s.handleDocuments(w, r, u)
		return
	}

	if tail == "star" {
		if r.Method != http.MethodPost {
			methodNotAllowed(w)
			return
		}
		starred, err := s.documents.ToggleStar(r.Context(), u.ID, id)
		if err != nil {
			s.writeRepoErr(w, err, "document not found")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"is_starred": starred})
		return
	}
	if tail != "" {
		writeErr(w, http.StatusNotFound, fmt.Errorf("not found"))
		return
	}

	switch r.Method {
	case http.MethodGet:
		doc, err := s.documents.GetByID(r.Context(), u.ID, id)
		if err != nil {
			s.writeRepoErr(w, err, "document not found")
			return
		}
		writeJSON(w, http.StatusOK, doc)
	case http.MethodPut:
		var req struct {
			Name      *string `json:"name"`
			Content   *string `json:"content"`
			IsStarred *bool   `json:"is_starred"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeErr(w, http.StatusBadRequest, fmt.Errorf("invalid json: %w", err))
			return
		}
		doc, err := s.documents.Update(r.Context(), u.ID, id, req.Name, req.Content, req.IsStarred)
		if err != nil {
			s.writeRepoErr(w, err, "document not found")
			return
		}
		writeJSON(w, http.StatusOK, doc)
	case http.MethodDelete:
		if err := s.documents.Delete(r.Context(), u.ID, id); err != nil {
			s.writeRepoErr(w, err, "document not found")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"message": "Document deleted successfully"})
	default:
		methodNotAllowed(w)
	}
}
