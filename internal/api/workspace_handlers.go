package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"researchhub/internal/models"
	"researchhub/internal/util"
)

func (s *Server) handleWorkspaces(w http.ResponseWriter, r *http.Request, u models.User) {
	switch r.Method {
	case http.MethodGet:
		workspaces, err := s.workspaces.ListByOwner(r.Context(), u.ID)
		if err != nil {
			writeErr(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusOK, workspaces)
	case http.MethodPost:
		var req struct {
			Name        string `json:"name"`
			Description string `json:"description"`
			Color       string `json:"color"`
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
		ws, err := s.workspaces.Create(r.Context(), models.Workspace{
			Name:        req.Name,
			Description: req.Description,
			Color:       req.Color,
			OwnerID:     u.ID,
		})
		if err != nil {
			writeErr(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusCreated, ws)
	default:
		methodNotAllowed(w)
	}
}

func (s *Server) handleWorkspaceScoped(w http.ResponseWriter, r *http.Request, u models.User) {
	id, tail, ok := pathID(r, "/api/workspaces/")
	if !ok {
		// Trailing-slash collection requests land here too.
		s.handleWorkspaces(w, r, u)
		return
	}
	if tail != "" {
		writeErr(w, http.StatusNotFound, fmt.Errorf("not found"))
		return
	}

	switch r.Method {
	case http.MethodGet:
		ws, err := s.workspaces.GetByID(r.Context(), u.ID, id)
		if err != nil {
			s.writeRepoErr(w, err, "workspace not found")
			return
		}
		writeJSON(w, http.StatusOK, ws)
	case http.MethodPut:
		var req struct {
			Name        *string `json:"name"`
			Description *string `json:"description"`
			Color       *string `json:"color"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeErr(w, http.StatusBadRequest, fmt.Errorf("invalid json: %w", err))
			return
		}
		ws, err := s.workspaces.Update(r.Context(), u.ID, id, req.Name, req.Description, req.Color)
		if err != nil {
			s.writeRepoErr(w, err, "workspace not found")
			return
		}
		writeJSON(w, http.StatusOK, ws)
	case http.MethodDelete:
		if err := s.workspaces.Delete(r.Context(), u.ID, id); err != nil {
			s.writeRepoErr(w, err, "workspace not found")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"message": "Workspace deleted successfully"})
	default:
		methodNotAllowed(w)
	}
}

// writeRepoErr maps storage errors: missing rows become owner-safe 404s,
// everything else is a 500.
func (s *Server) writeRepoErr(w http.ResponseWriter, err error, notFoundMsg string) {
	if errors.Is(err, util.ErrNotFound) {
		writeErr(w, http.StatusNotFound, errors.New(notFoundMsg))
		return
	}
	writeErr(w, http.StatusInternalServerError, err)
}
