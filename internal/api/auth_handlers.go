package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"researchhub/internal/auth"
	"researchhub/internal/models"
)

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var req struct {
		Email    string `json:"email"`
		Username string `json:"username"`
		FullName string `json:"full_name"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, fmt.Errorf("invalid json: %w", err))
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	req.Username = strings.TrimSpace(req.Username)
	if req.Email == "" || req.Username == "" || req.Password == "" {
		writeErr(w, http.StatusBadRequest, fmt.Errorf("email, username and password are required"))
		return
	}

	exists, err := s.users.ExistsByEmailOrUsername(r.Context(), req.Email, req.Username)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err)
		return
	}
	if exists {
		writeErr(w, http.StatusBadRequest, fmt.Errorf("email or username already registered"))
		return
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err)
		return
	}
	u, err := s.users.Create(r.Context(), models.User{
		Email:          req.Email,
		Username:       req.Username,
		FullName:       strings.TrimSpace(req.FullName),
		HashedPassword: hashed,
	})
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusCreated, u)
}

// handleToken implements the password grant: form fields "username" (carrying
// the email) and "password", exchanged for a bearer token.
func (s *Server) handleToken(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	if err := r.ParseForm(); err != nil {
		writeErr(w, http.StatusBadRequest, fmt.Errorf("invalid form: %w", err))
		return
	}
	email := strings.TrimSpace(r.PostFormValue("username"))
	password := r.PostFormValue("password")

	u, err := s.users.GetByEmail(r.Context(), email)
	if err != nil || !auth.VerifyPassword(u.HashedPassword, password) {
		w.Header().Set("WWW-Authenticate", "Bearer")
		writeErr(w, http.StatusUnauthorized, fmt.Errorf("incorrect email or password"))
		return
	}

	ttl := time.Duration(s.cfg.AccessTokenTTLMins) * time.Minute
	token, err := auth.CreateAccessToken(s.cfg.JWTSecret, u.Email, ttl)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"access_token": token,
		"token_type":   "bearer",
	})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request, u models.User) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request, u models.User) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	workspaces, err := s.workspaces.ListByOwner(r.Context(), u.ID)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err)
		return
	}
	totalPapers, analyzed, err := s.papers.CountByOwner(r.Context(), u.ID)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err)
		return
	}

	wsList := make([]map[string]any, 0, len(workspaces))
	for _, ws := range workspaces {
		wsList = append(wsList, map[string]any{
			"id":          ws.ID,
			"name":        ws.Name,
			"description": ws.Description,
			"color":       ws.Color,
			"created":     ws.CreatedAt.Format("01/02/2006"),
			"papers":      ws.PapersCount,
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"user": map[string]any{
			"full_name": u.FullName,
			"email":     u.Email,
			"username":  u.Username,
		},
		"stats": map[string]any{
			"total_workspaces": len(workspaces),
			"total_papers":     totalPapers,
			"papers_analyzed":  analyzed,
		},
		"workspaces": wsList,
	})
}
