package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	tclient "go.temporal.io/sdk/client"
	"go.uber.org/zap"

	"researchhub/internal/config"
	"researchhub/internal/search"
	"researchhub/internal/storage"
)

type Server struct {
	cfg        config.Config
	db         *storage.DB
	users      *storage.UserRepo
	workspaces *storage.WorkspaceRepo
	papers     *storage.PaperRepo
	documents  *storage.DocumentRepo
	analyses   *storage.AnalysisRepo
	searcher   *search.Client
	temporal   tclient.Client
	log        *zap.SugaredLogger
}

func NewServer(cfg config.Config, log *zap.SugaredLogger) (*Server, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	db, err := storage.NewDB(ctx, cfg.PostgresURL)
	if err != nil {
		return nil, err
	}
	if err := db.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}
	tc, err := tclient.Dial(tclient.Options{HostPort: cfg.TemporalAddress})
	if err != nil {
		return nil, err
	}
	return &Server{
		cfg:        cfg,
		db:         db,
		users:      storage.NewUserRepo(db),
		workspaces: storage.NewWorkspaceRepo(db),
		papers:     storage.NewPaperRepo(db),
		documents:  storage.NewDocumentRepo(db),
		analyses:   storage.NewAnalysisRepo(db),
		searcher:   search.NewClient(cfg),
		temporal:   tc,
		log:        log,
	}, nil
}

func (s *Server) Close() {
	s.temporal.Close()
	s.db.Close()
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)

	mux.HandleFunc("/api/auth/register", s.handleRegister)
	mux.HandleFunc("/api/auth/token", s.handleToken)
	mux.HandleFunc("/api/me", s.requireUser(s.handleMe))
	mux.HandleFunc("/api/dashboard", s.requireUser(s.handleDashboard))

	mux.HandleFunc("/api/workspaces", s.requireUser(s.handleWorkspaces))
	mux.HandleFunc("/api/workspaces/", s.requireUser(s.handleWorkspaceScoped))

	mux.HandleFunc("/api/papers", s.requireUser(s.handlePapers))
	mux.HandleFunc("/api/papers/", s.requireUser(s.handlePaperScoped))

	mux.HandleFunc("/api/documents", s.requireUser(s.handleDocuments))
	mux.HandleFunc("/api/documents/", s.requireUser(s.handleDocumentScoped))

	mux.HandleFunc("/api/search/papers", s.requireUser(s.handleSearchPapers))
	mux.HandleFunc("/api/search/import", s.requireUser(s.handleSearchImport))

	mux.HandleFunc("/api/ai-tools/summaries", s.requireUser(s.handleSummaries))
	mux.HandleFunc("/api/ai-tools/insights", s.requireUser(s.handleInsights))
	mux.HandleFunc("/api/ai-tools/literature-review", s.requireUser(s.handleLiteratureReview))
	mux.HandleFunc("/api/ai-tools/analyses", s.requireUser(s.handleAnalyses))
	mux.HandleFunc("/api/ai-tools/analyses/", s.requireUser(s.handleAnalysisScoped))

	return withCORS(mux)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, err error) {
	apiErr := toAPIError(code, err)
	writeJSON(w, code, map[string]any{
		"error": map[string]any{
			"code":    apiErr.Code,
			"message": apiErr.Message,
		},
	})
}

type apiError struct {
	Code    string
	Message string
}

func toAPIError(status int, err error) apiError {
	msg := "Request failed."
	code := "RH-API-4000"
	raw := ""
	if err != nil {
		raw = strings.ToLower(err.Error())
	}

	switch {
	case status >= 500:
		switch {
		case strings.Contains(raw, "relation") && strings.Contains(raw, "does not exist"):
			return apiError{
				Code:    "RH-DB-5001",
				Message: "Database schema is not initialized. Run migrations and retry.",
			}
		case strings.Contains(raw, "connect"), strings.Contains(raw, "dial tcp"), strings.Contains(raw, "connection refused"):
			return apiError{
				Code:    "RH-DB-5002",
				Message: "Database connection is unavailable. Check local services and retry.",
			}
		default:
			return apiError{
				Code:    "RH-API-5000",
				Message: "Internal server error. Please retry or check service logs.",
			}
		}
	case status == http.StatusBadRequest:
		code = "RH-API-4001"
		msg = "Invalid request. Check inputs and retry."
	case status == http.StatusUnauthorized:
		code = "RH-API-4010"
		msg = "Authentication required."
	case status == http.StatusNotFound:
		code = "RH-API-4004"
		msg = "Requested resource was not found."
	case status == http.StatusConflict:
		code = "RH-API-4009"
		msg = "Operation conflicts with current state. Retry after checking status."
	case status == http.StatusMethodNotAllowed:
		code = "RH-API-4005"
		msg = "This endpoint does not support the requested method."
	case status == http.StatusBadGateway:
		code = "RH-API-5020"
		msg = "Upstream provider unavailable. Retry shortly."
	}

	// For 4xx, keep user-safe validation context only.
	if status >= 400 && status < 500 && err != nil {
		low := strings.ToLower(err.Error())
		switch {
		case strings.Contains(low, "no valid papers found"):
			msg = "No valid papers found"
		case strings.Contains(low, "papers have no text content"):
			msg = "Papers have no text content"
		case strings.Contains(low, "need at least 2 papers"):
			msg = "Need at least 2 papers"
		case strings.Contains(low, "email or username already registered"):
			msg = "Email or username already registered"
		case strings.Contains(low, "incorrect email or password"):
			msg = "Incorrect email or password"
		case strings.Contains(low, "only pdf files are allowed"):
			msg = "Only PDF files are allowed"
		case strings.Contains(low, "file too large"):
			msg = "File too large"
		case strings.Contains(low, "invalid json"):
			msg = "Malformed JSON request body."
		case strings.Contains(low, "missing bearer token"), strings.Contains(low, "invalid token"):
			msg = "Could not validate credentials"
		case strings.Contains(low, "workspace not found"):
			msg = "Workspace not found"
		case strings.Contains(low, "paper not found"):
			msg = "Paper not found"
		case strings.Contains(low, "document not found"):
			msg = "Document not found"
		case strings.Contains(low, "analysis not found"):
			msg = "Analysis not found"
		}
	}

	return apiError{Code: code, Message: msg}
}

func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func methodNotAllowed(w http.ResponseWriter) {
	writeErr(w, http.StatusMethodNotAllowed, fmt.Errorf("method not allowed"))
}
