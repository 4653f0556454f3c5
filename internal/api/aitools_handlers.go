package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	enumspb "go.temporal.io/api/enums/v1"
	tclient "go.temporal.io/sdk/client"

	"researchhub/internal/models"
	"researchhub/internal/workflows"
)

func (s *Server) handleSummaries(w http.ResponseWriter, r *http.Request, u models.User) {
	s.startAnalysisJob(w, r, u, models.AnalysisTypeSummary)
}

func (s *Server) handleInsights(w http.ResponseWriter, r *http.Request, u models.User) {
	s.startAnalysisJob(w, r, u, models.AnalysisTypeInsights)
}

func (s *Server) handleLiteratureReview(w http.ResponseWriter, r *http.Request, u models.User) {
	s.startAnalysisJob(w, r, u, models.AnalysisTypeLiteratureReview)
}

// startAnalysisJob validates synchronously, snapshots the papers, and starts
// the background workflow. The acknowledgment never waits for the job; the
// only way the caller sees the outcome is by listing analyses later.
func (s *Server) startAnalysisJob(w http.ResponseWriter, r *http.Request, u models.User, kind string) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var req struct {
		PaperIDs []int64 `json:"paper_ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, fmt.Errorf("invalid json: %w", err))
		return
	}

	papers, err := s.papers.ListByIDsForOwner(r.Context(), u.ID, req.PaperIDs)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err)
		return
	}

	input, err := buildAnalysisSnapshot(kind, u.ID, papers)
	switch {
	case errors.Is(err, errNoValidPapers):
		writeErr(w, http.StatusNotFound, err)
		return
	case errors.Is(err, errNoTextContent), errors.Is(err, errNeedTwoPapers):
		writeErr(w, http.StatusBadRequest, err)
		return
	case err != nil:
		writeErr(w, http.StatusInternalServerError, err)
		return
	}

	_, err = s.temporal.ExecuteWorkflow(r.Context(), tclient.StartWorkflowOptions{
		ID:                    "analysis-" + uuid.NewString(),
		TaskQueue:             s.cfg.TemporalTaskQueue,
		WorkflowIDReusePolicy: enumspb.WORKFLOW_ID_REUSE_POLICY_REJECT_DUPLICATE,
	}, workflows.AnalysisWorkflow, input)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err)
		return
	}

	s.log.Infow("analysis job started", "analysis_type", kind, "user_id", u.ID, "papers", len(input.PaperIDs))
	writeJSON(w, http.StatusAccepted, map[string]any{
		"message": startMessage(kind),
		"status":  "processing",
	})
}

func (s *Server) handleAnalyses(w http.ResponseWriter, r *http.Request, u models.User) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	limit := 10
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	analyses, err := s.analyses.ListRecent(r.Context(), u.ID, limit)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, analyses)
}

func (s *Server) handleAnalysisScoped(w http.ResponseWriter, r *http.Request, u models.User) {
	id, tail, ok := pathID(r, "/api/ai-tools/analyses/")
	if !ok {
		s.handleAnalyses(w, r, u)
		return
	}
	if tail != "" {
		writeErr(w, http.StatusNotFound, fmt.Errorf("not found"))
		return
	}

	switch r.Method {
	case http.MethodGet:
		a, err := s.analyses.GetByID(r.Context(), u.ID, id)
		if err != nil {
			s.writeRepoErr(w, err, "analysis not found")
			return
		}
		writeJSON(w, http.StatusOK, a)
	case http.MethodDelete:
		if err := s.analyses.Delete(r.Context(), u.ID, id); err != nil {
			s.writeRepoErr(w, err, "analysis not found")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"message": "Analysis deleted successfully"})
	default:
		methodNotAllowed(w)
	}
}
