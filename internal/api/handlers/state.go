package handlers

import (
	"context"
	"encoding/json"
	"io"
	"location-weather-service/internal/api/dto"
	"location-weather-service/internal/domain"
	"location-weather-service/internal/services"
	"net/http"
)

const maxSearchBody = 4 << 10

// Workflow is the slice of the workflow controller the HTTP layer needs.
type Workflow interface {
	State() domain.WorkflowState
	Search(ctx context.Context, query string) services.SearchOutcome
}

// StateHandler exposes the workflow state and the search trigger.
type StateHandler struct {
	Workflow Workflow
}

func (h *StateHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, dto.FromState(h.Workflow.State()))
}

// Search runs one search sequence. Workflow failures are not HTTP errors:
// the outcome and the (possibly unchanged) state are returned with 200.
func (h *StateHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req dto.SearchRequest

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxSearchBody))
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	outcome := h.Workflow.Search(r.Context(), req.Query)

	writeJSON(w, r, http.StatusOK, dto.SearchResponse{
		Outcome: string(outcome),
		State:   dto.FromState(h.Workflow.State()),
	})
}
