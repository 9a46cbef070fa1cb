package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Kiran-Kumar-Reddy-L/Retail-Intelligence-Engine/internal/domain/clean"
)

// ProcessDependencies is what the preprocess handler needs.
type ProcessDependencies interface {
	ProcessData(ctx context.Context) (clean.Summary, error)
}

// ProcessHandler triggers the preprocessing pass.
type ProcessHandler struct {
	deps ProcessDependencies
}

// NewProcessHandler creates a process handler.
func NewProcessHandler(deps ProcessDependencies) *ProcessHandler {
	return &ProcessHandler{deps: deps}
}

type processResponse struct {
	Message string `json:"message"`
	clean.Summary
}

// HandleProcessData handles POST /process-data.
func (h *ProcessHandler) HandleProcessData(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeDomainError(w, fmt.Errorf("%w: method %s not allowed", ErrBadRequest, r.Method))
		return
	}

	sum, err := h.deps.ProcessData(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, processResponse{Message: "data processed", Summary: sum})
}
