package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// LoadDependencies is what the load handler needs from the service layer.
type LoadDependencies interface {
	LoadData(ctx context.Context, path string) (int, error)
}

// LoadHandler ingests a delimited sales file into the dataset store.
type LoadHandler struct {
	deps LoadDependencies
}

// NewLoadHandler creates a load handler.
func NewLoadHandler(deps LoadDependencies) *LoadHandler {
	return &LoadHandler{deps: deps}
}

type loadRequest struct {
	Path string `json:"path"`
}

type loadResponse struct {
	Message string `json:"message"`
	Rows    int    `json:"rows"`
}

// HandleLoadData handles POST /load-data.
func (h *LoadHandler) HandleLoadData(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeDomainError(w, fmt.Errorf("%w: method %s not allowed", ErrBadRequest, r.Method))
		return
	}

	var req loadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDomainError(w, fmt.Errorf("%w: decode body: %v", ErrBadRequest, err))
		return
	}
	if strings.TrimSpace(req.Path) == "" {
		writeDomainError(w, fmt.Errorf("%w: path is required", ErrBadRequest))
		return
	}

	rows, err := h.deps.LoadData(r.Context(), req.Path)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, loadResponse{Message: "data loaded", Rows: rows})
}
