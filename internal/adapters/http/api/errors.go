package api

import (
	"errors"
	"net/http"

	"github.com/Kiran-Kumar-Reddy-L/Retail-Intelligence-Engine/internal/adapters/csvfile"
	"github.com/Kiran-Kumar-Reddy-L/Retail-Intelligence-Engine/internal/adapters/repository"
	"github.com/Kiran-Kumar-Reddy-L/Retail-Intelligence-Engine/internal/domain/insight"
)

// ErrBadRequest covers request decoding and parameter shape failures caught
// directly in the handler layer.
var ErrBadRequest = errors.New("bad request")

// errorCode maps a domain error to its boundary status and machine-readable
// code. The core packages know nothing about HTTP; the translation happens
// only here.
func errorCode(err error) (int, string) {
	switch {
	case errors.Is(err, repository.ErrNotLoaded):
		return http.StatusBadRequest, "not_loaded"
	case errors.Is(err, repository.ErrNotProcessed):
		return http.StatusBadRequest, "not_processed"
	case errors.Is(err, csvfile.ErrFileNotFound):
		return http.StatusBadRequest, "file_not_found"
	case errors.Is(err, csvfile.ErrMalformedInput):
		return http.StatusBadRequest, "malformed_input"
	case errors.Is(err, csvfile.ErrSchema):
		return http.StatusBadRequest, "schema_error"
	case errors.Is(err, insight.ErrMissingParameter):
		return http.StatusBadRequest, "missing_parameter"
	case errors.Is(err, insight.ErrInvalidFilter):
		return http.StatusBadRequest, "invalid_filter"
	case errors.Is(err, insight.ErrOutOfRange):
		return http.StatusBadRequest, "out_of_range"
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest, "bad_request"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

// writeDomainError translates err and writes the error response.
func writeDomainError(w http.ResponseWriter, err error) {
	status, code := errorCode(err)
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
