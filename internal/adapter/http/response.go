package httpadapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"campaigns-api/internal/core/domain"
)

const maxBodyBytes = 1 << 20

type detail struct {
	Detail string `json:"detail"`
	Code   string `json:"code,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// the status line is already out; an encode failure can only be a
	// broken connection
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps err onto the status codes of the API and writes the
// matching body. Unknown errors are logged and hidden behind a 500.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		verr    *domain.ValidationError
		authErr *domain.AuthError
	)
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, verr.Fields)
	case errors.As(err, &authErr):
		writeAuthError(w, authErr)
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, detail{Detail: "Not found."})
	default:
		h.logger.Error("request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err))
		writeJSON(w, http.StatusInternalServerError, detail{Detail: "A server error occurred."})
	}
}

func writeAuthError(w http.ResponseWriter, err *domain.AuthError) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="api"`)
	writeJSON(w, http.StatusUnauthorized, detail{Detail: err.Detail, Code: err.Code})
}

func (h *Handler) handleNotFound(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusNotFound, detail{Detail: "Not found."})
}

func (h *Handler) handleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, detail{Detail: fmt.Sprintf("Method %q not allowed.", r.Method)})
}

// decodeFields reads a JSON object body into its raw members so callers can
// tell omitted fields from nulls. An empty body is an empty object.
func decodeFields(r *http.Request) (map[string]json.RawMessage, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return nil, err
	}
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return map[string]json.RawMessage{}, nil
	}

	var doc json.RawMessage
	if err = json.Unmarshal(body, &doc); err != nil {
		return nil, &parseError{err: err}
	}
	if body[0] != '{' {
		verr := domain.NewValidationError()
		verr.Add("non_field_errors", fmt.Sprintf("Invalid data. Expected a dictionary, but got %s.", jsonTypeName(body[0])))
		return nil, verr
	}
	fields := make(map[string]json.RawMessage)
	if err = json.Unmarshal(body, &fields); err != nil {
		return nil, &parseError{err: err}
	}
	return fields, nil
}

func jsonTypeName(first byte) string {
	switch first {
	case '[':
		return "list"
	case '"':
		return "str"
	case 't', 'f':
		return "bool"
	case 'n':
		return "NoneType"
	default:
		return "int"
	}
}

// parseError is a body that is not valid JSON.
type parseError struct {
	err error
}

func (e *parseError) Error() string {
	return "JSON parse error - " + e.err.Error()
}

// writeDecodeError answers a failed decodeFields.
func (h *Handler) writeDecodeError(w http.ResponseWriter, r *http.Request, err error) {
	var perr *parseError
	if errors.As(err, &perr) {
		writeJSON(w, http.StatusBadRequest, detail{Detail: perr.Error()})
		return
	}
	h.writeError(w, r, err)
}

// pathID returns the {id} path parameter. ok is false when it is not an
// integer, which callers answer with 404.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil
}
