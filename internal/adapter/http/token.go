package httpadapter

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"campaigns-api/internal/core/domain"
)

// requiredStrings reads the named string members of fields, collecting a
// field error for each one that is missing, null, not a string or blank.
func requiredStrings(fields map[string]json.RawMessage, names ...string) (map[string]string, error) {
	verr := domain.NewValidationError()
	out := make(map[string]string, len(names))
	for _, name := range names {
		raw, ok := fields[name]
		if !ok {
			verr.Add(name, "This field is required.")
			continue
		}
		if string(bytes.TrimSpace(raw)) == "null" {
			verr.Add(name, "This field may not be null.")
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			verr.Add(name, "Not a valid string.")
			continue
		}
		if strings.TrimSpace(s) == "" {
			verr.Add(name, "This field may not be blank.")
			continue
		}
		out[name] = s
	}
	return out, verr.OrNil()
}

// handleObtainToken exchanges {username, password} for {refresh, access}.
func (h *Handler) handleObtainToken(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeFields(r)
	if err != nil {
		h.writeDecodeError(w, r, err)
		return
	}
	creds, err := requiredStrings(fields, "username", "password")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	pair, err := h.auth.ObtainTokens(r.Context(), creds["username"], creds["password"])
	if err != nil {
		h.logger.Warn("token obtain rejected", slog.String("username", creds["username"]), slog.Any("error", err))
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"refresh": pair.Refresh, "access": pair.Access})
}

// handleRefreshToken exchanges {refresh} for {access}.
func (h *Handler) handleRefreshToken(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeFields(r)
	if err != nil {
		h.writeDecodeError(w, r, err)
		return
	}
	in, err := requiredStrings(fields, "refresh")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	access, err := h.auth.RefreshAccess(r.Context(), in["refresh"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"access": access})
}

// handleVerifyToken answers 200 with an empty object for any valid token.
func (h *Handler) handleVerifyToken(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeFields(r)
	if err != nil {
		h.writeDecodeError(w, r, err)
		return
	}
	in, err := requiredStrings(fields, "token")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err = h.auth.VerifyToken(r.Context(), in["token"]); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, struct{}{})
}
