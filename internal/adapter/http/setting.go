package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"campaigns-api/internal/core/port"
)

func settingInput(fields map[string]json.RawMessage) port.SettingInput {
	return port.SettingInput{
		Campaign: fields["campaign"],
		MaxPrice: fields["max_price"],
		Enabled:  fields["enabled"],
	}
}

// handleListSettings returns all settings across campaigns.
func (h *Handler) handleListSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settings.ListSettings(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newSettingResponses(settings))
}

func (h *Handler) handleCreateSetting(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeFields(r)
	if err != nil {
		h.writeDecodeError(w, r, err)
		return
	}
	s, err := h.settings.CreateSetting(r.Context(), settingInput(fields))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.logAudit(r, "setting created", slog.Int64("setting_id", s.ID), slog.Int64("campaign_id", s.CampaignID))
	writeJSON(w, http.StatusCreated, newSettingResponse(*s))
}

func (h *Handler) handleGetSetting(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.handleNotFound(w, r)
		return
	}
	s, err := h.settings.GetSetting(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newSettingResponse(*s))
}

func (h *Handler) handleUpdateSetting(partial bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			h.handleNotFound(w, r)
			return
		}
		fields, err := decodeFields(r)
		if err != nil {
			h.writeDecodeError(w, r, err)
			return
		}
		s, err := h.settings.UpdateSetting(r.Context(), id, settingInput(fields), partial)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		h.logAudit(r, "setting updated", slog.Int64("setting_id", s.ID), slog.Bool("partial", partial))
		writeJSON(w, http.StatusOK, newSettingResponse(*s))
	}
}

func (h *Handler) handleDeleteSetting(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.handleNotFound(w, r)
		return
	}
	if err := h.settings.DeleteSetting(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.logAudit(r, "setting deleted", slog.Int64("setting_id", id))
	w.WriteHeader(http.StatusNoContent)
}
