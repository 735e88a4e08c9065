package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"campaigns-api/internal/core/port"
)

func campaignInput(fields map[string]json.RawMessage) port.CampaignInput {
	return port.CampaignInput{
		Name:          fields["name"],
		OverridePrice: fields["override_price"],
		StartDate:     fields["start_date"],
	}
}

// handleListCampaigns returns every campaign with its nested settings.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.campaigns.ListCampaigns(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newCampaignResponses(campaigns))
}

// handleCreateCampaign validates the body and answers 201 with the stored
// campaign, or 400 with the field errors.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeFields(r)
	if err != nil {
		h.writeDecodeError(w, r, err)
		return
	}
	c, err := h.campaigns.CreateCampaign(r.Context(), campaignInput(fields))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.logAudit(r, "campaign created", slog.Int64("campaign_id", c.ID), slog.String("name", c.String()))
	writeJSON(w, http.StatusCreated, newCampaignResponse(*c))
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.handleNotFound(w, r)
		return
	}
	c, err := h.campaigns.GetCampaign(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newCampaignResponse(*c))
}

// handleUpdateCampaign serves PUT (partial false) and PATCH (partial true).
func (h *Handler) handleUpdateCampaign(partial bool) http.HandlerFunc {
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
		c, err := h.campaigns.UpdateCampaign(r.Context(), id, campaignInput(fields), partial)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		h.logAudit(r, "campaign updated", slog.Int64("campaign_id", c.ID), slog.Bool("partial", partial))
		writeJSON(w, http.StatusOK, newCampaignResponse(*c))
	}
}

// handleDeleteCampaign removes the campaign and its settings.
func (h *Handler) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.handleNotFound(w, r)
		return
	}
	if err := h.campaigns.DeleteCampaign(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.logAudit(r, "campaign deleted", slog.Int64("campaign_id", id))
	w.WriteHeader(http.StatusNoContent)
}

// logAudit records a write together with the account that made it.
func (h *Handler) logAudit(r *http.Request, msg string, attrs ...any) {
	if p, ok := PrincipalFrom(r.Context()); ok {
		attrs = append(attrs, slog.String("account", p.Username))
	}
	h.logger.Info(msg, attrs...)
}
