package httpadapter

import (
	"time"

	"campaigns-api/internal/core/domain"
)

type settingResponse struct {
	ID       int64  `json:"id"`
	MaxPrice string `json:"max_price"`
	Enabled  bool   `json:"enabled"`
	Campaign int64  `json:"campaign"`
}

type campaignResponse struct {
	ID            int64             `json:"id"`
	Name          string            `json:"name"`
	OverridePrice string            `json:"override_price"`
	StartDate     string            `json:"start_date"`
	Settings      []settingResponse `json:"settings"`
}

func newSettingResponse(s domain.Setting) settingResponse {
	return settingResponse{
		ID:       s.ID,
		MaxPrice: s.MaxPrice.StringFixed(2),
		Enabled:  s.Enabled,
		Campaign: s.CampaignID,
	}
}

func newSettingResponses(settings []domain.Setting) []settingResponse {
	out := make([]settingResponse, 0, len(settings))
	for _, s := range settings {
		out = append(out, newSettingResponse(s))
	}
	return out
}

func newCampaignResponse(c domain.Campaign) campaignResponse {
	return campaignResponse{
		ID:            c.ID,
		Name:          c.Name,
		OverridePrice: c.OverridePrice.StringFixed(2),
		StartDate:     c.StartDate.UTC().Format(time.RFC3339Nano),
		Settings:      newSettingResponses(c.Settings),
	}
}

func newCampaignResponses(campaigns []domain.Campaign) []campaignResponse {
	out := make([]campaignResponse, 0, len(campaigns))
	for _, c := range campaigns {
		out = append(out, newCampaignResponse(c))
	}
	return out
}
