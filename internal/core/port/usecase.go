package port

import (
	"context"
	"encoding/json"

	"campaigns-api/internal/core/domain"
)

// CampaignInput carries the client-supplied writable campaign fields as raw
// JSON values. A nil field was omitted by the client; a JSON null is kept
// as the literal null so it can be rejected explicitly.
type CampaignInput struct {
	Name          json.RawMessage
	OverridePrice json.RawMessage
	StartDate     json.RawMessage
}

// SettingInput carries the client-supplied writable setting fields. See
// CampaignInput for the meaning of nil.
type SettingInput struct {
	Campaign json.RawMessage
	MaxPrice json.RawMessage
	Enabled  json.RawMessage
}

// CampaignUseCase is the inbound port for the campaign resource. Invalid
// input yields a *domain.ValidationError, unknown identifiers yield
// domain.ErrNotFound.
type CampaignUseCase interface {
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)
	CreateCampaign(ctx context.Context, in CampaignInput) (*domain.Campaign, error)
	// UpdateCampaign replaces all writable fields, or only the supplied
	// ones when partial is set.
	UpdateCampaign(ctx context.Context, id int64, in CampaignInput, partial bool) (*domain.Campaign, error)
	DeleteCampaign(ctx context.Context, id int64) error
}

// SettingUseCase is the inbound port for the setting resource.
type SettingUseCase interface {
	ListSettings(ctx context.Context) ([]domain.Setting, error)
	GetSetting(ctx context.Context, id int64) (*domain.Setting, error)
	CreateSetting(ctx context.Context, in SettingInput) (*domain.Setting, error)
	UpdateSetting(ctx context.Context, id int64, in SettingInput, partial bool) (*domain.Setting, error)
	DeleteSetting(ctx context.Context, id int64) error
}
