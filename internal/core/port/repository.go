package port

import (
	"context"
	"errors"

	"campaigns-api/internal/core/domain"
)

// ErrOwnerMissing is returned by SettingRepository writes when the
// referenced campaign no longer exists.
var ErrOwnerMissing = errors.New("owning campaign does not exist")

// CampaignRepository is the outbound port for campaign persistence. Reads
// return campaigns with their settings loaded in insertion order.
type CampaignRepository interface {
	// ListCampaigns returns every campaign ordered by id.
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
	// GetCampaign returns a campaign by id, or nil when it does not exist.
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)
	// CreateCampaign inserts c and assigns its ID.
	CreateCampaign(ctx context.Context, c *domain.Campaign) error
	// UpdateCampaign overwrites the writable fields of the campaign with
	// c.ID. It returns domain.ErrNotFound when no row matches.
	UpdateCampaign(ctx context.Context, c *domain.Campaign) error
	// DeleteCampaign removes the campaign and all of its settings in one
	// transaction. It returns domain.ErrNotFound when no row matches.
	DeleteCampaign(ctx context.Context, id int64) error
}

// SettingRepository is the outbound port for setting persistence.
type SettingRepository interface {
	// ListSettings returns every setting ordered by id.
	ListSettings(ctx context.Context) ([]domain.Setting, error)
	// GetSetting returns a setting by id, or nil when it does not exist.
	GetSetting(ctx context.Context, id int64) (*domain.Setting, error)
	// CreateSetting inserts s and assigns its ID. ErrOwnerMissing is
	// returned when s.CampaignID does not reference a campaign.
	CreateSetting(ctx context.Context, s *domain.Setting) error
	// UpdateSetting overwrites the setting with s.ID. It returns
	// domain.ErrNotFound or ErrOwnerMissing.
	UpdateSetting(ctx context.Context, s *domain.Setting) error
	// DeleteSetting removes a single setting.
	DeleteSetting(ctx context.Context, id int64) error
	// CampaignExists reports whether a campaign with id exists.
	CampaignExists(ctx context.Context, id int64) (bool, error)
}

// AccountRepository stores API accounts.
type AccountRepository interface {
	// GetAccountByUsername returns nil when no account has username.
	GetAccountByUsername(ctx context.Context, username string) (*domain.Account, error)
	// GetAccount returns nil when no account has id.
	GetAccount(ctx context.Context, id int64) (*domain.Account, error)
	// SaveAccount inserts a, or updates the account with the same
	// username, and assigns its ID.
	SaveAccount(ctx context.Context, a *domain.Account) error
}
