package usecase

import (
	"context"
	"fmt"

	"campaigns-api/internal/core/domain"
	"campaigns-api/internal/core/port"
)

// CampaignUseCase implements port.CampaignUseCase on top of a
// CampaignRepository. It owns field validation; the repository only sees
// values that satisfy the campaign constraints.
type CampaignUseCase struct {
	repo port.CampaignRepository
}

// NewCampaignUseCase creates a new usecase with the provided repository.
func NewCampaignUseCase(repo port.CampaignRepository) *CampaignUseCase {
	return &CampaignUseCase{repo: repo}
}

// ListCampaigns returns all campaigns with their settings.
func (u *CampaignUseCase) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	return u.repo.ListCampaigns(ctx)
}

// GetCampaign returns one campaign with its settings, or domain.ErrNotFound.
func (u *CampaignUseCase) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	c, err := u.repo.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

// CreateCampaign validates in and stores a new campaign. All fields are
// required. The result has an empty settings list.
func (u *CampaignUseCase) CreateCampaign(ctx context.Context, in port.CampaignInput) (*domain.Campaign, error) {
	var c domain.Campaign
	if err := applyCampaignInput(&c, in, false); err != nil {
		return nil, err
	}
	if err := u.repo.CreateCampaign(ctx, &c); err != nil {
		return nil, fmt.Errorf("create campaign: %w", err)
	}
	c.Settings = []domain.Setting{}
	return &c, nil
}

// UpdateCampaign loads the campaign, applies in and stores it. With
// partial set only the supplied fields are validated and changed.
func (u *CampaignUseCase) UpdateCampaign(ctx context.Context, id int64, in port.CampaignInput, partial bool) (*domain.Campaign, error) {
	c, err := u.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if err = applyCampaignInput(c, in, partial); err != nil {
		return nil, err
	}
	if err = u.repo.UpdateCampaign(ctx, c); err != nil {
		return nil, fmt.Errorf("update campaign %d: %w", id, err)
	}
	return c, nil
}

// DeleteCampaign removes the campaign together with its settings.
func (u *CampaignUseCase) DeleteCampaign(ctx context.Context, id int64) error {
	if err := u.repo.DeleteCampaign(ctx, id); err != nil {
		return fmt.Errorf("delete campaign %d: %w", id, err)
	}
	return nil
}

// applyCampaignInput validates every supplied field of in and writes the
// parsed values into c. Nothing is written unless all fields are valid.
func applyCampaignInput(c *domain.Campaign, in port.CampaignInput, partial bool) error {
	verr := domain.NewValidationError()
	next := *c

	if in.Name != nil {
		name, msgs := parseText(in.Name, nameMaxLength)
		verr.Add("name", msgs...)
		next.Name = name
	} else if !partial {
		verr.Add("name", msgRequired)
	}

	if in.OverridePrice != nil {
		price, msgs := parseDecimal(in.OverridePrice, campaignPriceDigits, priceDecimalPlaces)
		verr.Add("override_price", msgs...)
		next.OverridePrice = price
	} else if !partial {
		verr.Add("override_price", msgRequired)
	}

	if in.StartDate != nil {
		start, msgs := parseDateTime(in.StartDate)
		verr.Add("start_date", msgs...)
		next.StartDate = start
	} else if !partial {
		verr.Add("start_date", msgRequired)
	}

	if err := verr.OrNil(); err != nil {
		return err
	}
	*c = next
	return nil
}
