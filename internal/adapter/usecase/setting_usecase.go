package usecase

import (
	"context"
	"errors"
	"fmt"

	"campaigns-api/internal/core/domain"
	"campaigns-api/internal/core/port"
)

// SettingUseCase implements port.SettingUseCase. Besides field validation it
// checks that the referenced campaign exists.
type SettingUseCase struct {
	repo port.SettingRepository
}

// NewSettingUseCase creates a new usecase with the provided repository.
func NewSettingUseCase(repo port.SettingRepository) *SettingUseCase {
	return &SettingUseCase{repo: repo}
}

func (u *SettingUseCase) ListSettings(ctx context.Context) ([]domain.Setting, error) {
	return u.repo.ListSettings(ctx)
}

func (u *SettingUseCase) GetSetting(ctx context.Context, id int64) (*domain.Setting, error) {
	s, err := u.repo.GetSetting(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

// CreateSetting validates in and stores a new setting. Enabled defaults
// to false.
func (u *SettingUseCase) CreateSetting(ctx context.Context, in port.SettingInput) (*domain.Setting, error) {
	var s domain.Setting
	label, err := u.applySettingInput(ctx, &s, in, false)
	if err != nil {
		return nil, err
	}
	if err = u.repo.CreateSetting(ctx, &s); err != nil {
		return nil, ownerError(err, label, "create setting")
	}
	return &s, nil
}

// UpdateSetting loads the setting, applies in and stores it. A full update
// that omits enabled keeps the stored value.
func (u *SettingUseCase) UpdateSetting(ctx context.Context, id int64, in port.SettingInput, partial bool) (*domain.Setting, error) {
	s, err := u.GetSetting(ctx, id)
	if err != nil {
		return nil, err
	}
	label, err := u.applySettingInput(ctx, s, in, partial)
	if err != nil {
		return nil, err
	}
	if err = u.repo.UpdateSetting(ctx, s); err != nil {
		return nil, ownerError(err, label, fmt.Sprintf("update setting %d", id))
	}
	return s, nil
}

func (u *SettingUseCase) DeleteSetting(ctx context.Context, id int64) error {
	if err := u.repo.DeleteSetting(ctx, id); err != nil {
		return fmt.Errorf("delete setting %d: %w", id, err)
	}
	return nil
}

// applySettingInput validates the supplied fields of in and writes them
// into s. It returns the campaign reference as sent by the client.
func (u *SettingUseCase) applySettingInput(ctx context.Context, s *domain.Setting, in port.SettingInput, partial bool) (string, error) {
	verr := domain.NewValidationError()
	next := *s
	var label string

	if in.Campaign != nil {
		id, l, msgs := parsePK(in.Campaign)
		if len(msgs) == 0 {
			exists, err := u.repo.CampaignExists(ctx, id)
			if err != nil {
				return "", fmt.Errorf("check campaign %d: %w", id, err)
			}
			if !exists {
				msgs = append(msgs, pkMissing(l))
			}
		}
		verr.Add("campaign", msgs...)
		next.CampaignID = id
		label = l
	} else if !partial {
		verr.Add("campaign", msgRequired)
	}

	if in.MaxPrice != nil {
		price, msgs := parseDecimal(in.MaxPrice, settingPriceDigits, priceDecimalPlaces)
		verr.Add("max_price", msgs...)
		next.MaxPrice = price
	} else if !partial {
		verr.Add("max_price", msgRequired)
	}

	if in.Enabled != nil {
		enabled, msgs := parseBool(in.Enabled)
		verr.Add("enabled", msgs...)
		next.Enabled = enabled
	}

	if err := verr.OrNil(); err != nil {
		return "", err
	}
	*s = next
	if label == "" {
		label = fmt.Sprint(s.CampaignID)
	}
	return label, nil
}

// ownerError turns a lost race with a campaign delete into the same
// validation error a missing reference produces up front.
func ownerError(err error, label, op string) error {
	if errors.Is(err, port.ErrOwnerMissing) {
		verr := domain.NewValidationError()
		verr.Add("campaign", pkMissing(label))
		return verr
	}
	return fmt.Errorf("%s: %w", op, err)
}
