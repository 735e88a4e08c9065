package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campaigns-api/internal/core/domain"
	"campaigns-api/internal/core/port"
	"campaigns-api/internal/core/port/mocks"
)

func storedCampaign() *domain.Campaign {
	return &domain.Campaign{
		ID:            3,
		Name:          "Summer",
		OverridePrice: decimal.RequireFromString("100.00"),
		StartDate:     time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC),
		Settings: []domain.Setting{
			{ID: 1, CampaignID: 3, MaxPrice: decimal.RequireFromString("200.00"), Enabled: true},
		},
	}
}

// TestCreateCampaign ensures valid input is stored and returned with an id
// and an empty settings list.
func TestCreateCampaign(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().
		CreateCampaign(mock.Anything, mock.AnythingOfType("*domain.Campaign")).
		Run(func(ctx context.Context, c *domain.Campaign) {
			c.ID = 11
		}).
		Return(nil)

	svc := NewCampaignUseCase(repo)
	got, err := svc.CreateCampaign(context.Background(), port.CampaignInput{
		Name:          raw(`"Test"`),
		OverridePrice: raw(`"100.00"`),
		StartDate:     raw(`"2024-01-01T00:00:00Z"`),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(11), got.ID)
	assert.Equal(t, "Test", got.Name)
	assert.Equal(t, "100.00", got.OverridePrice.StringFixed(2))
	assert.True(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Equal(got.StartDate))
	assert.NotNil(t, got.Settings)
	assert.Empty(t, got.Settings)
}

// TestCreateCampaignReportsAllFields ensures one error carries every
// invalid field and nothing reaches the repository.
func TestCreateCampaignReportsAllFields(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	svc := NewCampaignUseCase(repo)

	_, err := svc.CreateCampaign(context.Background(), port.CampaignInput{
		Name:          raw(`""`),
		OverridePrice: raw(`"invalid_price"`),
		StartDate:     raw(`"invalid_date"`),
	})

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, map[string][]string{
		"name":           {msgBlank},
		"override_price": {msgInvalidNumber},
		"start_date":     {msgDateFormat},
	}, verr.Fields)
}

func TestCreateCampaignRequiresFields(t *testing.T) {
	svc := NewCampaignUseCase(mocks.NewMockCampaignRepository(t))

	_, err := svc.CreateCampaign(context.Background(), port.CampaignInput{})

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Fields, 3)
	assert.Equal(t, []string{msgRequired}, verr.Fields["start_date"])
}

func TestGetCampaignNotFound(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().GetCampaign(mock.Anything, int64(404)).Return(nil, nil)

	_, err := NewCampaignUseCase(repo).GetCampaign(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// TestPartialUpdateCampaign ensures only supplied fields change.
func TestPartialUpdateCampaign(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	before := storedCampaign()
	repo.EXPECT().GetCampaign(mock.Anything, int64(3)).Return(before, nil)

	var saved domain.Campaign
	repo.EXPECT().
		UpdateCampaign(mock.Anything, mock.AnythingOfType("*domain.Campaign")).
		Run(func(ctx context.Context, c *domain.Campaign) {
			saved = *c
		}).
		Return(nil)

	got, err := NewCampaignUseCase(repo).UpdateCampaign(context.Background(), 3, port.CampaignInput{
		Name: raw(`"X"`),
	}, true)
	require.NoError(t, err)

	assert.Equal(t, "X", got.Name)
	assert.Equal(t, "X", saved.Name)
	assert.Equal(t, "100.00", saved.OverridePrice.StringFixed(2))
	assert.True(t, time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC).Equal(saved.StartDate))
	assert.Len(t, got.Settings, 1)
}

func TestFullUpdateCampaignRequiresAllFields(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	stored := storedCampaign()
	repo.EXPECT().GetCampaign(mock.Anything, int64(3)).Return(stored, nil)

	_, err := NewCampaignUseCase(repo).UpdateCampaign(context.Background(), 3, port.CampaignInput{
		Name: raw(`"X"`),
	}, false)

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{msgRequired}, verr.Fields["override_price"])
	assert.Equal(t, []string{msgRequired}, verr.Fields["start_date"])
	assert.NotContains(t, verr.Fields, "name")
	assert.Equal(t, "Summer", stored.Name, "rejected input must not touch the loaded record")
}

func TestUpdateCampaignNotFound(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().GetCampaign(mock.Anything, int64(9)).Return(nil, nil)

	_, err := NewCampaignUseCase(repo).UpdateCampaign(context.Background(), 9, port.CampaignInput{
		Name: raw(`""`),
	}, true)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateCampaignDeletedConcurrently(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().GetCampaign(mock.Anything, int64(3)).Return(storedCampaign(), nil)
	repo.EXPECT().
		UpdateCampaign(mock.Anything, mock.AnythingOfType("*domain.Campaign")).
		Return(domain.ErrNotFound)

	_, err := NewCampaignUseCase(repo).UpdateCampaign(context.Background(), 3, port.CampaignInput{
		Name: raw(`"late"`),
	}, true)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteCampaign(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().DeleteCampaign(mock.Anything, int64(3)).Return(nil)
	repo.EXPECT().DeleteCampaign(mock.Anything, int64(4)).Return(domain.ErrNotFound)

	svc := NewCampaignUseCase(repo)
	assert.NoError(t, svc.DeleteCampaign(context.Background(), 3))
	assert.ErrorIs(t, svc.DeleteCampaign(context.Background(), 4), domain.ErrNotFound)
}

func TestListCampaignsPropagatesStorageError(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	boom := errors.New("connection refused")
	repo.EXPECT().ListCampaigns(mock.Anything).Return(nil, boom)

	_, err := NewCampaignUseCase(repo).ListCampaigns(context.Background())
	assert.ErrorIs(t, err, boom)
}
