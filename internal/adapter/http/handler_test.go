package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
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

type testDeps struct {
	handler   *Handler
	campaigns *mocks.MockCampaignUseCase
	settings  *mocks.MockSettingUseCase
	auth      *mocks.MockAuthUseCase
}

func newTestDeps(t *testing.T) testDeps {
	d := testDeps{
		campaigns: mocks.NewMockCampaignUseCase(t),
		settings:  mocks.NewMockSettingUseCase(t),
		auth:      mocks.NewMockAuthUseCase(t),
	}
	d.auth.EXPECT().
		Authenticate(mock.Anything, "valid").
		Return(domain.Principal{AccountID: 1, Username: "ops"}, nil).
		Maybe()
	d.auth.EXPECT().
		Authenticate(mock.Anything, "expired").
		Return(domain.Principal{}, domain.ErrTokenNotValid).
		Maybe()

	d.handler = NewHandler(Deps{
		Campaigns: d.campaigns,
		Settings:  d.settings,
		Auth:      d.auth,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return d
}

func serve(h *Handler, method, path, body, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	return rec
}

func sampleCampaign() *domain.Campaign {
	return &domain.Campaign{
		ID:            1,
		Name:          "Test",
		OverridePrice: decimal.RequireFromString("100"),
		StartDate:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Settings: []domain.Setting{
			{ID: 4, CampaignID: 1, MaxPrice: decimal.RequireFromString("200.5"), Enabled: true},
		},
	}
}

// TestUnauthenticatedListIsRejected ensures the gate answers before any
// use case runs, whatever the stored data.
func TestUnauthenticatedListIsRejected(t *testing.T) {
	d := newTestDeps(t)

	for _, path := range []string{"/api/campaigns/campaign/", "/api/campaigns/setting/"} {
		rec := serve(d.handler, http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
		assert.Equal(t, `Bearer realm="api"`, rec.Header().Get("WWW-Authenticate"))
		assert.JSONEq(t, `{"detail":"Authentication credentials were not provided.","code":"not_authenticated"}`, rec.Body.String())

		rec = serve(d.handler, http.MethodGet, path, "", "expired")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
		assert.Contains(t, rec.Body.String(), "token_not_valid")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/campaigns/campaign/", nil)
	req.Header.Set("Authorization", "Basic b3BzOnB3")
	rec := httptest.NewRecorder()
	d.handler.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUnauthenticatedWriteSkipsValidation(t *testing.T) {
	d := newTestDeps(t)

	rec := serve(d.handler, http.MethodPost, "/api/campaigns/campaign/", `{"name":""}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = serve(d.handler, http.MethodPatch, "/api/campaigns/campaign/1/", `{"name":""}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListCampaigns(t *testing.T) {
	d := newTestDeps(t)
	d.campaigns.EXPECT().ListCampaigns(mock.Anything).Return([]domain.Campaign{*sampleCampaign()}, nil)

	rec := serve(d.handler, http.MethodGet, "/api/campaigns/campaign/", "", "valid")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `[{
		"id": 1,
		"name": "Test",
		"override_price": "100.00",
		"start_date": "2024-01-01T00:00:00Z",
		"settings": [{"id": 4, "max_price": "200.50", "enabled": true, "campaign": 1}]
	}]`, rec.Body.String())
}

func TestListCampaignsEmpty(t *testing.T) {
	d := newTestDeps(t)
	d.campaigns.EXPECT().ListCampaigns(mock.Anything).Return(nil, nil)

	rec := serve(d.handler, http.MethodGet, "/api/campaigns/campaign", "", "valid")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestCreateCampaign(t *testing.T) {
	d := newTestDeps(t)
	created := sampleCampaign()
	created.Settings = []domain.Setting{}
	d.campaigns.EXPECT().
		CreateCampaign(mock.Anything, port.CampaignInput{
			Name:          json.RawMessage(`"Test"`),
			OverridePrice: json.RawMessage(`"100.00"`),
			StartDate:     json.RawMessage(`"2024-01-01T00:00:00Z"`),
		}).
		Return(created, nil)

	rec := serve(d.handler, http.MethodPost, "/api/campaigns/campaign/",
		`{"id": 77, "name":"Test","override_price":"100.00","start_date":"2024-01-01T00:00:00Z","settings":[{"id":1}]}`, "valid")
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":1,"name":"Test","override_price":"100.00","start_date":"2024-01-01T00:00:00Z","settings":[]}`,
		rec.Body.String())
}

func TestCreateCampaignValidationError(t *testing.T) {
	d := newTestDeps(t)
	verr := domain.NewValidationError()
	verr.Add("name", "This field may not be blank.")
	verr.Add("override_price", "A valid number is required.")
	verr.Add("start_date", "Datetime has wrong format.")
	d.campaigns.EXPECT().CreateCampaign(mock.Anything, mock.Anything).Return(nil, verr)

	rec := serve(d.handler, http.MethodPost, "/api/campaigns/campaign/",
		`{"name":"","override_price":"invalid_price","start_date":"invalid_date"}`, "valid")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string][]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body, "name")
	assert.Contains(t, body, "override_price")
	assert.Contains(t, body, "start_date")
}

func TestMalformedBody(t *testing.T) {
	d := newTestDeps(t)

	rec := serve(d.handler, http.MethodPost, "/api/campaigns/campaign/", `{"name":`, "valid")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "JSON parse error")

	rec = serve(d.handler, http.MethodPost, "/api/campaigns/setting/", `[1, 2]`, "valid")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"non_field_errors":["Invalid data. Expected a dictionary, but got list."]}`, rec.Body.String())
}

func TestGetCampaignNotFound(t *testing.T) {
	d := newTestDeps(t)
	d.campaigns.EXPECT().GetCampaign(mock.Anything, int64(9)).Return(nil, domain.ErrNotFound)

	rec := serve(d.handler, http.MethodGet, "/api/campaigns/campaign/9/", "", "valid")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"detail":"Not found."}`, rec.Body.String())

	rec = serve(d.handler, http.MethodGet, "/api/campaigns/campaign/abc/", "", "valid")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateCampaignRoutesPartialFlag(t *testing.T) {
	d := newTestDeps(t)
	in := port.CampaignInput{Name: json.RawMessage(`"X"`)}
	verr := domain.NewValidationError()
	verr.Add("override_price", "This field is required.")
	d.campaigns.EXPECT().UpdateCampaign(mock.Anything, int64(1), in, true).Return(sampleCampaign(), nil)
	d.campaigns.EXPECT().UpdateCampaign(mock.Anything, int64(1), in, false).Return(nil, verr)

	rec := serve(d.handler, http.MethodPatch, "/api/campaigns/campaign/1/", `{"name":"X"}`, "valid")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(d.handler, http.MethodPut, "/api/campaigns/campaign/1/", `{"name":"X"}`, "valid")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"override_price":["This field is required."]}`, rec.Body.String())
}

func TestDeleteCampaign(t *testing.T) {
	d := newTestDeps(t)
	d.campaigns.EXPECT().DeleteCampaign(mock.Anything, int64(1)).Return(nil)

	rec := serve(d.handler, http.MethodDelete, "/api/campaigns/campaign/1/", "", "valid")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestStorageFailureIsHidden(t *testing.T) {
	d := newTestDeps(t)
	d.settings.EXPECT().ListSettings(mock.Anything).Return(nil, errors.New("dial tcp: connection refused"))

	rec := serve(d.handler, http.MethodGet, "/api/campaigns/setting/", "", "valid")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"detail":"A server error occurred."}`, rec.Body.String())
}

func TestCreateSetting(t *testing.T) {
	d := newTestDeps(t)
	d.settings.EXPECT().
		CreateSetting(mock.Anything, port.SettingInput{
			Campaign: json.RawMessage(`1`),
			MaxPrice: json.RawMessage(`"400.00"`),
			Enabled:  json.RawMessage(`false`),
		}).
		Return(&domain.Setting{ID: 2, CampaignID: 1, MaxPrice: decimal.RequireFromString("400")}, nil)

	rec := serve(d.handler, http.MethodPost, "/api/campaigns/setting/",
		`{"campaign":1,"max_price":"400.00","enabled":false}`, "valid")
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":2,"max_price":"400.00","enabled":false,"campaign":1}`, rec.Body.String())
}

func TestMethodNotAllowed(t *testing.T) {
	d := newTestDeps(t)

	rec := serve(d.handler, http.MethodPut, "/api/campaigns/setting/", `{}`, "valid")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.JSONEq(t, `{"detail":"Method \"PUT\" not allowed."}`, rec.Body.String())

	rec = serve(d.handler, http.MethodGet, "/api/token/", "", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestObtainTokenRequiresFields(t *testing.T) {
	d := newTestDeps(t)

	rec := serve(d.handler, http.MethodPost, "/api/token/", `{"username":" "}`, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"username":["This field may not be blank."],"password":["This field is required."]}`, rec.Body.String())
}

func TestObtainTokenRejectsNull(t *testing.T) {
	d := newTestDeps(t)

	rec := serve(d.handler, http.MethodPost, "/api/token/", `{"username":null,"password":"pw"}`, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"username":["This field may not be null."]}`, rec.Body.String())

	rec = serve(d.handler, http.MethodPost, "/api/token/refresh/", `{"refresh":null}`, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"refresh":["This field may not be null."]}`, rec.Body.String())
}

func TestObtainTokenRejected(t *testing.T) {
	d := newTestDeps(t)
	d.auth.EXPECT().ObtainTokens(mock.Anything, "authtest", "wrongpassword").Return(domain.TokenPair{}, domain.ErrNoActiveAccount)

	rec := serve(d.handler, http.MethodPost, "/api/token/", `{"username":"authtest","password":"wrongpassword"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "No active account found with the given credentials")
}

func TestHealth(t *testing.T) {
	d := newTestDeps(t)
	rec := serve(d.handler, http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	failing := NewHandler(Deps{
		Auth: d.auth,
		Ping: func(ctx context.Context) error { return errors.New("down") },
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	rec = serve(failing, http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestMetricsExposeRequests(t *testing.T) {
	d := newTestDeps(t)
	serve(d.handler, http.MethodGet, "/api/campaigns/campaign/", "", "")

	rec := serve(d.handler, http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `http_requests_total{code="401",method="GET"`)
}
