package httpadapter

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"slices"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	jwtadapter "campaigns-api/internal/adapter/jwt"
	"campaigns-api/internal/adapter/usecase"
	"campaigns-api/internal/config/configs"
	"campaigns-api/internal/core/domain"
	"campaigns-api/internal/core/port"
)

// memStore keeps campaigns, settings and accounts in memory with the same
// contract as the postgres repositories.
type memStore struct {
	mu        sync.Mutex
	nextID    int64
	campaigns map[int64]domain.Campaign
	settings  map[int64]domain.Setting
	accounts  map[int64]domain.Account
}

func newMemStore() *memStore {
	return &memStore{
		campaigns: make(map[int64]domain.Campaign),
		settings:  make(map[int64]domain.Setting),
		accounts:  make(map[int64]domain.Account),
	}
}

func (m *memStore) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *memStore) withSettings(c domain.Campaign) domain.Campaign {
	c.Settings = []domain.Setting{}
	for _, s := range m.sortedSettings() {
		if s.CampaignID == c.ID {
			c.Settings = append(c.Settings, s)
		}
	}
	return c
}

func (m *memStore) sortedSettings() []domain.Setting {
	out := make([]domain.Setting, 0, len(m.settings))
	for _, s := range m.settings {
		out = append(out, s)
	}
	slices.SortFunc(out, func(a, b domain.Setting) int { return int(a.ID - b.ID) })
	return out
}

func (m *memStore) ListCampaigns(context.Context) ([]domain.Campaign, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Campaign, 0, len(m.campaigns))
	for _, c := range m.campaigns {
		out = append(out, m.withSettings(c))
	}
	slices.SortFunc(out, func(a, b domain.Campaign) int { return int(a.ID - b.ID) })
	return out, nil
}

func (m *memStore) GetCampaign(_ context.Context, id int64) (*domain.Campaign, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.campaigns[id]
	if !ok {
		return nil, nil
	}
	c = m.withSettings(c)
	return &c, nil
}

func (m *memStore) CreateCampaign(_ context.Context, c *domain.Campaign) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c.ID = m.id()
	m.campaigns[c.ID] = *c
	return nil
}

func (m *memStore) UpdateCampaign(_ context.Context, c *domain.Campaign) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.campaigns[c.ID]; !ok {
		return domain.ErrNotFound
	}
	m.campaigns[c.ID] = *c
	return nil
}

func (m *memStore) DeleteCampaign(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.campaigns[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.campaigns, id)
	for sid, s := range m.settings {
		if s.CampaignID == id {
			delete(m.settings, sid)
		}
	}
	return nil
}

func (m *memStore) ListSettings(context.Context) ([]domain.Setting, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sortedSettings(), nil
}

func (m *memStore) GetSetting(_ context.Context, id int64) (*domain.Setting, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.settings[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (m *memStore) CreateSetting(_ context.Context, s *domain.Setting) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.campaigns[s.CampaignID]; !ok {
		return port.ErrOwnerMissing
	}
	s.ID = m.id()
	m.settings[s.ID] = *s
	return nil
}

func (m *memStore) UpdateSetting(_ context.Context, s *domain.Setting) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.settings[s.ID]; !ok {
		return domain.ErrNotFound
	}
	if _, ok := m.campaigns[s.CampaignID]; !ok {
		return port.ErrOwnerMissing
	}
	m.settings[s.ID] = *s
	return nil
}

func (m *memStore) DeleteSetting(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.settings[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.settings, id)
	return nil
}

func (m *memStore) CampaignExists(_ context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.campaigns[id]
	return ok, nil
}

func (m *memStore) GetAccountByUsername(_ context.Context, username string) (*domain.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.accounts {
		if a.Username == username {
			return &a, nil
		}
	}
	return nil, nil
}

func (m *memStore) GetAccount(_ context.Context, id int64) (*domain.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.accounts[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (m *memStore) SaveAccount(_ context.Context, a *domain.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, existing := range m.accounts {
		if existing.Username == a.Username {
			a.ID = id
			m.accounts[id] = *a
			return nil
		}
	}
	a.ID = m.id()
	m.accounts[a.ID] = *a
	return nil
}

type flow struct {
	t     *testing.T
	h     *Handler
	store *memStore
	token string
}

func newFlow(t *testing.T) *flow {
	store := newMemStore()
	hash, err := bcrypt.GenerateFromPassword([]byte("testpassword"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, store.SaveAccount(context.Background(), &domain.Account{
		Username:     "testuser",
		PasswordHash: string(hash),
		IsActive:     true,
	}))

	tokens := jwtadapter.NewTokenService(configs.Auth{
		SigningKey: "flow-test-key",
		AccessTTL:  time.Minute,
		RefreshTTL: time.Hour,
	})
	h := NewHandler(Deps{
		Campaigns: usecase.NewCampaignUseCase(store),
		Settings:  usecase.NewSettingUseCase(store),
		Auth:      usecase.NewAuthUseCase(store, tokens),
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return &flow{t: t, h: h, store: store}
}

func (f *flow) login() {
	rec := serve(f.h, http.MethodPost, "/api/token/", `{"username":"testuser","password":"testpassword"}`, "")
	require.Equal(f.t, http.StatusOK, rec.Code, rec.Body.String())

	var pair struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
	}
	require.NoError(f.t, json.Unmarshal(rec.Body.Bytes(), &pair))
	require.NotEmpty(f.t, pair.Access)
	require.NotEmpty(f.t, pair.Refresh)
	f.token = pair.Access
}

func (f *flow) do(method, path, body string) (int, map[string]any) {
	rec := serve(f.h, method, path, body, f.token)
	if rec.Body.Len() == 0 {
		return rec.Code, nil
	}
	var out map[string]any
	require.NoError(f.t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return rec.Code, out
}

func TestCascadeDeleteFlow(t *testing.T) {
	f := newFlow(t)
	f.login()

	code, campaign := f.do(http.MethodPost, "/api/campaigns/campaign/",
		`{"name":"Test","override_price":"100.00","start_date":"2024-01-01T00:00:00Z"}`)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "Test", campaign["name"])
	assert.Equal(t, "100.00", campaign["override_price"])
	assert.Equal(t, []any{}, campaign["settings"])
	campaignID := int64(campaign["id"].(float64))

	code, setting := f.do(http.MethodPost, "/api/campaigns/setting/",
		`{"campaign":`+strconv.FormatInt(campaignID, 10)+`,"max_price":"200.00"}`)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, false, setting["enabled"])
	assert.Equal(t, "200.00", setting["max_price"])
	settingID := int64(setting["id"].(float64))

	code, campaign = f.do(http.MethodGet, "/api/campaigns/campaign/"+strconv.FormatInt(campaignID, 10)+"/", "")
	require.Equal(t, http.StatusOK, code)
	require.Len(t, campaign["settings"], 1)

	code, _ = f.do(http.MethodDelete, "/api/campaigns/campaign/"+strconv.FormatInt(campaignID, 10)+"/", "")
	require.Equal(t, http.StatusNoContent, code)

	code, body := f.do(http.MethodGet, "/api/campaigns/setting/"+strconv.FormatInt(settingID, 10)+"/", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Not found.", body["detail"])

	code, _ = f.do(http.MethodGet, "/api/campaigns/campaign/"+strconv.FormatInt(campaignID, 10)+"/", "")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestValidationFlow(t *testing.T) {
	f := newFlow(t)
	f.login()

	code, body := f.do(http.MethodPost, "/api/campaigns/campaign/",
		`{"name":"","override_price":"invalid_price","start_date":"invalid_date"}`)
	require.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, body, "name")
	assert.Contains(t, body, "override_price")
	assert.Contains(t, body, "start_date")

	code, body = f.do(http.MethodPost, "/api/campaigns/setting/", `{"campaign":999,"max_price":"1.00"}`)
	require.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, []any{`Invalid pk "999" - object does not exist.`}, body["campaign"])

	campaigns, err := f.store.ListCampaigns(context.Background())
	require.NoError(t, err)
	assert.Empty(t, campaigns)
}

func TestPartialUpdateFlow(t *testing.T) {
	f := newFlow(t)
	f.login()

	code, campaign := f.do(http.MethodPost, "/api/campaigns/campaign/",
		`{"name":"Spring","override_price":"10","start_date":"2024-03-01T08:30:00+02:00"}`)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "2024-03-01T06:30:00Z", campaign["start_date"])
	path := "/api/campaigns/campaign/" + strconv.FormatInt(int64(campaign["id"].(float64)), 10) + "/"

	code, campaign = f.do(http.MethodPatch, path, `{"name":"Summer"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Summer", campaign["name"])
	assert.Equal(t, "10.00", campaign["override_price"])

	code, body := f.do(http.MethodPut, path, `{"name":"Autumn"}`)
	require.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, body, "override_price")
	assert.Contains(t, body, "start_date")

	code, campaign = f.do(http.MethodGet, path, "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Summer", campaign["name"])
}

func TestTokenFlow(t *testing.T) {
	f := newFlow(t)

	rec := serve(f.h, http.MethodPost, "/api/token/", `{"username":"testuser","password":"wrongpassword"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = serve(f.h, http.MethodPost, "/api/token/", `{"username":"testuser","password":"testpassword"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var pair map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pair))

	rec = serve(f.h, http.MethodGet, "/api/campaigns/campaign/", "", pair["refresh"])
	assert.Equal(t, http.StatusUnauthorized, rec.Code, "refresh token must not open the resources")

	rec = serve(f.h, http.MethodPost, "/api/token/refresh/", `{"refresh":"`+pair["refresh"]+`"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var refreshed map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &refreshed))
	require.NotEmpty(t, refreshed["access"])

	rec = serve(f.h, http.MethodPost, "/api/token/verify/", `{"token":"`+refreshed["access"]+`"}`, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{}`, rec.Body.String())

	rec = serve(f.h, http.MethodPost, "/api/token/verify/", `{"token":"garbage"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = serve(f.h, http.MethodGet, "/api/campaigns/campaign/", "", refreshed["access"])
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	acc, err := f.store.GetAccountByUsername(context.Background(), "testuser")
	require.NoError(t, err)
	acc.IsActive = false
	require.NoError(t, f.store.SaveAccount(context.Background(), acc))

	rec = serve(f.h, http.MethodGet, "/api/campaigns/campaign/", "", refreshed["access"])
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "user_inactive")
}

func TestSettingItemFlow(t *testing.T) {
	f := newFlow(t)
	f.login()

	code, campaign := f.do(http.MethodPost, "/api/campaigns/campaign/",
		`{"name":"Owner","override_price":"5.00","start_date":"2024-01-01T00:00:00Z"}`)
	require.Equal(t, http.StatusCreated, code)
	owner := strconv.FormatInt(int64(campaign["id"].(float64)), 10)

	code, setting := f.do(http.MethodPost, "/api/campaigns/setting/",
		`{"campaign":`+owner+`,"max_price":"10.00","enabled":true}`)
	require.Equal(t, http.StatusCreated, code)
	path := "/api/campaigns/setting/" + strconv.FormatInt(int64(setting["id"].(float64)), 10) + "/"

	code, setting = f.do(http.MethodGet, path, "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "10.00", setting["max_price"])
	assert.Equal(t, true, setting["enabled"])

	code, setting = f.do(http.MethodPut, path, `{"campaign":`+owner+`,"max_price":"12.5"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "12.50", setting["max_price"])
	assert.Equal(t, true, setting["enabled"], "omitted enabled keeps the stored value")

	code, body := f.do(http.MethodPatch, path, `{"campaign":999}`)
	require.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, []any{`Invalid pk "999" - object does not exist.`}, body["campaign"])

	code, setting = f.do(http.MethodPatch, path, `{"enabled":false}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, false, setting["enabled"])
	assert.Equal(t, "12.50", setting["max_price"])

	code, _ = f.do(http.MethodDelete, path, "")
	require.Equal(t, http.StatusNoContent, code)

	code, _ = f.do(http.MethodGet, path, "")
	assert.Equal(t, http.StatusNotFound, code)
	code, _ = f.do(http.MethodDelete, path, "")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestCampaignInputMatchesStoredForm(t *testing.T) {
	f := newFlow(t)
	f.login()

	code, campaign := f.do(http.MethodPost, "/api/campaigns/campaign/",
		`{"name":"Precise","override_price":"1.00","start_date":"2024-01-01T00:00:00.123456789Z"}`)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "2024-01-01T00:00:00.123456Z", campaign["start_date"])

	code, body := f.do(http.MethodPost, "/api/campaigns/campaign/",
		`{"name":"a\u0000b","override_price":"1.00","start_date":"2024-01-01T00:00:00Z"}`)
	require.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, []any{"Null characters are not allowed."}, body["name"])
}
