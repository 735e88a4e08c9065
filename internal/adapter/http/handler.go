package httpadapter

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"campaigns-api/internal/core/port"
)

// Deps are the collaborators of the HTTP adapter. Ping and Registry are
// optional: without Ping the health check always succeeds, without
// Registry a private registry is used.
type Deps struct {
	Campaigns port.CampaignUseCase
	Settings  port.SettingUseCase
	Auth      port.AuthUseCase
	Ping      func(ctx context.Context) error
	Registry  *prometheus.Registry
}

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. Resource routes sit behind the bearer token gate; the token,
// health and metrics routes do not.
type Handler struct {
	campaigns port.CampaignUseCase
	settings  port.SettingUseCase
	auth      port.AuthUseCase
	ping      func(ctx context.Context) error
	logger    *slog.Logger
	metrics   *metrics
	router    chi.Router
}

// NewHandler creates a handler with all routes configured. Trailing
// slashes are optional on every route.
func NewHandler(deps Deps, logger *slog.Logger) *Handler {
	reg := deps.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	h := &Handler{
		campaigns: deps.Campaigns,
		settings:  deps.Settings,
		auth:      deps.Auth,
		ping:      deps.Ping,
		logger:    logger,
		metrics:   newMetrics(reg),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID, h.observe, middleware.Recoverer, middleware.StripSlashes)
	r.NotFound(h.handleNotFound)
	r.MethodNotAllowed(h.handleMethodNotAllowed)

	r.Get("/healthz", h.handleHealth)
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	r.Route("/api", func(r chi.Router) {
		r.Post("/token", h.handleObtainToken)
		r.Post("/token/refresh", h.handleRefreshToken)
		r.Post("/token/verify", h.handleVerifyToken)

		r.Route("/campaigns", func(r chi.Router) {
			r.Use(h.authenticate)

			r.Route("/campaign", func(r chi.Router) {
				r.Get("/", h.handleListCampaigns)
				r.Post("/", h.handleCreateCampaign)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.handleGetCampaign)
					r.Put("/", h.handleUpdateCampaign(false))
					r.Patch("/", h.handleUpdateCampaign(true))
					r.Delete("/", h.handleDeleteCampaign)
				})
			})

			r.Route("/setting", func(r chi.Router) {
				r.Get("/", h.handleListSettings)
				r.Post("/", h.handleCreateSetting)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.handleGetSetting)
					r.Put("/", h.handleUpdateSetting(false))
					r.Patch("/", h.handleUpdateSetting(true))
					r.Delete("/", h.handleDeleteSetting)
				})
			})
		})
	})

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if h.ping != nil {
		if err := h.ping(r.Context()); err != nil {
			h.logger.Error("health check failed", slog.Any("error", err))
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
