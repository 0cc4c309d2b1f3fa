// Package siteplanview собирает HTTP-приложение: маршруты, сервисы и сервер.
package siteplanview

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/siteplan-view/internal/http/handlers/currentuser/actionlog"
	"github.com/magabrotheeeer/siteplan-view/internal/http/handlers/currentuser/can"
	"github.com/magabrotheeeer/siteplan-view/internal/http/handlers/currentuser/locale"
	"github.com/magabrotheeeer/siteplan-view/internal/http/handlers/currentuser/me"
	"github.com/magabrotheeeer/siteplan-view/internal/http/handlers/health"
	"github.com/magabrotheeeer/siteplan-view/internal/http/handlers/siteplan/assemble"
	"github.com/magabrotheeeer/siteplan-view/internal/http/handlers/siteplan/read"
	"github.com/magabrotheeeer/siteplan-view/internal/http/handlers/siteplan/remove"
	"github.com/magabrotheeeer/siteplan-view/internal/http/handlers/siteplan/store"
	"github.com/magabrotheeeer/siteplan-view/internal/http/middlewarectx"
	userservice "github.com/magabrotheeeer/siteplan-view/internal/services/currentuser"
	planservice "github.com/magabrotheeeer/siteplan-view/internal/services/siteplan"
)

// Deps — зависимости маршрутов.
type Deps struct {
	Logger         *slog.Logger
	CurrentUser    *userservice.CurrentUserService
	SitePlans      *planservice.SitePlanService
	Health         health.Checker
	Metrics        http.Handler
	RateLimitRPS   float64
	RateLimitBurst int
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, d Deps) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
	)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middlewarectx.RateLimitMiddleware(d.Logger, d.RateLimitRPS, d.RateLimitBurst))

		r.Get("/me", me.New(d.Logger, d.CurrentUser).ServeHTTP)
		r.Get("/me/locale", locale.New(d.Logger, d.CurrentUser).ServeHTTP)
		r.Get("/me/actions", actionlog.New(d.Logger, d.CurrentUser).ServeHTTP)
		r.Get("/me/sites/{siteID}/can/{capability}", can.New(d.Logger, d.CurrentUser).ServeHTTP)

		r.Post("/plans/assemble", assemble.New(d.Logger, d.SitePlans).ServeHTTP)
		r.Put("/sites/{siteID}/plan", store.New(d.Logger, d.SitePlans).ServeHTTP)
		r.Get("/sites/{siteID}/plan", read.New(d.Logger, d.SitePlans).ServeHTTP)
		r.Delete("/sites/{siteID}/plan", remove.New(d.Logger, d.SitePlans).ServeHTTP)
	})

	r.Get("/health", health.New(d.Logger, d.Health).ServeHTTP)
	if d.Metrics != nil {
		r.Handle("/metrics", d.Metrics)
	}
}
