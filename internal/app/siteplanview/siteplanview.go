package siteplanview

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/magabrotheeeer/siteplan-view/internal/cache"
	"github.com/magabrotheeeer/siteplan-view/internal/config"
	"github.com/magabrotheeeer/siteplan-view/internal/lib/sl"
	"github.com/magabrotheeeer/siteplan-view/internal/metrics"
	"github.com/magabrotheeeer/siteplan-view/internal/plans"
	"github.com/magabrotheeeer/siteplan-view/internal/selectors/currentuser"
	userservice "github.com/magabrotheeeer/siteplan-view/internal/services/currentuser"
	planservice "github.com/magabrotheeeer/siteplan-view/internal/services/siteplan"
	"github.com/magabrotheeeer/siteplan-view/internal/storage/snapshot"
)

// App — HTTP-приложение siteplan-view.
type App struct {
	server  *http.Server
	logger  *slog.Logger
	cache   *cache.Cache
	states  *snapshot.Store
	metrics *metrics.Metrics
}

// New загружает снимок состояния, подключается к redis и собирает маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "app.siteplanview.New"

	loc, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	states, err := snapshot.New(cfg.SnapshotPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	currentUserService := userservice.NewCurrentUserService(states, currentuser.NewActionLog(m.ObserveActionLog), logger)
	sitePlanService := planservice.NewSitePlanService(cacheRedis, plans.NewAssembler(loc, m.ObservePlan), cfg.PlanCacheTTL, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, Deps{
		Logger:         logger,
		CurrentUser:    currentUserService,
		SitePlans:      sitePlanService,
		Health:         cacheRedis,
		Metrics:        promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		RateLimitRPS:   cfg.RPS,
		RateLimitBurst: cfg.Burst,
	})

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server:  srv,
		logger:  logger,
		cache:   cacheRedis,
		states:  states,
		metrics: m,
	}, nil
}

// Run запускает сервер и ждёт отмены ctx. SIGHUP перечитывает снимок состояния.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)

	for {
		select {
		case <-hup:
			a.reload()
		case err := <-errCh:
			_ = a.cache.Close()
			return err
		case <-ctx.Done():
			timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			a.logger.Info("shutting down HTTP server gracefully")
			err := a.server.Shutdown(timeoutCtx)
			if cerr := a.cache.Close(); cerr != nil {
				a.logger.Warn("failed to close cache", sl.Err(cerr))
			}
			return err
		}
	}
}

func (a *App) reload() {
	err := a.states.Reload()
	a.metrics.ObserveReload(err)
	if err != nil {
		a.logger.Error("failed to reload state snapshot", sl.Err(err))
		return
	}
	a.logger.Info("state snapshot reloaded")
}
