package health

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/siteplan-view/internal/http/response"
	"github.com/magabrotheeeer/siteplan-view/internal/lib/sl"
)

// Checker проверяет зависимость сервиса.
type Checker interface {
	Ping(ctx context.Context) error
}

// Handler отвечает на проверку живости.
type Handler struct {
	log   *slog.Logger
	cache Checker
}

func New(log *slog.Logger, cache Checker) *Handler {
	return &Handler{
		log:   log,
		cache: cache,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.health"
	if err := h.cache.Ping(r.Context()); err != nil {
		h.log.Error("cache is unavailable", sl.Op(op), sl.Err(err))
		render.Status(r, http.StatusServiceUnavailable)
		render.JSON(w, r, response.Error("cache is unavailable"))
		return
	}
	render.JSON(w, r, response.OKWithData(map[string]any{
		"status": "ok",
	}))
}
