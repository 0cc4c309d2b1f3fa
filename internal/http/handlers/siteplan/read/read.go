// Package read реализует HTTP-обработчик получения собранного плана сайта.
package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/siteplan-view/internal/http/response"
	"github.com/magabrotheeeer/siteplan-view/internal/lib/sl"
	"github.com/magabrotheeeer/siteplan-view/internal/models"
	services "github.com/magabrotheeeer/siteplan-view/internal/services/siteplan"
)

// Handler обрабатывает запросы на получение плана по ID сайта.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики чтения плана.
type Service interface {
	Get(ctx context.Context, siteID int64) (models.SitePlan, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.siteplan.read"
	log := h.log.With(
		sl.Op(op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	siteID, err := strconv.ParseInt(chi.URLParam(r, "siteID"), 10, 64)
	if err != nil {
		log.Error("failed to decode site id from url", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to decode site id from url"))
		return
	}

	plan, err := h.service.Get(r.Context(), siteID)
	if errors.Is(err, services.ErrPlanNotFound) {
		log.Info("site plan not found", slog.Int64("site_id", siteID))
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Error("site plan not found"))
		return
	}
	if err != nil {
		log.Error("failed to read site plan", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read site plan"))
		return
	}

	render.JSON(w, r, response.OKWithData(map[string]any{
		"plan": plan,
	}))
}
