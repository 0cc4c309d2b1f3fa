// Package store реализует HTTP-обработчик сохранения записи плана сайта.
//
// Handler принимает запись API в теле запроса, сохраняет её в кеш
// и возвращает собранный план.
package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/siteplan-view/internal/http/response"
	"github.com/magabrotheeeer/siteplan-view/internal/lib/sl"
	"github.com/magabrotheeeer/siteplan-view/internal/models"
)

// Handler обрабатывает запросы на сохранение плана.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики сохранения плана.
type Service interface {
	Store(ctx context.Context, siteID int64, raw models.RawPlan) (models.SitePlan, error)
}

// Request — проверяемая часть запроса.
type Request struct {
	SiteID int64           `validate:"gt=0"`
	Plan   *models.RawPlan `validate:"required"`
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.siteplan.store"
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

	req := Request{SiteID: siteID}
	if err := json.NewDecoder(r.Body).Decode(&req.Plan); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	plan, err := h.service.Store(r.Context(), req.SiteID, *req.Plan)
	if err != nil {
		log.Error("failed to store site plan", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not store site plan"))
		return
	}

	log.Info("site plan stored", slog.Int64("site_id", req.SiteID))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"plan": plan,
	}))
}
