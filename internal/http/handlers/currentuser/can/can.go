// Package can реализует HTTP-обработчик проверки права текущего пользователя на сайте.
//
// Ответ содержит allowed: true, false или null. null означает, что право
// определить нельзя (сайт неизвестен или такого права нет), и не равен false.
package can

import (
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

// Handler обрабатывает запросы на проверку права.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики проверки права.
type Service interface {
	Can(siteID int64, capability string) (models.Tristate, error)
}

// Request — параметры запроса из URL.
type Request struct {
	SiteID     int64  `validate:"gt=0"`
	Capability string `validate:"required,max=64"`
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP проверяет право {capability} на сайте {siteID}.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.currentuser.can"
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

	req := Request{SiteID: siteID, Capability: chi.URLParam(r, "capability")}
	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	allowed, err := h.service.Can(req.SiteID, req.Capability)
	if err != nil {
		log.Error("failed to check capability", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not check capability"))
		return
	}

	render.JSON(w, r, response.OKWithData(map[string]any{
		"site_id":    req.SiteID,
		"capability": req.Capability,
		"allowed":    allowed,
	}))
}
