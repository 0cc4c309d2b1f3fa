// Package locale реализует HTTP-обработчик, возвращающий локаль текущего пользователя.
package locale

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/siteplan-view/internal/http/response"
	"github.com/magabrotheeeer/siteplan-view/internal/lib/sl"
)

// Handler обрабатывает запросы на получение локали.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики чтения локали.
type Service interface {
	Locale() (locale string, ok bool, err error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP отдаёт {"locale": "<slug>"} или {"locale": null}.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.currentuser.locale"
	log := h.log.With(
		sl.Op(op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	locale, ok, err := h.service.Locale()
	if err != nil {
		log.Error("failed to read locale", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read locale"))
		return
	}

	var value *string
	if ok {
		value = &locale
	}
	render.JSON(w, r, response.OKWithData(map[string]any{
		"locale": value,
	}))
}
