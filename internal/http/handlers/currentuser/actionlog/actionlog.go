// Package actionlog реализует HTTP-обработчик, возвращающий журнал действий
// текущего пользователя: сначала постоянная очередь, затем временная.
package actionlog

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/siteplan-view/internal/http/response"
	"github.com/magabrotheeeer/siteplan-view/internal/lib/sl"
	"github.com/magabrotheeeer/siteplan-view/internal/models"
)

// Handler обрабатывает запросы на получение журнала действий.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики чтения журнала.
type Service interface {
	ActionLog() ([]models.LogEntry, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.currentuser.actionlog"
	log := h.log.With(
		sl.Op(op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	actions, err := h.service.ActionLog()
	if err != nil {
		log.Error("failed to read action log", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read action log"))
		return
	}
	if actions == nil {
		actions = []models.LogEntry{}
	}

	log.Debug("action log read", slog.Int("count", len(actions)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"actions": actions,
	}))
}
