// Package assemble реализует HTTP-обработчик, собирающий нормализованный
// план сайта из присланной записи API без сохранения.
//
// Тело null даёт пустой план {}.
package assemble

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/siteplan-view/internal/http/response"
	"github.com/magabrotheeeer/siteplan-view/internal/lib/sl"
	"github.com/magabrotheeeer/siteplan-view/internal/models"
)

// Handler обрабатывает запросы на сборку плана.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс сборки плана.
type Service interface {
	Assemble(raw *models.RawPlan) models.SitePlan
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.siteplan.assemble"
	log := h.log.With(
		sl.Op(op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var raw *models.RawPlan
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	plan := h.service.Assemble(raw)
	render.JSON(w, r, response.OKWithData(map[string]any{
		"plan": plan,
	}))
}
