// Package me реализует HTTP-обработчик, возвращающий текущего пользователя.
package me

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/siteplan-view/internal/http/response"
	"github.com/magabrotheeeer/siteplan-view/internal/lib/sl"
	"github.com/magabrotheeeer/siteplan-view/internal/models"
)

// Handler обрабатывает запросы на получение текущего пользователя.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики чтения текущего пользователя.
type Service interface {
	CurrentUser() (*models.User, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP отдаёт текущего пользователя или 404, если никто не вошёл.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.currentuser.me"
	log := h.log.With(
		sl.Op(op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	user, err := h.service.CurrentUser()
	if err != nil {
		log.Error("failed to read current user", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read current user"))
		return
	}
	if user == nil {
		log.Info("no user signed in")
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Error("no user signed in"))
		return
	}

	render.JSON(w, r, response.OKWithData(map[string]any{
		"user": user,
	}))
}
