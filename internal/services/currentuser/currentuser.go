// Package services содержит бизнес-логику чтения данных текущего пользователя
// из снимка глобального состояния.
package services

import (
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/siteplan-view/internal/models"
	"github.com/magabrotheeeer/siteplan-view/internal/selectors/currentuser"
)

// StateProvider отдаёт текущий снимок состояния.
type StateProvider interface {
	// State возвращает снимок или ошибку, если он не загружен.
	State() (*models.State, error)
}

// CurrentUserService применяет селекторы currentuser к текущему снимку.
type CurrentUserService struct {
	states    StateProvider
	actionLog *currentuser.ActionLog
	log       *slog.Logger
}

// NewCurrentUserService создаёт новый экземпляр CurrentUserService.
// actionLog должен жить столько же, сколько сервис: в нём хранится кэш журнала.
func NewCurrentUserService(states StateProvider, actionLog *currentuser.ActionLog, log *slog.Logger) *CurrentUserService {
	if actionLog == nil {
		actionLog = currentuser.NewActionLog(nil)
	}
	return &CurrentUserService{
		states:    states,
		actionLog: actionLog,
		log:       log,
	}
}

func (s *CurrentUserService) state(op string) (*models.State, error) {
	state, err := s.states.State()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return state, nil
}

// CurrentUser возвращает текущего пользователя или nil, если никто не вошёл.
func (s *CurrentUserService) CurrentUser() (*models.User, error) {
	const op = "services.currentuser.CurrentUser"
	state, err := s.state(op)
	if err != nil {
		return nil, err
	}
	return currentuser.GetCurrentUser(state), nil
}

// Locale возвращает локаль текущего пользователя; ok == false, если её нет.
func (s *CurrentUserService) Locale() (locale string, ok bool, err error) {
	const op = "services.currentuser.Locale"
	state, err := s.state(op)
	if err != nil {
		return "", false, err
	}
	locale, ok = currentuser.GetCurrentUserLocale(state)
	return locale, ok, nil
}

// Can проверяет право текущего пользователя на сайте.
func (s *CurrentUserService) Can(siteID int64, capability string) (models.Tristate, error) {
	const op = "services.currentuser.Can"
	state, err := s.state(op)
	if err != nil {
		return models.TristateNull, err
	}
	result := currentuser.CanCurrentUser(state, siteID, capability)
	s.log.Debug("capability checked",
		slog.Int64("site_id", siteID),
		slog.String("capability", capability),
		slog.String("result", result.String()),
	)
	return result, nil
}

// ActionLog возвращает объединённый журнал действий текущего снимка.
func (s *CurrentUserService) ActionLog() ([]models.LogEntry, error) {
	const op = "services.currentuser.ActionLog"
	state, err := s.state(op)
	if err != nil {
		return nil, err
	}
	return s.actionLog.Get(state), nil
}
