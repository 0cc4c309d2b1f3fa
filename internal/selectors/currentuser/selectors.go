// Package currentuser содержит селекторы среза currentUser глобального состояния:
// текущий пользователь, его локаль, права на сайтах и журнал действий.
package currentuser

import (
	"github.com/magabrotheeeer/siteplan-view/internal/lib/memo"
	"github.com/magabrotheeeer/siteplan-view/internal/models"
	"github.com/magabrotheeeer/siteplan-view/internal/selectors/users"
)

// GetCurrentUser возвращает текущего пользователя или nil, если никто не вошёл
// или пользователя нет в срезе users.
func GetCurrentUser(state *models.State) *models.User {
	if state == nil || state.CurrentUser.ID == 0 {
		return nil
	}
	user, _ := users.GetUser(state, state.CurrentUser.ID)
	return user
}

// GetCurrentUserLocale возвращает локаль текущего пользователя.
// ok == false, если пользователя нет или локаль не задана; пустая строка
// никогда не возвращается как локаль.
func GetCurrentUserLocale(state *models.State) (locale string, ok bool) {
	user := GetCurrentUser(state)
	if user == nil || user.LocaleSlug == "" {
		return "", false
	}
	return user.LocaleSlug, true
}

// CanCurrentUser сообщает, есть ли у текущего пользователя право capability
// на сайте siteID. TristateNull означает, что право определить нельзя:
// сайт неизвестен, право не существует или карта прав отсутствует.
func CanCurrentUser(state *models.State, siteID int64, capability string) models.Tristate {
	if state == nil {
		return models.TristateNull
	}
	caps, ok := state.CurrentUser.Capabilities[siteID]
	if !ok {
		return models.TristateNull
	}
	allowed, ok := caps[capability]
	if !ok {
		return models.TristateNull
	}
	return models.TristateOf(allowed)
}

// ActionLog объединяет постоянную и временную очереди действий.
//
// Результат мемоизирован: пока срезы Permanent и Temporary остаются теми же
// (тот же массив и та же длина), Get возвращает тот же срез. Замена любого
// из них, даже на срез с равным содержимым, приводит к пересчёту и новому
// срезу. Это часть контракта: зависящие селекторы мемоизируют по ссылке.
// Исключение: пустые срезы нулевой ёмкости в Go разделяют один адрес, поэтому
// замена пустого среза другим пустым не вызывает пересчёта.
// Возвращаемый срез общий для всех вызывающих и не должен изменяться.
type ActionLog struct {
	sel *memo.Selector[*models.State, []models.LogEntry]
}

// NewActionLog создаёт селектор журнала. observe, если не nil, получает
// hit == true при каждом попадании в кэш.
func NewActionLog(observe func(hit bool)) *ActionLog {
	return &ActionLog{
		sel: memo.New(
			mergeActionLog,
			[]func(*models.State) any{
				func(s *models.State) any { return s.CurrentUser.ActionLog.Permanent },
				func(s *models.State) any { return s.CurrentUser.ActionLog.Temporary },
			},
			memo.WithObserver(observe),
		),
	}
}

// Get возвращает Permanent, за которым следует Temporary.
func (a *ActionLog) Get(state *models.State) []models.LogEntry {
	if state == nil {
		return nil
	}
	return a.sel.Get(state)
}

func mergeActionLog(state *models.State) []models.LogEntry {
	log := state.CurrentUser.ActionLog
	merged := make([]models.LogEntry, 0, len(log.Permanent)+len(log.Temporary))
	merged = append(merged, log.Permanent...)
	return append(merged, log.Temporary...)
}

var defaultActionLog = NewActionLog(nil)

// GetActionLog — ActionLog.Get на общем для пакета селекторе.
func GetActionLog(state *models.State) []models.LogEntry {
	return defaultActionLog.Get(state)
}
