// Package users содержит селекторы среза users глобального состояния.
package users

import "github.com/magabrotheeeer/siteplan-view/internal/models"

// GetUser возвращает пользователя по ID и признак того, что он найден.
func GetUser(state *models.State, id int64) (*models.User, bool) {
	if state == nil || state.Users.Items == nil {
		return nil, false
	}
	user, ok := state.Users.Items[id]
	if !ok {
		return nil, false
	}
	return &user, true
}
