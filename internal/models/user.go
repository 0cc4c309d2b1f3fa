// Package models содержит доменные структуры снимка глобального состояния
// и записи о тарифных планах сайтов.
package models

// User представляет пользователя из среза users глобального состояния.
type User struct {
	ID          int64  `json:"ID" yaml:"ID"`                     // Уникальный идентификатор пользователя
	Username    string `json:"username" yaml:"username"`         // Имя пользователя
	DisplayName string `json:"display_name" yaml:"display_name"` // Отображаемое имя
	Email       string `json:"email" yaml:"email"`               // Электронная почта
	LocaleSlug  string `json:"localeSlug" yaml:"localeSlug"`     // Локаль пользователя, пустая строка если не задана
}
