package models

import "encoding/json"

// State — неизменяемый снимок глобального состояния.
// Селекторы только читают его; любое изменение выполняется заменой снимка целиком.
type State struct {
	CurrentUser CurrentUser `json:"currentUser" yaml:"currentUser"`
	Users       Users       `json:"users" yaml:"users"`
}

// CurrentUser — срез состояния, описывающий вошедшего пользователя.
// ID == 0 означает, что пользователь не вошёл.
type CurrentUser struct {
	ID           int64        `json:"id" yaml:"id"`
	Capabilities Capabilities `json:"capabilities" yaml:"capabilities"`
	ActionLog    ActionLog    `json:"actionLog" yaml:"actionLog"`
}

// Capabilities отображает ID сайта в набор прав пользователя на этом сайте.
type Capabilities map[int64]map[string]bool

// ActionLog хранит постоянную и временную (в рамках сессии) очереди действий.
type ActionLog struct {
	Permanent []LogEntry `json:"permanent" yaml:"permanent"`
	Temporary []LogEntry `json:"temporary" yaml:"temporary"`
}

// LogEntry — действие из журнала с меткой времени в миллисекундах.
type LogEntry struct {
	Type      string         `json:"type" yaml:"type"`
	Timestamp int64          `json:"timestamp" yaml:"timestamp"`
	Payload   map[string]any `json:"payload,omitempty" yaml:"payload,omitempty"`
}

// Users — индекс пользователей по ID.
type Users struct {
	Items map[int64]User `json:"items" yaml:"items"`
}

// Tristate — результат проверки права: true, false или «не определено».
// Нулевое значение — TristateNull.
type Tristate uint8

const (
	// TristateNull — право нельзя определить (сайт или право неизвестны).
	TristateNull Tristate = iota
	// TristateFalse — право явно запрещено.
	TristateFalse
	// TristateTrue — право есть.
	TristateTrue
)

// TristateOf переводит bool в Tristate.
func TristateOf(v bool) Tristate {
	if v {
		return TristateTrue
	}
	return TristateFalse
}

// Bool возвращает значение и признак того, что оно определено.
func (t Tristate) Bool() (value bool, ok bool) {
	switch t {
	case TristateTrue:
		return true, true
	case TristateFalse:
		return false, true
	default:
		return false, false
	}
}

// IsNull сообщает, что значение не определено.
func (t Tristate) IsNull() bool {
	return t != TristateTrue && t != TristateFalse
}

func (t Tristate) String() string {
	switch t {
	case TristateTrue:
		return "true"
	case TristateFalse:
		return "false"
	default:
		return "null"
	}
}

// MarshalJSON кодирует Tristate как true, false или null.
func (t Tristate) MarshalJSON() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalJSON разбирает true, false или null.
func (t *Tristate) UnmarshalJSON(data []byte) error {
	var v *bool
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v == nil {
		*t = TristateNull
		return nil
	}
	*t = TristateOf(*v)
	return nil
}
