// Package day разбирает даты из записей тарифных планов и обрезает их до начала дня.
// Невалидный или отсутствующий ввод не приводит к ошибке: возвращается
// Moment с IsValid() == false.
package day

import (
	"encoding/json"
	"strings"
	"time"
)

// Moment — момент времени, который может быть невалидным.
type Moment struct {
	t     time.Time
	valid bool
}

// Invalid возвращает невалидный Moment.
func Invalid() Moment {
	return Moment{}
}

// Of оборачивает time.Time в валидный Moment.
func Of(t time.Time) Moment {
	return Moment{t: t, valid: true}
}

// layouts перечисляет поддерживаемые форматы строковых дат, от самого полного.
var layouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Parse разбирает значение в часовом поясе loc.
// Поддерживаются строки (ISO 8601 / RFC 3339), time.Time и числа
// (миллисекунды с начала эпохи). Строки без смещения трактуются как локальное
// время в loc, строки со смещением переводятся в loc.
func Parse(v any, loc *time.Location) Moment {
	if loc == nil {
		loc = time.Local
	}

	switch x := v.(type) {
	case nil:
		return Invalid()
	case *string:
		if x == nil {
			return Invalid()
		}
		return parseString(*x, loc)
	case string:
		return parseString(x, loc)
	case time.Time:
		return Of(x.In(loc))
	case *time.Time:
		if x == nil {
			return Invalid()
		}
		return Of(x.In(loc))
	case int64:
		return Of(time.UnixMilli(x).In(loc))
	case int:
		return Of(time.UnixMilli(int64(x)).In(loc))
	case float64:
		return Of(time.UnixMilli(int64(x)).In(loc))
	case json.Number:
		ms, err := x.Int64()
		if err != nil {
			return Invalid()
		}
		return Of(time.UnixMilli(ms).In(loc))
	}
	return Invalid()
}

func parseString(s string, loc *time.Location) Moment {
	s = strings.TrimSpace(s)
	if s == "" {
		return Invalid()
	}
	for _, layout := range layouts {
		t, err := time.ParseInLocation(layout, s, loc)
		if err == nil {
			return Of(t.In(loc))
		}
	}
	return Invalid()
}

// StartOfDay обрезает момент до полуночи в его часовом поясе.
// Невалидный Moment остаётся невалидным.
func (m Moment) StartOfDay() Moment {
	if !m.valid {
		return m
	}
	y, mo, d := m.t.Date()
	return Of(time.Date(y, mo, d, 0, 0, 0, 0, m.t.Location()))
}

// IsValid сообщает, удалось ли разобрать дату.
func (m Moment) IsValid() bool {
	return m.valid
}

// Time возвращает время и признак валидности.
func (m Moment) Time() (time.Time, bool) {
	return m.t, m.valid
}

// Equal сравнивает моменты: невалидные равны друг другу,
// валидные сравниваются через time.Time.Equal.
func (m Moment) Equal(other Moment) bool {
	if !m.valid || !other.valid {
		return m.valid == other.valid
	}
	return m.t.Equal(other.t)
}

func (m Moment) String() string {
	if !m.valid {
		return "Invalid date"
	}
	return m.t.Format(time.RFC3339)
}

// MarshalJSON кодирует валидный Moment строкой RFC 3339, невалидный как null.
func (m Moment) MarshalJSON() ([]byte, error) {
	if !m.valid {
		return []byte("null"), nil
	}
	return json.Marshal(m.t.Format(time.RFC3339))
}
