// Package truthy приводит значения из внешних JSON-записей к bool и числу
// по правилам Boolean() и Number() в JavaScript. Флаги тарифов приходят
// из API то строкой, то числом, то bool, поэтому таблица истинности
// задаётся явно.
package truthy

import (
	"encoding/json"
	"math"
	"math/big"
	"reflect"
	"strconv"
	"strings"
)

// Bool возвращает false для nil, false, 0, NaN, "" и нулевых указателей,
// true для всего остального (включая "0", "false", пустые срезы и карты).
func Bool(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case json.Number:
		return Bool(Number(string(x)))
	case float64:
		return x != 0 && !math.IsNaN(x)
	case float32:
		return x != 0 && !math.IsNaN(float64(x))
	case int:
		return x != 0
	case int64:
		return x != 0
	case int32:
		return x != 0
	case uint:
		return x != 0
	case uint64:
		return x != 0
	case uint32:
		return x != 0
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return false
		}
		return Bool(rv.Elem().Interface())
	}
	return true
}

// Number повторяет Number() из JavaScript: nil, false и строка из пробелов
// дают 0, true даёт 1, строки разбираются как десятичные, шестнадцатеричные (0x),
// восьмеричные (0o) и двоичные (0b) литералы, всё остальное даёт NaN.
func Number(v any) float64 {
	switch x := v.(type) {
	case nil:
		return 0
	case bool:
		if x {
			return 1
		}
		return 0
	case float64:
		return x
	case float32:
		return float64(x)
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case int32:
		return float64(x)
	case uint:
		return float64(x)
	case uint64:
		return float64(x)
	case uint32:
		return float64(x)
	case json.Number:
		return parseNumber(string(x))
	case string:
		return parseNumber(x)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return 0
		}
		return Number(rv.Elem().Interface())
	}
	return math.NaN()
}

func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			return parseRadix(s[2:], base)
		}
	}

	// ParseFloat принимает "inf", "nan" и "_", которых Number() не знает.
	lower := strings.ToLower(s)
	if strings.Contains(lower, "inf") || strings.Contains(lower, "nan") || strings.Contains(s, "_") {
		return math.NaN()
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return n
}

// parseRadix разбирает цифры без знака любой длины; слишком большие значения
// округляются до float64 или дают +Inf.
func parseRadix(digits string, base int) float64 {
	if digits[0] == '+' || digits[0] == '-' {
		return math.NaN()
	}
	n, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return math.NaN()
	}
	f, _ := new(big.Float).SetInt(n).Float64()
	return f
}
