// Package snapshot хранит текущий снимок глобального состояния.
//
// Снимок читается из YAML- или JSON-файла (по расширению) и не изменяется после загрузки.
// Reload читает файл заново и атомарно подменяет снимок целиком, поэтому
// срезы журнала действий в новом снимке являются новыми массивами и мемоизированные
// селекторы пересчитываются.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"gopkg.in/yaml.v3"

	"github.com/magabrotheeeer/siteplan-view/internal/models"
)

// ErrNoSnapshot возвращается, если снимок ещё не загружен.
var ErrNoSnapshot = errors.New("state snapshot is not loaded")

// Store хранит снимок за атомарным указателем.
type Store struct {
	path    string
	current atomic.Pointer[models.State]
}

// New создаёт Store для файла path и сразу загружает снимок.
func New(path string) (*Store, error) {
	const op = "storage.snapshot.New"
	s := &Store{path: path}
	if err := s.Reload(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s, nil
}

// NewFromState создаёт Store с готовым снимком без файла.
func NewFromState(state *models.State) *Store {
	s := &Store{}
	s.current.Store(state)
	return s
}

// State возвращает текущий снимок.
func (s *Store) State() (*models.State, error) {
	state := s.current.Load()
	if state == nil {
		return nil, ErrNoSnapshot
	}
	return state, nil
}

// Replace подменяет снимок.
func (s *Store) Replace(state *models.State) {
	s.current.Store(state)
}

// Reload перечитывает файл. При ошибке прежний снимок остаётся на месте.
func (s *Store) Reload() error {
	const op = "storage.snapshot.Reload"
	if s.path == "" {
		return fmt.Errorf("%s: snapshot path is not set", op)
	}
	f, err := os.Open(s.path)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = f.Close()
	}()

	state, err := Decode(f, FormatOf(s.path))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.current.Store(state)
	return nil
}

// Format — формат файла снимка.
type Format int

const (
	// FormatYAML — YAML; ID сайтов в capabilities записываются числами.
	FormatYAML Format = iota
	// FormatJSON — JSON; ID сайтов в capabilities записываются строками.
	FormatJSON
)

// FormatOf определяет формат по расширению файла.
func FormatOf(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// Decode читает снимок из r. Пустой ввод даёт пустой снимок.
func Decode(r io.Reader, format Format) (*models.State, error) {
	const op = "storage.snapshot.Decode"
	var state models.State
	var err error
	switch format {
	case FormatJSON:
		err = json.NewDecoder(r).Decode(&state)
	default:
		err = yaml.NewDecoder(r).Decode(&state)
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &state, nil
}
