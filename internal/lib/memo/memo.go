// Package memo кэширует производные значения селекторов.
//
// Selector хранит один слот: последние значения зависимостей и результат.
// Зависимости сравниваются по идентичности ссылки, а не по содержимому:
// срез считается прежним, только если у него тот же массив и та же длина.
// Срез с тем же содержимым, но другим массивом вызывает пересчёт. На это
// опираются потребители, которые сами мемоизируют значения по ссылке.
package memo

import (
	"reflect"
	"sync"
)

// Selector мемоизирует compute(state) по идентичности зависимостей.
type Selector[S, R any] struct {
	compute func(S) R
	deps    []func(S) any
	observe func(hit bool)

	mu     sync.Mutex
	last   []any
	result R
	ready  bool
}

// Option настраивает Selector.
type Option func(*options)

type options struct {
	observe func(hit bool)
}

// WithObserver вызывает fn после каждого обращения: hit == true, если
// результат взят из кэша.
func WithObserver(fn func(hit bool)) Option {
	return func(o *options) {
		o.observe = fn
	}
}

// New создаёт Selector. Каждый deps[i] извлекает из состояния одну зависимость.
func New[S, R any](compute func(S) R, deps []func(S) any, opts ...Option) *Selector[S, R] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Selector[S, R]{
		compute: compute,
		deps:    deps,
		observe: o.observe,
	}
}

// Get возвращает закэшированный результат, если все зависимости идентичны
// прошлому вызову, иначе пересчитывает его.
func (s *Selector[S, R]) Get(state S) R {
	current := make([]any, len(s.deps))
	for i, dep := range s.deps {
		current[i] = dep(state)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ready && sameAll(s.last, current) {
		s.notify(true)
		return s.result
	}

	s.result = s.compute(state)
	s.last = current
	s.ready = true
	s.notify(false)
	return s.result
}

// Reset очищает слот.
func (s *Selector[S, R]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero R
	s.result = zero
	s.last = nil
	s.ready = false
}

func (s *Selector[S, R]) notify(hit bool) {
	if s.observe != nil {
		s.observe(hit)
	}
}

func sameAll(a, b []any) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Same(a[i], b[i]) {
			return false
		}
	}
	return true
}

// Same сообщает, ссылаются ли a и b на одно и то же значение.
// Срезы равны при совпадении массива и длины; карты, указатели, каналы и
// функции равны при совпадении адреса. Прочие сравнимые значения сравниваются
// через ==, несравнимые считаются разными.
func Same(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}

	switch va.Kind() {
	case reflect.Slice:
		if va.IsNil() != vb.IsNil() {
			return false
		}
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	case reflect.Map, reflect.Pointer, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	}

	if !va.Type().Comparable() {
		return false
	}
	return a == b
}
