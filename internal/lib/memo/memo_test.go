package memo

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pair struct {
	left  []int
	right []int
}

func newConcat(calls *int, observe func(bool)) *Selector[*pair, []int] {
	return New(
		func(p *pair) []int {
			*calls++
			out := make([]int, 0, len(p.left)+len(p.right))
			out = append(out, p.left...)
			return append(out, p.right...)
		},
		[]func(*pair) any{
			func(p *pair) any { return p.left },
			func(p *pair) any { return p.right },
		},
		WithObserver(observe),
	)
}

func TestSelector_ReusesResultForSameReferences(t *testing.T) {
	calls := 0
	sel := newConcat(&calls, nil)
	p := &pair{left: []int{1, 2}, right: []int{3}}

	first := sel.Get(p)
	second := sel.Get(p)

	assert.Equal(t, []int{1, 2, 3}, first)
	assert.Equal(t, 1, calls)
	assert.True(t, Same(first, second))
}

func TestSelector_RecomputesOnNewReferenceWithEqualContent(t *testing.T) {
	calls := 0
	sel := newConcat(&calls, nil)
	p := &pair{left: []int{1, 2}, right: []int{3}}

	first := sel.Get(p)
	p2 := &pair{left: p.left, right: []int{3}}
	second := sel.Get(p2)

	assert.Equal(t, first, second)
	assert.False(t, Same(first, second))
	assert.Equal(t, 2, calls)
}

func TestSelector_RecomputesWhenSliceGrowsInPlace(t *testing.T) {
	calls := 0
	sel := newConcat(&calls, nil)
	left := make([]int, 1, 4)
	left[0] = 1
	p := &pair{left: left, right: nil}

	sel.Get(p)
	p.left = append(p.left, 2)
	got := sel.Get(p)

	assert.Equal(t, []int{1, 2}, got)
	assert.Equal(t, 2, calls)
}

func TestSelector_ObserverAndReset(t *testing.T) {
	calls := 0
	var hits, misses int
	sel := newConcat(&calls, func(hit bool) {
		if hit {
			hits++
		} else {
			misses++
		}
	})
	p := &pair{left: []int{1}, right: []int{2}}

	sel.Get(p)
	sel.Get(p)
	sel.Reset()
	sel.Get(p)

	assert.Equal(t, 1, hits)
	assert.Equal(t, 2, misses)
	assert.Equal(t, 2, calls)
}

func TestSelector_ConcurrentGet(t *testing.T) {
	sel := New(
		func(p *pair) []int { return append(append([]int{}, p.left...), p.right...) },
		[]func(*pair) any{
			func(p *pair) any { return p.left },
			func(p *pair) any { return p.right },
		},
	)
	p := &pair{left: []int{1}, right: []int{2}}
	want := sel.Get(p)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.True(t, Same(want, sel.Get(p)))
		}()
	}
	wg.Wait()
}

func TestSame(t *testing.T) {
	a := []int{1, 2}
	b := []int{1, 2}
	m := map[string]int{"x": 1}
	var nilSlice []int

	require.True(t, Same(a, a))
	assert.False(t, Same(a, b))
	assert.False(t, Same(a, a[:1]))
	assert.True(t, Same(m, m))
	assert.False(t, Same(m, map[string]int{"x": 1}))
	assert.True(t, Same(nilSlice, nilSlice))
	assert.False(t, Same(nilSlice, []int{}))
	assert.True(t, Same(nil, nil))
	assert.False(t, Same(a, nil))
	assert.True(t, Same(5, 5))
	assert.False(t, Same(5, int64(5)))
}
