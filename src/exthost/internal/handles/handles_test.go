package handles

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tally "github.com/uber-go/tally"
)

func TestAllocateMonotonic(t *testing.T) {
	testScope := tally.NewTestScope("testing", make(map[string]string, 0))
	a := NewAllocator(testScope)

	prev := Handle(-1)
	for i := 0; i < 100; i++ {
		h := a.Allocate(CategoryDocument)
		assert.Greater(t, h, prev)
		prev = h
	}
}

func TestAllocateCategoriesIndependent(t *testing.T) {
	testScope := tally.NewTestScope("testing", make(map[string]string, 0))
	a := NewAllocator(testScope)

	d1 := a.Allocate(CategoryDocument)
	e1 := a.Allocate(CategoryEditor)
	d2 := a.Allocate(CategoryDocument)

	assert.Equal(t, d1, e1)
	assert.Equal(t, d1+1, d2)
}

func TestAllocateConcurrentNoAliasing(t *testing.T) {
	testScope := tally.NewTestScope("testing", make(map[string]string, 0))
	a := NewAllocator(testScope)

	const n = 50
	results := make(chan Handle, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- a.Allocate(CategoryCompletionSet)
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[Handle]struct{}, n)
	for h := range results {
		_, dup := seen[h]
		require.False(t, dup, "handle %d issued twice", h)
		seen[h] = struct{}{}
	}
	assert.Len(t, seen, n)
}

func TestSet(t *testing.T) {
	testScope := tally.NewTestScope("testing", make(map[string]string, 0))
	a := NewAllocator(testScope)

	s := NewSet[string](a.Allocate(CategoryCompletionSet))

	first := s.Add("alpha")
	second := s.Add("beta")
	assert.Equal(t, Handle(0), first.ID)
	assert.Equal(t, Handle(1), second.ID)
	assert.Equal(t, 2, s.Len())

	v, ok := s.Get(first.ID)
	require.True(t, ok)
	assert.Equal(t, "alpha", v)

	_, ok = s.Get(Handle(99))
	assert.False(t, ok)

	items := s.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "alpha", items[0].Value)
	assert.Equal(t, "beta", items[1].Value)
}
