package cart

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManager_MintsSessionID(t *testing.T) {
	m := NewManager()

	id := m.With("", func(s *Store) {
		s.AddItem(lineItem(1, 0, 0, 1, nil))
	})

	assert.NotEmpty(t, id)

	// same id resolves to the same store
	var count int
	again := m.With(id, func(s *Store) {
		count = s.Count()
	})
	assert.Equal(t, id, again)
	assert.Equal(t, 1, count)
}

func TestManager_UnknownIDGetsFreshStore(t *testing.T) {
	m := NewManager()

	var count int
	id := m.With("stale-session", func(s *Store) {
		count = s.Count()
	})

	assert.Equal(t, "stale-session", id)
	assert.Equal(t, 0, count)
}

func TestManager_SessionsAreIsolated(t *testing.T) {
	m := NewManager()

	a := m.With("", func(s *Store) { s.AddItem(lineItem(1, 0, 0, 2, nil)) })
	b := m.With("", func(s *Store) { s.AddItem(lineItem(2, 0, 0, 5, nil)) })
	assert.NotEqual(t, a, b)

	var countA, countB int
	m.With(a, func(s *Store) { countA = s.Count() })
	m.With(b, func(s *Store) { countB = s.Count() })

	assert.Equal(t, 2, countA)
	assert.Equal(t, 5, countB)
}

func TestManager_ConcurrentMutations(t *testing.T) {
	m := NewManager()
	id := m.With("", noop)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.With(id, func(s *Store) {
				s.AddItem(lineItem(1, 0, 0, 1, nil))
			})
		}()
	}
	wg.Wait()

	var count int
	m.With(id, func(s *Store) { count = s.Count() })
	assert.Equal(t, 50, count)
}

func noop(*Store) {}
