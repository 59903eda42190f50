package idgen

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUUIDIsParsable(t *testing.T) {
	id := UUID{}.NewID()
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
}

func TestSequenceIsUniqueUnderConcurrency(t *testing.T) {
	seq := NewSequence("p")
	var (
		mu   sync.Mutex
		seen = make(map[string]struct{})
		wg   sync.WaitGroup
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := seq.NewID()
			mu.Lock()
			seen[id] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()
	assert.Len(t, seen, 50)
}

func TestSequenceStartsAtOne(t *testing.T) {
	seq := NewSequence("o")
	assert.Equal(t, "o1", seq.NewID())
	assert.Equal(t, "o2", seq.NewID())
}
