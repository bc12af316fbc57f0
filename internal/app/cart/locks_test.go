package cart

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMutationLocks_SerializesSameCartID(t *testing.T) {
	locks := NewMutationLocks()

	const workers = 16
	var (
		wg       sync.WaitGroup
		inFlight int
		overlap  bool
		mu       sync.Mutex
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release := locks.Lock("g-55")
			defer release()

			mu.Lock()
			inFlight++
			if inFlight > 1 {
				overlap = true
			}
			mu.Unlock()

			mu.Lock()
			inFlight--
			mu.Unlock()
		}()
	}

	wg.Wait()
	assert.False(t, overlap, "two mutations held the same cart lock at once")
}

func TestMutationLocks_EntryRemovedAfterLastRelease(t *testing.T) {
	locks := NewMutationLocks()

	release := locks.Lock("g-55")
	locks.mu.Lock()
	require.Len(t, locks.locks, 1)
	locks.mu.Unlock()

	release()

	locks.mu.Lock()
	assert.Empty(t, locks.locks)
	locks.mu.Unlock()
}

func TestMutationLocks_DistinctCartIDsDoNotBlock(t *testing.T) {
	locks := NewMutationLocks()

	releaseA := locks.Lock("g-1")
	defer releaseA()

	done := make(chan struct{})
	go func() {
		releaseB := locks.Lock("g-2")
		releaseB()
		close(done)
	}()

	<-done
}
