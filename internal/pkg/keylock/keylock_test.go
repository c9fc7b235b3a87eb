package keylock

import (
	"sync"
	"testing"
	"time"
)

func TestKeyLock_SerializesSameKey(t *testing.T) {
	k := New()

	var counter, max int
	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			k.Lock("news:1")
			defer k.Unlock("news:1")

			mu.Lock()
			counter++
			if counter > max {
				max = counter
			}
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			counter--
			mu.Unlock()
		}()
	}
	wg.Wait()

	if max != 1 {
		t.Fatalf("expected at most 1 concurrent holder, observed %d", max)
	}
}

func TestKeyLock_DistinctKeysIndependent(t *testing.T) {
	k := New()

	k.Lock("news:1")
	defer k.Unlock("news:1")

	done := make(chan struct{})
	go func() {
		k.Lock("news:2")
		k.Unlock("news:2")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("lock on a distinct key blocked behind an unrelated holder")
	}
}

func TestKeyLock_EntryDroppedWhenIdle(t *testing.T) {
	k := New()

	k.Lock("post:7")
	k.Unlock("post:7")

	k.mu.Lock()
	defer k.mu.Unlock()
	if len(k.locks) != 0 {
		t.Fatalf("expected idle entries to be dropped, %d remain", len(k.locks))
	}
}

func TestKeyLock_UnlockUnheldPanics(t *testing.T) {
	k := New()

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when unlocking a key that is not held")
		}
	}()
	k.Unlock("never-locked")
}
