package usecase

import "sync"

// KeyMutex serializes state-transition operations per entity id so that
// two concurrent callers working on the same contract or transaction
// queue up instead of racing. Different ids never block each other.
type KeyMutex struct {
	locks sync.Map
}

// Lock acquires the mutex for id and returns its release func.
func (k *KeyMutex) Lock(id string) func() {
	m, _ := k.locks.LoadOrStore(id, &sync.Mutex{})
	mu := m.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
