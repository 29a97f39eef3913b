package keylock

import "sync"

// KeyLock provides a mutex per string key. The intake path locks on the DNI
// so two concurrent submissions for the same candidate cannot both resolve
// "no existing record" and race on the final document write.
//
// Locks are held only for the duration of one request and the key space is
// small (one entry per in-flight DNI), so entries are dropped as soon as the
// last holder releases. This serializes a single process only; replicated
// deployments would need the uniqueness pushed into the store.
type KeyLock struct {
	mu    sync.Mutex
	locks map[string]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

func New() *KeyLock {
	return &KeyLock{locks: make(map[string]*entry)}
}

// Lock acquires the mutex for key, blocking until it is free.
func (k *KeyLock) Lock(key string) {
	k.mu.Lock()
	e, ok := k.locks[key]
	if !ok {
		e = &entry{}
		k.locks[key] = e
	}
	e.refs++
	k.mu.Unlock()

	e.mu.Lock()
}

// Unlock releases the mutex for key and drops the entry once nobody waits.
func (k *KeyLock) Unlock(key string) {
	k.mu.Lock()
	e, ok := k.locks[key]
	if ok {
		e.refs--
		if e.refs == 0 {
			delete(k.locks, key)
		}
	}
	k.mu.Unlock()

	if ok {
		e.mu.Unlock()
	}
}
