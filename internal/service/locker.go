package service

import "sync"

// docLocker serializes mutations per document ID. Entries are reference
// counted and removed when the last holder releases, so the map does not
// grow with document count.
type docLocker struct {
	mu    sync.Mutex
	locks map[string]*docLock
}

type docLock struct {
	mu   sync.Mutex
	refs int
}

func newDocLocker() *docLocker {
	return &docLocker{locks: make(map[string]*docLock)}
}

// Lock acquires the mutex for id, blocking while another caller holds it.
func (l *docLocker) Lock(id string) {
	l.mu.Lock()
	entry, ok := l.locks[id]
	if !ok {
		entry = &docLock{}
		l.locks[id] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()
}

// Unlock releases the mutex for id.
func (l *docLocker) Unlock(id string) {
	l.mu.Lock()
	entry := l.locks[id]
	entry.refs--
	if entry.refs == 0 {
		delete(l.locks, id)
	}
	l.mu.Unlock()

	entry.mu.Unlock()
}
