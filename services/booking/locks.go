package booking

import "sync"

// keyedLocks serializes operations per booking ID. Two concurrent requests
// on the same booking take the same mutex; requests on different bookings
// proceed independently. Entries are reference-counted and evicted once the
// last holder releases, so the map stays bounded by in-flight bookings.
type keyedLocks struct {
	mu    sync.Mutex
	locks map[string]*bookingLock
}

type bookingLock struct {
	sync.Mutex
	refs int
}

// acquire blocks until the per-booking lock is held and returns the release
// function. The caller must invoke it exactly once.
func (k *keyedLocks) acquire(id string) func() {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = make(map[string]*bookingLock)
	}
	l, ok := k.locks[id]
	if !ok {
		l = &bookingLock{}
		k.locks[id] = l
	}
	l.refs++
	k.mu.Unlock()

	l.Lock()
	return func() {
		l.Unlock()
		k.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(k.locks, id)
		}
		k.mu.Unlock()
	}
}
