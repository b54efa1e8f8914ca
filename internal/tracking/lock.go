package tracking

import (
	"sync"

	"github.com/fund-split/backend/internal/types"
	"github.com/google/uuid"
)

type key struct {
	userID uuid.UUID
	month  string
}

func keyOf(userID uuid.UUID, month types.Month) key {
	return key{userID: userID, month: month.String()}
}

// keyedMutex serializes work per key. Entries are removed once no
// goroutine holds or waits for them.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[key]*keyLock
}

type keyLock struct {
	sync.Mutex
	waiting int
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[key]*keyLock)}
}

// Lock locks the key and returns the function to unlock it.
func (k *keyedMutex) Lock(id key) (unlock func()) {
	k.mu.Lock()
	l, ok := k.locks[id]
	if !ok {
		l = &keyLock{}
		k.locks[id] = l
	}
	l.waiting++
	k.mu.Unlock()

	l.Lock()

	return func() {
		l.Unlock()

		k.mu.Lock()
		l.waiting--
		if l.waiting == 0 {
			delete(k.locks, id)
		}
		k.mu.Unlock()
	}
}
