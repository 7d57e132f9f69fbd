package session

import (
	"sync"
)

type memorySession struct {
	id    string
	mutex sync.RWMutex
	m     map[string]string
}

func newMemorySession(id string) *memorySession {
	return &memorySession{
		id: id,
		m:  make(map[string]string),
	}
}

func (sess *memorySession) GetID() string {
	return sess.id
}

func (sess *memorySession) Get(key string) (string, bool) {
	sess.mutex.RLock()
	value, ok := sess.m[key]
	sess.mutex.RUnlock()
	return value, ok
}

func (sess *memorySession) Set(key, value string) error {
	sess.mutex.Lock()
	sess.m[key] = value
	sess.mutex.Unlock()
	return nil
}

func (sess *memorySession) Delete(key string) error {
	sess.mutex.Lock()
	delete(sess.m, key)
	sess.mutex.Unlock()
	return nil
}

// Destroy removes the session from the store
func (sess *memorySession) Destroy() error {
	getStore().Remove(sess.id)
	return nil
}
