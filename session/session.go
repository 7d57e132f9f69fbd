// Package session keeps per-visitor dashboard state in memory.
// Sessions are identified by a random uuid carried in the "sid" cookie and
// evicted least-recently-used once the store is full.
package session

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru"
	"github.com/sirupsen/logrus"

	"github.com/delta/pon-sentimen-dashboard/utils"
)

// CookieName is the cookie holding the session id
const CookieName = "sid"

const defaultStoreSize = 1024

var ErrNotFound = errors.New("Session not found")

//go:generate mockgen -destination=../mocks/mock_session.go -package=mocks github.com/delta/pon-sentimen-dashboard/session Session

// Session is a string key/value map bound to one visitor
type Session interface {
	GetID() string
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
	Destroy() error
}

var logger = logrus.NewEntry(utils.Logger)

var store = struct {
	sync.Mutex
	cache *lru.Cache
}{}

// Init sizes the session store from config.CacheSize. Existing sessions are dropped.
func Init(config *utils.Config) error {
	logger = utils.Logger.WithFields(logrus.Fields{
		"module": "session",
	})

	size := config.CacheSize
	if size <= 0 {
		size = defaultStoreSize
	}

	cache, err := lru.New(size)
	if err != nil {
		logger.Errorf("Failed creating session store: %+v", err)
		return err
	}

	store.Lock()
	store.cache = cache
	store.Unlock()
	return nil
}

func getStore() *lru.Cache {
	store.Lock()
	defer store.Unlock()

	if store.cache == nil {
		store.cache, _ = lru.New(defaultStoreSize)
	}
	return store.cache
}

// New creates and stores an empty session
func New() (Session, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return nil, err
	}

	sess := newMemorySession(id.String())
	getStore().Add(sess.id, sess)

	logger.WithFields(logrus.Fields{
		"method": "New",
	}).Debugf("Created session %s", sess.id)

	return sess, nil
}

// Load returns the stored session with the given id, or ErrNotFound
func Load(id string) (Session, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}

	v, ok := getStore().Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return v.(*memorySession), nil
}

// LoadOrNew loads the session with the given id and falls back to a new one
// when it is unknown or has been evicted
func LoadOrNew(id string) (Session, error) {
	if id != "" {
		if sess, err := Load(id); err == nil {
			return sess, nil
		}
	}
	return New()
}

// Len returns the number of stored sessions
func Len() int {
	return getStore().Len()
}
