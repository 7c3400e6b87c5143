package memory

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"course-advisor-be/pkg/dialogue"
	"course-advisor-be/pkg/lexicon"
)

// SessionRepository is the process-wide session store. Sessions are created
// lazily, never persisted, and live until an explicit farewell removes them
// (or until the optional idle TTL expires, when one is configured).
//
// Update is the only compound mutation entry point. It serializes the
// read-modify-write per session id, so two requests racing on the same
// session cannot lose each other's accumulated-score updates.
type SessionRepository struct {
	cache    *cache.Cache
	newState func(id string) *dialogue.State

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewSessionRepository builds the store. idleTTL <= 0 means sessions never
// expire, the default.
func NewSessionRepository(idleTTL time.Duration, newState func(id string) *dialogue.State) *SessionRepository {
	expiration := cache.NoExpiration
	cleanup := time.Duration(0)
	if idleTTL > 0 {
		expiration = idleTTL
		cleanup = 10 * time.Minute
	}
	return &SessionRepository{
		cache:    cache.New(expiration, cleanup),
		newState: newState,
		locks:    make(map[string]*sync.Mutex),
	}
}

// GetOrCreate returns the stored state for the id, creating and storing a
// fresh one when the id is unknown. Unknown ids are never an error.
func (r *SessionRepository) GetOrCreate(id string) *dialogue.State {
	lock := r.sessionLock(id)
	lock.Lock()
	defer lock.Unlock()
	return r.getOrCreateLocked(id)
}

// Update runs fn against a copy of the session state under the session's
// lock and commits the copy only when fn succeeds. A failing fn leaves the
// stored state exactly as it was.
func (r *SessionRepository) Update(id string, fn func(state *dialogue.State) error) error {
	lock := r.sessionLock(id)
	lock.Lock()
	defer lock.Unlock()

	staged := cloneState(r.getOrCreateLocked(id))
	if err := fn(staged); err != nil {
		return err
	}
	r.cache.Set(id, staged, cache.DefaultExpiration)
	return nil
}

// Reset replaces the session with a fresh state and returns it.
func (r *SessionRepository) Reset(id string) *dialogue.State {
	lock := r.sessionLock(id)
	lock.Lock()
	defer lock.Unlock()

	state := r.newState(id)
	r.cache.Set(id, state, cache.DefaultExpiration)
	return state
}

// Remove deletes the session. Removing an unknown id is a no-op.
//
// The lock entry is retained: an Update that already fetched the mutex must
// keep serializing against later callers on the same id, so one id maps to
// one mutex for the repository's lifetime. The map grows with distinct ids
// seen, same as the cache itself.
func (r *SessionRepository) Remove(id string) {
	lock := r.sessionLock(id)
	lock.Lock()
	defer lock.Unlock()
	r.cache.Delete(id)
}

// Get returns the stored state without creating one.
func (r *SessionRepository) Get(id string) (*dialogue.State, bool) {
	if x, found := r.cache.Get(id); found {
		return x.(*dialogue.State), true
	}
	return nil, false
}

// Count returns the number of live sessions, for liveness reporting.
// Items filters entries past their idle TTL, so sessions awaiting the
// background purge are not counted.
func (r *SessionRepository) Count() int {
	return len(r.cache.Items())
}

func (r *SessionRepository) getOrCreateLocked(id string) *dialogue.State {
	if x, found := r.cache.Get(id); found {
		return x.(*dialogue.State)
	}
	state := r.newState(id)
	r.cache.Set(id, state, cache.DefaultExpiration)
	return state
}

func (r *SessionRepository) sessionLock(id string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()
	if lock, ok := r.locks[id]; ok {
		return lock
	}
	lock := &sync.Mutex{}
	r.locks[id] = lock
	return lock
}

func cloneState(s *dialogue.State) *dialogue.State {
	scores := make(map[lexicon.Category]float64, len(s.AccumulatedScores))
	for c, v := range s.AccumulatedScores {
		scores[c] = v
	}
	history := make([]string, len(s.InterestHistory))
	copy(history, s.InterestHistory)
	return &dialogue.State{
		ID:                s.ID,
		AccumulatedScores: scores,
		TurnCount:         s.TurnCount,
		InterestHistory:   history,
		LastActive:        s.LastActive,
	}
}
