package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/kuest/kuestionnaire/flow"
	"github.com/kuest/kuestionnaire/log"
	"github.com/kuest/kuestionnaire/model"
)

// Session owns one respondent pass: a navigation engine and its answers.
// Handlers serialize access to the engine through Mutex; nothing is shared
// between sessions.
type Session struct {
	sync.Mutex
	ID     string
	FormID string
	Engine *flow.Engine

	touched time.Time // guarded by the registry lock
}

// Registry keeps live respondent sessions in memory. Abandoned sessions
// are swept away after sitting idle for the TTL; nothing about them is
// durable until the engine completes, so dropping one needs no cleanup.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	stop     chan struct{}
	stopOnce sync.Once
}

func NewRegistry(ttl time.Duration) *Registry {
	r := &Registry{
		sessions: map[string]*Session{},
		ttl:      ttl,
		stop:     make(chan struct{}),
	}
	go r.sweep()
	return r
}

// Open creates a session holding a fresh engine at the intro position.
func (r *Registry) Open(form model.Form, emitter flow.Emitter) *Session {
	s := &Session{
		ID:      uuid.NewString(),
		FormID:  form.ID,
		Engine:  flow.New(form, emitter),
		touched: time.Now(),
	}

	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()

	log.Debugf("session.open: %s (form %s)", s.ID, form.ID)
	return s
}

// Get looks a session up and marks it live.
func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if ok {
		s.touched = time.Now()
	}
	return s, ok
}

func (r *Registry) Drop(id string) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

func (r *Registry) Close() {
	r.stopOnce.Do(func() { close(r.stop) })
}

func (r *Registry) sweep() {
	interval := r.ttl / 2
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stop:
			return
		case now := <-ticker.C:
			if n := r.expire(now); n > 0 {
				log.Debugf("session.sweep: dropped %d idle sessions", n)
			}
		}
	}
}

func (r *Registry) expire(now time.Time) (dropped int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, s := range r.sessions {
		if now.Sub(s.touched) > r.ttl {
			delete(r.sessions, id)
			dropped++
		}
	}
	return
}
