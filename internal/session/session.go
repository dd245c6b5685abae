// Package session holds the boundary to the external account system: the
// current signed-in session of a workspace and the token verifier that
// produces it.
package session

import (
	"sync"
)

// Session is the plain current-session value the search pipeline reads.
type Session struct {
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
}

// Observer is called with the new session (nil when signed out).
type Observer func(*Session)

// Tracker stores the current session and notifies observers when it changes.
type Tracker struct {
	mu        sync.RWMutex
	current   *Session
	observers map[int]Observer
	nextID    int
}

func NewTracker() *Tracker {
	return &Tracker{observers: map[int]Observer{}}
}

// Current returns a copy of the current session, or nil.
func (t *Tracker) Current() *Session {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.current == nil {
		return nil
	}
	s := *t.current
	return &s
}

// Subscribe registers fn and returns a function that removes it.
func (t *Tracker) Subscribe(fn Observer) (unsubscribe func()) {
	t.mu.Lock()
	id := t.nextID
	t.nextID++
	t.observers[id] = fn
	t.mu.Unlock()

	return func() {
		t.mu.Lock()
		delete(t.observers, id)
		t.mu.Unlock()
	}
}

// Set replaces the current session. Observers run only when the signed-in
// user changes.
func (t *Tracker) Set(s *Session) {
	t.mu.Lock()
	if sameUser(t.current, s) {
		if s != nil {
			c := *s
			t.current = &c
		}
		t.mu.Unlock()
		return
	}
	var next *Session
	if s != nil {
		c := *s
		next = &c
	}
	t.current = next
	observers := make([]Observer, 0, len(t.observers))
	for _, fn := range t.observers {
		observers = append(observers, fn)
	}
	t.mu.Unlock()

	for _, fn := range observers {
		if next == nil {
			fn(nil)
			continue
		}
		c := *next
		fn(&c)
	}
}

func sameUser(a, b *Session) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.UserID == b.UserID
}
