package listview

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"
)

// ViewerContext identifies who owns a list session.
type ViewerContext struct {
	UserID string   `json:"user_id"`
	Roles  []string `json:"roles,omitempty"`
	Locale string   `json:"locale,omitempty"`
}

// SessionKey identifies the view state of one viewer on one list.
type SessionKey struct {
	UserID string
	List   string
}

func (k SessionKey) String() string {
	user := k.UserID
	if user == "" {
		user = "anonymous"
	}
	return user + "::" + k.List
}

// SessionStore keeps view state while a list page is open.
type SessionStore interface {
	Load(ctx context.Context, key SessionKey) (ViewState, bool, error)
	Save(ctx context.Context, key SessionKey, state ViewState) error
	Delete(ctx context.Context, key SessionKey) error
}

// InMemorySessionStore is a concurrency-safe SessionStore.
type InMemorySessionStore struct {
	mu   sync.RWMutex
	data map[SessionKey]ViewState
}

// NewInMemorySessionStore creates an empty store.
func NewInMemorySessionStore() *InMemorySessionStore {
	return &InMemorySessionStore{
		data: make(map[SessionKey]ViewState),
	}
}

// Load returns a copy of the stored state.
func (s *InMemorySessionStore) Load(_ context.Context, key SessionKey) (ViewState, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.data[key]
	if !ok {
		return ViewState{}, false, nil
	}
	return cloneState(state), true, nil
}

// Save stores a copy of state.
func (s *InMemorySessionStore) Save(_ context.Context, key SessionKey, state ViewState) error {
	if key.List == "" {
		return fmt.Errorf("listview: session key requires a list code")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = cloneState(state)
	return nil
}

// Delete forgets the session.
func (s *InMemorySessionStore) Delete(_ context.Context, key SessionKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// Len reports the number of open sessions.
func (s *InMemorySessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

func cloneState(state ViewState) ViewState {
	state.Filters = maps.Clone(state.Filters)
	state.Selected = slices.Clone(state.Selected)
	return state
}
