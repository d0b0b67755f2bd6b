package hmi

import "sync"

// Cleanable is implemented by stores that need frame-based cleanup.
// Each frame, stale entries (not accessed this frame) are removed.
type Cleanable interface {
	Cleanup(currentFrame uint64)
}

// Global registry for automatic cleanup of all FrameStores.
// Uses a mutex for thread-safety during registration.
var (
	registeredStores []Cleanable
	registryMu       sync.Mutex
	currentFrame     uint64
)

// registerStore adds a store to the global cleanup registry.
// Called automatically by NewFrameStore.
func registerStore(store Cleanable) {
	registryMu.Lock()
	registeredStores = append(registeredStores, store)
	registryMu.Unlock()
}

// NextFrame advances the frame counter and cleans all registered stores.
// Called once at the start of each frame from Context.Reset.
func NextFrame() {
	currentFrame++
	registryMu.Lock()
	stores := registeredStores
	registryMu.Unlock()

	for _, store := range stores {
		store.Cleanup(currentFrame)
	}
}

// stateEntry wraps a state value with frame tracking for staleness detection.
type stateEntry[T any] struct {
	value     T
	lastFrame uint64
}

// FrameStore is a type-safe store for widget state that automatically
// cleans up entries for widgets that stopped being drawn.
//
// Usage:
//
//	// At package level - one store per state type
//	var toggleStore = hmi.NewFrameStore[ToggleState]()
//
//	// In widget code
//	state := toggleStore.Get(id, ToggleState{})
type FrameStore[T any] struct {
	states map[ID]*stateEntry[T]
	mu     sync.RWMutex
}

// NewFrameStore creates a new type-safe state store and registers it
// for automatic cleanup. Call at package initialization time.
func NewFrameStore[T any]() *FrameStore[T] {
	store := &FrameStore[T]{
		states: make(map[ID]*stateEntry[T]),
	}
	registerStore(store)
	return store
}

// Get retrieves state for the given ID, or creates it with defaultVal if
// not found. Returns a pointer to the state, allowing direct modification.
// The state is marked as used this frame to prevent cleanup.
func (s *FrameStore[T]) Get(id ID, defaultVal T) *T {
	s.mu.RLock()
	entry, ok := s.states[id]
	s.mu.RUnlock()

	if ok {
		s.mu.Lock()
		entry.lastFrame = currentFrame
		s.mu.Unlock()
		return &entry.value
	}

	s.mu.Lock()
	// Double-check after acquiring write lock
	if entry, ok = s.states[id]; ok {
		entry.lastFrame = currentFrame
		s.mu.Unlock()
		return &entry.value
	}

	entry = &stateEntry[T]{
		value:     defaultVal,
		lastFrame: currentFrame,
	}
	s.states[id] = entry
	s.mu.Unlock()
	return &entry.value
}

// Set explicitly sets state for an ID.
func (s *FrameStore[T]) Set(id ID, value T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.states[id]; ok {
		entry.value = value
		entry.lastFrame = currentFrame
	} else {
		s.states[id] = &stateEntry[T]{
			value:     value,
			lastFrame: currentFrame,
		}
	}
}

// Delete explicitly removes state for an ID.
func (s *FrameStore[T]) Delete(id ID) {
	s.mu.Lock()
	delete(s.states, id)
	s.mu.Unlock()
}

// Cleanup removes all entries that weren't accessed in the previous frame.
// Called automatically by NextFrame() - don't call it manually.
func (s *FrameStore[T]) Cleanup(frame uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	threshold := frame - 1
	for id, entry := range s.states {
		if entry.lastFrame < threshold {
			delete(s.states, id)
		}
	}
}

// Len returns the number of stored entries.
func (s *FrameStore[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.states)
}
