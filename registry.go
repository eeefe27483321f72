package gamepaint

import (
	"errors"
	"sort"
	"sync"
)

// ErrCanvasNotFound is returned when an operation names a canvas id
// that has not been created.
var ErrCanvasNotFound = errors.New("gamepaint: canvas not found")

// Registry is a named collection of canvases. It decouples canvas
// lifetime from the operations that draw on them: callers create a
// canvas under an id, mutate it through any number of operations, and
// export it when done.
//
// Registry is safe for concurrent use. The map is guarded by a
// read-write mutex and each canvas carries its own lock, so operations
// on different canvases proceed in parallel while operations on the
// same canvas are serialized through With.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*registryEntry
}

type registryEntry struct {
	mu     sync.Mutex
	canvas *Canvas
}

// NewRegistry creates an empty canvas registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*registryEntry)}
}

// Create creates a canvas under the given id and returns it. An
// existing canvas with the same id is replaced.
func (r *Registry) Create(id string, width, height int, bg Color) *Canvas {
	c := NewCanvas(width, height, bg)
	r.Put(id, c)
	return c
}

// Put stores a canvas under the given id, replacing any existing entry.
func (r *Registry) Put(id string, c *Canvas) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[id] = &registryEntry{canvas: c}
}

// Get returns the canvas stored under id, or ErrCanvasNotFound.
//
// The returned canvas is shared; callers that mutate it concurrently
// should prefer With.
func (r *Registry) Get(id string) (*Canvas, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[id]
	if !ok {
		return nil, ErrCanvasNotFound
	}
	return e.canvas, nil
}

// With runs fn while holding the per-canvas lock for id, serializing it
// against other With calls for the same id. It returns
// ErrCanvasNotFound if the id does not exist, otherwise fn's error.
func (r *Registry) With(id string, fn func(*Canvas) error) error {
	r.mu.RLock()
	e, ok := r.entries[id]
	r.mu.RUnlock()
	if !ok {
		return ErrCanvasNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.canvas)
}

// Remove deletes the canvas stored under id. Removing an unknown id is
// a no-op.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, id)
}

// IDs returns the ids of all stored canvases in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.entries))
	for id := range r.entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Save encodes the canvas stored under id and writes it to path,
// returning the absolute path written.
func (r *Registry) Save(id, path string) (string, error) {
	var saved string
	err := r.With(id, func(c *Canvas) error {
		var err error
		saved, err = c.Save(path)
		return err
	})
	return saved, err
}
