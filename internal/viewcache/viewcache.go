package viewcache

import (
	"sync"
	"time"
)

// Revalidator marks a logical view path stale after a mutation. It is
// fire-and-forget: implementations must never fail the mutation that
// called them.
type Revalidator interface {
	RevalidatePath(path string)
}

// ViewCache tracks which rendered view paths have been invalidated and
// when, so the render layer knows to recompute them on next access.
type ViewCache struct {
	mu    sync.RWMutex
	stale map[string]time.Time
}

// New creates an empty ViewCache.
func New() *ViewCache {
	return &ViewCache{stale: make(map[string]time.Time)}
}

// RevalidatePath marks the view at path as stale.
func (vc *ViewCache) RevalidatePath(path string) {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	vc.stale[path] = time.Now()
}

// IsStale reports whether the view at path was invalidated and not yet
// cleared.
func (vc *ViewCache) IsStale(path string) bool {
	vc.mu.RLock()
	defer vc.mu.RUnlock()
	_, ok := vc.stale[path]
	return ok
}

// Clear acknowledges a recompute of the view at path.
func (vc *ViewCache) Clear(path string) {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	delete(vc.stale, path)
}

// StalePaths returns the invalidated paths, for diagnostics.
func (vc *ViewCache) StalePaths() []string {
	vc.mu.RLock()
	defer vc.mu.RUnlock()
	paths := make([]string, 0, len(vc.stale))
	for p := range vc.stale {
		paths = append(paths, p)
	}
	return paths
}
