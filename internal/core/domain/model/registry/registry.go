// Package registry keeps the client's cache of order snapshots as last
// reported by the server. The cache is replaced wholesale on every refresh;
// individual entries are never patched in place, which keeps the local view
// a faithful copy of one server response.
package registry

import (
	"sync"
	"time"

	"pedidos/internal/core/domain/model/order"
)

// Filter narrows which orders the next refresh asks the server for. Empty
// fields mean no restriction.
type Filter struct {
	Fornecedor string
	Status     order.Status
}

// Registry is the shared order cache. Reads and writes may come from the UI
// flow and the background refresh job at the same time, so all access is
// mutex-guarded.
type Registry struct {
	mu        sync.RWMutex
	orders    []order.Order
	byID      map[int]int
	filter    Filter
	syncedAt  time.Time
	everSynct bool
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{byID: map[int]int{}}
}

// Replace swaps the whole cache for the given server response, preserving
// the response order.
func (r *Registry) Replace(orders []order.Order) {
	copied := make([]order.Order, len(orders))
	copy(copied, orders)

	byID := make(map[int]int, len(copied))
	for i, o := range copied {
		byID[o.ID()] = i
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = copied
	r.byID = byID
	r.syncedAt = time.Now()
	r.everSynct = true
}

// Orders returns a copy of the cached snapshots in server order.
func (r *Registry) Orders() []order.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()

	copied := make([]order.Order, len(r.orders))
	copy(copied, r.orders)
	return copied
}

// Get looks an order up by id in the cache.
func (r *Registry) Get(id int) (order.Order, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byID[id]
	if !ok {
		return order.Order{}, false
	}
	return r.orders[i], true
}

// Len returns the number of cached orders.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.orders)
}

// SetFilter records the filter the next refresh should use. Changing the
// filter does not touch the cached orders; the stale view stays visible
// until the refresh lands.
func (r *Registry) SetFilter(f Filter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.filter = f
}

// Filter returns the currently selected refresh filter.
func (r *Registry) Filter() Filter {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filter
}

// SyncedAt returns the time of the last successful Replace and whether one
// ever happened.
func (r *Registry) SyncedAt() (time.Time, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.syncedAt, r.everSynct
}
