package client

import (
	"context"
	"sync"
)

// FetchFunc loads one snapshot of a collection.
type FetchFunc func(ctx context.Context) (any, error)

// View binds a slot to a fetch for the lifetime of one mounted view.
// Each Activate issues exactly one request; only the most recent activation
// may commit, and nothing commits after Deactivate. Failures leave the slot
// untouched and are recorded for the UI; there is no retry.
type View struct {
	store *Store
	slot  string
	fetch FetchFunc

	mu      sync.Mutex
	gen     uint64
	active  bool
	lastErr error
}

func NewView(store *Store, slot string, fetch FetchFunc) *View {
	return &View{store: store, slot: slot, fetch: fetch}
}

// Activate starts one fetch. The returned channel closes when the attempt
// has either committed or been discarded.
func (v *View) Activate(ctx context.Context) <-chan struct{} {
	v.mu.Lock()
	v.active = true
	v.gen++
	gen := v.gen
	v.mu.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		snapshot, err := v.fetch(ctx)
		v.commit(gen, snapshot, err)
	}()
	return done
}

// Deactivate marks the view unmounted; any in-flight result is discarded
// on arrival.
func (v *View) Deactivate() {
	v.mu.Lock()
	v.active = false
	v.gen++
	v.mu.Unlock()
}

// Err returns the failure recorded by the most recent committed attempt.
func (v *View) Err() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.lastErr
}

func (v *View) commit(gen uint64, snapshot any, err error) {
	v.mu.Lock()
	if !v.active || gen != v.gen {
		// The view unmounted or re-activated while this fetch was in
		// flight; its result no longer has an owner.
		v.mu.Unlock()
		return
	}
	if err != nil {
		v.lastErr = err
		v.mu.Unlock()
		return
	}
	v.lastErr = nil
	v.mu.Unlock()

	v.store.Set(v.slot, snapshot)
}

// Refresh re-issues the fetch for a still-mounted view, e.g. when a route
// parameter or search term changes. Semantically identical to Activate.
func (v *View) Refresh(ctx context.Context) <-chan struct{} {
	return v.Activate(ctx)
}
