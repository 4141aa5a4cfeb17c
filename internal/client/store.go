// Package client is the consumer side of the sync layer: a process-wide
// snapshot store, an HTTP client that speaks the API envelope, view-bound
// fetches with discard-on-deactivate semantics, and a recruiter route guard.
package client

import (
	"sync"

	"github.com/google/uuid"

	"job-portal/internal/domain/user"
)

// Well-known collection slots.
const (
	SlotAllJobs      = "allJobs"
	SlotAllAdminJobs = "allAdminJobs"
	SlotAppliedJobs  = "appliedJobs"
	SlotIdentity     = "identity"
)

// SlotApplicantsForJob names the per-job applicant list slot.
func SlotApplicantsForJob(jobID uuid.UUID) string {
	return "applicantsForJob:" + jobID.String()
}

// Identity is the hydrated session identity. A nil *Identity means
// unauthenticated.
type Identity struct {
	UserID   uuid.UUID
	FullName string
	Email    string
	Role     user.Role
}

// Store holds the latest snapshot per collection slot. Writes replace the
// slot wholesale; there is no merging. Any number of readers may subscribe
// to change notifications.
type Store struct {
	mu      sync.RWMutex
	slots   map[string]any
	subs    map[int]chan string
	nextSub int
}

func NewStore() *Store {
	return &Store{
		slots: make(map[string]any),
		subs:  make(map[int]chan string),
	}
}

// Get returns the current snapshot for a slot, if any.
func (s *Store) Get(slot string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.slots[slot]
	return v, ok
}

// Set replaces the slot's snapshot and notifies subscribers.
func (s *Store) Set(slot string, snapshot any) {
	s.mu.Lock()
	s.slots[slot] = snapshot
	s.mu.Unlock()
	s.notify(slot)
}

// Clear drops the slot's snapshot and notifies subscribers.
func (s *Store) Clear(slot string) {
	s.mu.Lock()
	delete(s.slots, slot)
	s.mu.Unlock()
	s.notify(slot)
}

// Subscribe returns a channel of changed slot names and a cancel func.
// Slow subscribers miss notifications rather than blocking writers.
func (s *Store) Subscribe() (<-chan string, func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	ch := make(chan string, 16)
	s.subs[id] = ch
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		if existing, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(existing)
		}
		s.mu.Unlock()
	}
	return ch, cancel
}

func (s *Store) notify(slot string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, ch := range s.subs {
		select {
		case ch <- slot:
		default:
		}
	}
}

// SetIdentity publishes the session identity; pass nil on logout.
func (s *Store) SetIdentity(id *Identity) {
	s.Set(SlotIdentity, id)
}

// Identity returns the hydrated identity or nil when unauthenticated.
func (s *Store) Identity() *Identity {
	v, ok := s.Get(SlotIdentity)
	if !ok {
		return nil
	}
	id, _ := v.(*Identity)
	return id
}
