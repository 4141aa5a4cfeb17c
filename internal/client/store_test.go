package client

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"job-portal/internal/domain/user"
)

func TestStore_SetReplacesWholesale(t *testing.T) {
	s := NewStore()

	s.Set(SlotAllJobs, []string{"a", "b", "c"})
	s.Set(SlotAllJobs, []string{"z"})

	v, ok := s.Get(SlotAllJobs)
	if !ok {
		t.Fatalf("slot missing after Set")
	}
	got := v.([]string)
	if len(got) != 1 || got[0] != "z" {
		t.Fatalf("expected replacement snapshot, got %v", got)
	}
}

func TestStore_ClearDropsSlot(t *testing.T) {
	s := NewStore()
	s.Set(SlotAppliedJobs, []int{1, 2})
	s.Clear(SlotAppliedJobs)

	if _, ok := s.Get(SlotAppliedJobs); ok {
		t.Fatalf("slot survived Clear")
	}
}

func TestStore_SubscribeReceivesSlotNames(t *testing.T) {
	s := NewStore()
	ch, cancel := s.Subscribe()
	defer cancel()

	s.Set(SlotAllJobs, nil)
	s.Clear(SlotAllJobs)

	for _, want := range []string{SlotAllJobs, SlotAllJobs} {
		select {
		case slot := <-ch:
			if slot != want {
				t.Fatalf("expected %q, got %q", want, slot)
			}
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for notification")
		}
	}
}

func TestStore_CancelStopsNotifications(t *testing.T) {
	s := NewStore()
	ch, cancel := s.Subscribe()
	cancel()
	cancel() // idempotent

	s.Set(SlotAllJobs, nil)

	if _, ok := <-ch; ok {
		t.Fatalf("received on cancelled subscription")
	}
}

func TestStore_Identity(t *testing.T) {
	s := NewStore()

	if s.Identity() != nil {
		t.Fatalf("expected nil identity before hydration")
	}

	id := &Identity{UserID: uuid.New(), FullName: "Jane", Email: "jane@example.com", Role: user.RoleRecruiter}
	s.SetIdentity(id)
	if got := s.Identity(); got == nil || got.UserID != id.UserID {
		t.Fatalf("identity not hydrated: %+v", got)
	}

	s.SetIdentity(nil)
	if s.Identity() != nil {
		t.Fatalf("expected nil identity after logout")
	}
}

func TestStore_ApplicantSlotPerJob(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	if SlotApplicantsForJob(a) == SlotApplicantsForJob(b) {
		t.Fatalf("applicant slots must be distinct per job")
	}
}
