package client

import (
	"context"
	"errors"
	"testing"
	"time"
)

func waitDone(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("fetch never settled")
	}
}

func TestView_ActivateCommitsSnapshot(t *testing.T) {
	store := NewStore()
	v := NewView(store, SlotAllJobs, func(context.Context) (any, error) {
		return []string{"go developer"}, nil
	})

	waitDone(t, v.Activate(context.Background()))

	got, ok := store.Get(SlotAllJobs)
	if !ok {
		t.Fatalf("snapshot not committed")
	}
	if jobs := got.([]string); len(jobs) != 1 || jobs[0] != "go developer" {
		t.Fatalf("unexpected snapshot: %v", jobs)
	}
	if v.Err() != nil {
		t.Fatalf("unexpected error: %v", v.Err())
	}
}

func TestView_FailureLeavesSlotUntouched(t *testing.T) {
	store := NewStore()
	store.Set(SlotAllJobs, "previous snapshot")

	fetchErr := errors.New("network down")
	v := NewView(store, SlotAllJobs, func(context.Context) (any, error) {
		return nil, fetchErr
	})

	waitDone(t, v.Activate(context.Background()))

	got, _ := store.Get(SlotAllJobs)
	if got != "previous snapshot" {
		t.Fatalf("failed fetch overwrote slot: %v", got)
	}
	if !errors.Is(v.Err(), fetchErr) {
		t.Fatalf("expected recorded error, got %v", v.Err())
	}
}

func TestView_DeactivateBeforeResolveDiscards(t *testing.T) {
	store := NewStore()
	release := make(chan struct{})
	v := NewView(store, SlotAllAdminJobs, func(context.Context) (any, error) {
		<-release
		return "late result", nil
	})

	done := v.Activate(context.Background())
	v.Deactivate()
	close(release)
	waitDone(t, done)

	if _, ok := store.Get(SlotAllAdminJobs); ok {
		t.Fatalf("discarded fetch still wrote the slot")
	}
}

func TestView_StaleGenerationDiscarded(t *testing.T) {
	store := NewStore()
	firstRelease := make(chan struct{})
	calls := 0
	v := NewView(store, SlotAllJobs, func(context.Context) (any, error) {
		calls++
		if calls == 1 {
			<-firstRelease
			return "stale", nil
		}
		return "fresh", nil
	})

	first := v.Activate(context.Background())
	second := v.Refresh(context.Background())
	waitDone(t, second)
	close(firstRelease)
	waitDone(t, first)

	got, _ := store.Get(SlotAllJobs)
	if got != "fresh" {
		t.Fatalf("stale fetch won over the latest activation: %v", got)
	}
}

func TestView_SuccessClearsPreviousError(t *testing.T) {
	store := NewStore()
	fail := true
	v := NewView(store, SlotAppliedJobs, func(context.Context) (any, error) {
		if fail {
			return nil, errors.New("boom")
		}
		return "ok", nil
	})

	waitDone(t, v.Activate(context.Background()))
	if v.Err() == nil {
		t.Fatalf("expected recorded error")
	}

	fail = false
	waitDone(t, v.Refresh(context.Background()))
	if v.Err() != nil {
		t.Fatalf("error not cleared on success: %v", v.Err())
	}
}
