package client

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"job-portal/internal/domain/user"
)

func TestGuard_Evaluate(t *testing.T) {
	tests := []struct {
		name     string
		identity *Identity
		want     GuardOutcome
	}{
		{"not hydrated", nil, GuardChecking},
		{"applicant", &Identity{UserID: uuid.New(), Role: user.RoleApplicant}, GuardRedirect},
		{"recruiter", &Identity{UserID: uuid.New(), Role: user.RoleRecruiter}, GuardRender},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewStore()
			if tt.identity != nil {
				store.SetIdentity(tt.identity)
			}
			g := NewRouteGuard(store, "/")
			if got := g.Evaluate(); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestGuard_DefaultPublicRoute(t *testing.T) {
	g := NewRouteGuard(NewStore(), "")
	if g.PublicRoute() != "/" {
		t.Fatalf("expected default public route, got %q", g.PublicRoute())
	}
}

func TestGuard_WatchReactsToLogout(t *testing.T) {
	store := NewStore()
	store.SetIdentity(&Identity{UserID: uuid.New(), Role: user.RoleRecruiter})

	g := NewRouteGuard(store, "/")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	outcomes := make(chan GuardOutcome, 8)
	g.Watch(ctx, func(o GuardOutcome) { outcomes <- o })

	expect := func(want GuardOutcome) {
		t.Helper()
		select {
		case got := <-outcomes:
			if got != want {
				t.Fatalf("expected %v, got %v", want, got)
			}
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for outcome %v", want)
		}
	}

	expect(GuardRender)

	// A logout in another tab clears the identity slot; the mounted view
	// must not stay rendered.
	store.SetIdentity(nil)
	expect(GuardChecking)

	// Signing back in as an applicant redirects instead of rendering.
	store.SetIdentity(&Identity{UserID: uuid.New(), Role: user.RoleApplicant})
	expect(GuardRedirect)
}

func TestGuard_WatchIgnoresUnrelatedSlots(t *testing.T) {
	store := NewStore()
	store.SetIdentity(&Identity{UserID: uuid.New(), Role: user.RoleRecruiter})

	g := NewRouteGuard(store, "/")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	outcomes := make(chan GuardOutcome, 8)
	g.Watch(ctx, func(o GuardOutcome) { outcomes <- o })

	select {
	case got := <-outcomes:
		if got != GuardRender {
			t.Fatalf("expected initial GuardRender, got %v", got)
		}
	case <-time.After(time.Second):
		t.Fatalf("no initial outcome")
	}

	store.Set(SlotAllJobs, []string{"irrelevant"})

	select {
	case got := <-outcomes:
		t.Fatalf("unexpected re-evaluation on unrelated slot: %v", got)
	case <-time.After(100 * time.Millisecond):
	}
}
