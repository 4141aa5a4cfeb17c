package client

import (
	"context"

	"job-portal/internal/domain/user"
)

type GuardOutcome int

const (
	// GuardChecking renders nothing: the identity is not hydrated yet.
	GuardChecking GuardOutcome = iota
	// GuardRender lets the guarded recruiter subtree mount.
	GuardRender
	// GuardRedirect sends the caller to the public landing route.
	GuardRedirect
)

// RouteGuard keeps recruiter-only views away from everyone else. It reads
// the cached identity only; hydration happens through login or a prior
// session-check fetch. The guard is not a one-shot check: it re-evaluates
// whenever the identity slot changes, so a logout in another tab redirects
// a mounted view.
type RouteGuard struct {
	store       *Store
	publicRoute string
}

func NewRouteGuard(store *Store, publicRoute string) *RouteGuard {
	if publicRoute == "" {
		publicRoute = "/"
	}
	return &RouteGuard{store: store, publicRoute: publicRoute}
}

func (g *RouteGuard) PublicRoute() string {
	return g.publicRoute
}

// Evaluate maps the current identity to an outcome.
func (g *RouteGuard) Evaluate() GuardOutcome {
	id := g.store.Identity()
	if id == nil {
		return GuardChecking
	}
	if id.Role != user.RoleRecruiter {
		return GuardRedirect
	}
	return GuardRender
}

// Watch emits the current outcome, then a new outcome every time the
// identity slot changes it, until ctx is cancelled.
func (g *RouteGuard) Watch(ctx context.Context, onChange func(GuardOutcome)) {
	ch, cancel := g.store.Subscribe()

	go func() {
		defer cancel()

		last := g.Evaluate()
		onChange(last)

		for {
			select {
			case <-ctx.Done():
				return
			case slot, ok := <-ch:
				if !ok {
					return
				}
				if slot != SlotIdentity {
					continue
				}
				if next := g.Evaluate(); next != last {
					last = next
					onChange(next)
				}
			}
		}
	}()
}
