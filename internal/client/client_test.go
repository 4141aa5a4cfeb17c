package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"job-portal/internal/domain/user"
)

func TestClient_LoginHydratesIdentityAndCarriesCookie(t *testing.T) {
	userID := uuid.New()
	var sawCookie bool

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/user/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("bad login body: %v", err)
		}
		http.SetCookie(w, &http.Cookie{Name: "token", Value: "session-token", Path: "/"})
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": "login successful",
			"user": map[string]any{
				"id":        userID,
				"full_name": "Jane Doe",
				"email":     "jane@example.com",
				"role":      "recruiter",
			},
		})
	})
	mux.HandleFunc("GET /api/v1/job/getadminjobs", func(w http.ResponseWriter, r *http.Request) {
		if ck, err := r.Cookie("token"); err == nil && ck.Value == "session-token" {
			sawCookie = true
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"jobs":    []map[string]any{{"id": uuid.New(), "title": "Go Developer"}},
		})
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	store := NewStore()
	c, err := New(srv.URL, store, nil)
	if err != nil {
		t.Fatalf("client: %v", err)
	}
	ctx := context.Background()

	if err := c.Login(ctx, "jane@example.com", "superpassword", user.RoleRecruiter); err != nil {
		t.Fatalf("login: %v", err)
	}
	id := store.Identity()
	if id == nil || id.UserID != userID || id.Role != user.RoleRecruiter {
		t.Fatalf("identity not hydrated: %+v", id)
	}

	jobs, err := c.FetchAdminJobs(ctx)
	if err != nil {
		t.Fatalf("fetch admin jobs: %v", err)
	}
	if len(jobs) != 1 || jobs[0].Title != "Go Developer" {
		t.Fatalf("unexpected jobs: %+v", jobs)
	}
	if !sawCookie {
		t.Fatalf("session cookie not sent on subsequent request")
	}
}

func TestClient_UnauthenticatedFetchLeavesSlotUntouched(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/job/getadminjobs", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]any{
			"success": false,
			"message": "authentication required",
		})
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	store := NewStore()
	store.Set(SlotAllAdminJobs, "previous snapshot")
	c, err := New(srv.URL, store, nil)
	if err != nil {
		t.Fatalf("client: %v", err)
	}

	v := NewView(store, SlotAllAdminJobs, func(ctx context.Context) (any, error) {
		return c.FetchAdminJobs(ctx)
	})
	<-v.Activate(context.Background())

	var apiErr *APIError
	if !errors.As(v.Err(), &apiErr) {
		t.Fatalf("expected APIError, got %v", v.Err())
	}
	if apiErr.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", apiErr.StatusCode)
	}
	if got, _ := store.Get(SlotAllAdminJobs); got != "previous snapshot" {
		t.Fatalf("failed fetch touched the slot: %v", got)
	}
}

func TestClient_SuccessFalseOn200IsAnError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/job", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"success": false,
			"message": "something went sideways",
		})
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	c, err := New(srv.URL, NewStore(), nil)
	if err != nil {
		t.Fatalf("client: %v", err)
	}

	_, err = c.FetchJobs(context.Background(), "")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Message != "something went sideways" {
		t.Fatalf("unexpected message: %q", apiErr.Message)
	}
}

func TestClient_LogoutClearsIdentityEvenOnFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/user/logout", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"message": "internal server error",
		})
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	store := NewStore()
	store.SetIdentity(&Identity{UserID: uuid.New(), Role: user.RoleRecruiter})
	c, err := New(srv.URL, store, nil)
	if err != nil {
		t.Fatalf("client: %v", err)
	}

	if err := c.Logout(context.Background()); err == nil {
		t.Fatalf("expected logout error")
	}
	if store.Identity() != nil {
		t.Fatalf("identity survived logout")
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
