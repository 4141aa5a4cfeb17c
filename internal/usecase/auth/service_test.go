package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"job-portal/internal/domain/user"
)

type fakeUserRepo struct {
	byEmail map[string]user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]user.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, u user.User) error {
	if _, ok := f.byEmail[u.Email]; ok {
		return user.ErrDuplicate
	}
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) Update(_ context.Context, u user.User) error {
	for email, existing := range f.byEmail {
		if existing.ID == u.ID {
			if email != u.Email {
				delete(f.byEmail, email)
			}
			// Preserve credentials; profile updates never touch them.
			u.PasswordHash = existing.PasswordHash
			f.byEmail[u.Email] = u
			return nil
		}
	}
	return user.ErrNotFound
}

func TestRegisterAndLogin(t *testing.T) {
	svc := NewService(newFakeUserRepo())
	ctx := context.Background()

	usr, err := svc.Register(ctx, RegisterInput{
		FullName: "Jane Doe",
		Email:    "Jane@Example.com",
		Password: "superpassword",
		Role:     user.RoleRecruiter,
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if usr.Email != "jane@example.com" {
		t.Fatalf("email not normalized: %s", usr.Email)
	}
	if usr.PasswordHash != "" {
		t.Fatalf("password hash leaked in response")
	}

	got, err := svc.Login(ctx, LoginInput{Email: "jane@example.com", Password: "superpassword", Role: user.RoleRecruiter})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if got.ID != usr.ID {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := NewService(newFakeUserRepo())
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{
		FullName: "Jane Doe", Email: "jane@example.com", Password: "superpassword", Role: user.RoleApplicant,
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, err := svc.Login(ctx, LoginInput{Email: "jane@example.com", Password: "nope-nope-nope", Role: user.RoleApplicant})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_RoleMismatch(t *testing.T) {
	svc := NewService(newFakeUserRepo())
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{
		FullName: "Jane Doe", Email: "jane@example.com", Password: "superpassword", Role: user.RoleApplicant,
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, err := svc.Login(ctx, LoginInput{Email: "jane@example.com", Password: "superpassword", Role: user.RoleRecruiter})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials on role mismatch, got %v", err)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := NewService(newFakeUserRepo())
	ctx := context.Background()

	in := RegisterInput{FullName: "Jane Doe", Email: "jane@example.com", Password: "superpassword", Role: user.RoleApplicant}
	if _, err := svc.Register(ctx, in); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, err := svc.Register(ctx, in); !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestRegister_InvalidInput(t *testing.T) {
	svc := NewService(newFakeUserRepo())
	ctx := context.Background()

	cases := []RegisterInput{
		{FullName: "Jane", Email: "jane@example.com", Password: "short", Role: user.RoleApplicant},
		{FullName: "", Email: "jane@example.com", Password: "superpassword", Role: user.RoleApplicant},
		{FullName: "Jane", Email: "", Password: "superpassword", Role: user.RoleApplicant},
		{FullName: "Jane", Email: "jane@example.com", Password: "superpassword", Role: user.Role("admin")},
	}
	for i, in := range cases {
		if _, err := svc.Register(ctx, in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("case %d: expected ErrInvalidInput, got %v", i, err)
		}
	}
}

func TestUpdateProfile_RolePreserved(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo)
	ctx := context.Background()

	usr, err := svc.Register(ctx, RegisterInput{
		FullName: "Jane Doe", Email: "jane@example.com", Password: "superpassword", Role: user.RoleApplicant,
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	bio := "Gopher since 2015"
	updated, err := svc.UpdateProfile(ctx, usr.ID, UpdateProfileInput{Bio: &bio, Skills: []string{"Go", "SQL"}})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Role != user.RoleApplicant {
		t.Fatalf("role changed on profile update: %s", updated.Role)
	}
	if updated.Profile.Bio != bio || len(updated.Profile.Skills) != 2 {
		t.Fatalf("profile not applied: %+v", updated.Profile)
	}
}
