package company

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"job-portal/internal/access"
	"job-portal/internal/domain/company"
	"job-portal/internal/domain/user"
)

type fakeCompanyRepo struct {
	byID map[uuid.UUID]company.Company
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{byID: make(map[uuid.UUID]company.Company)}
}

func (f *fakeCompanyRepo) Create(_ context.Context, c company.Company) error {
	for _, existing := range f.byID {
		if existing.Name == c.Name {
			return company.ErrDuplicate
		}
	}
	f.byID[c.ID] = c
	return nil
}

func (f *fakeCompanyRepo) GetByID(_ context.Context, id uuid.UUID) (company.Company, error) {
	c, ok := f.byID[id]
	if !ok {
		return company.Company{}, company.ErrNotFound
	}
	return c, nil
}

func (f *fakeCompanyRepo) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]company.Company, error) {
	out := make([]company.Company, 0)
	for _, c := range f.byID {
		if c.OwnerID == ownerID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCompanyRepo) Update(_ context.Context, c company.Company) error {
	if _, ok := f.byID[c.ID]; !ok {
		return company.ErrNotFound
	}
	f.byID[c.ID] = c
	return nil
}

func recruiterSession() *access.Session {
	return &access.Session{UserID: uuid.New(), Role: user.RoleRecruiter}
}

func TestRegister_RecruiterOwnsCompany(t *testing.T) {
	svc := NewService(newFakeCompanyRepo(), nil)
	sess := recruiterSession()

	c, err := svc.Register(context.Background(), sess, RegisterInput{Name: "Acme"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if c.OwnerID != sess.UserID {
		t.Fatalf("company not owned by caller: %+v", c)
	}
}

func TestRegister_ApplicantDenied(t *testing.T) {
	svc := NewService(newFakeCompanyRepo(), nil)
	sess := &access.Session{UserID: uuid.New(), Role: user.RoleApplicant}

	_, err := svc.Register(context.Background(), sess, RegisterInput{Name: "Acme"})
	if !errors.Is(err, access.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestRegister_AnonymousDenied(t *testing.T) {
	svc := NewService(newFakeCompanyRepo(), nil)

	_, err := svc.Register(context.Background(), nil, RegisterInput{Name: "Acme"})
	if !errors.Is(err, access.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestUpdate_OtherRecruiterDenied(t *testing.T) {
	repo := newFakeCompanyRepo()
	svc := NewService(repo, nil)
	owner := recruiterSession()

	c, err := svc.Register(context.Background(), owner, RegisterInput{Name: "Acme"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	name := "Evil Corp"
	_, err = svc.Update(context.Background(), recruiterSession(), c.ID, UpdateInput{Name: &name})
	if !errors.Is(err, access.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if stored := repo.byID[c.ID]; stored.Name != "Acme" {
		t.Fatalf("denied update mutated storage: %+v", stored)
	}
}

func TestUpdate_OwnerPatchesFields(t *testing.T) {
	repo := newFakeCompanyRepo()
	svc := NewService(repo, nil)
	owner := recruiterSession()

	c, err := svc.Register(context.Background(), owner, RegisterInput{Name: "Acme"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	site := "https://acme.example"
	updated, err := svc.Update(context.Background(), owner, c.ID, UpdateInput{Website: &site})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Website != site || updated.Name != "Acme" {
		t.Fatalf("patch semantics broken: %+v", updated)
	}
}

func TestGet_OtherRecruiterDenied(t *testing.T) {
	repo := newFakeCompanyRepo()
	svc := NewService(repo, nil)
	owner := recruiterSession()

	c, err := svc.Register(context.Background(), owner, RegisterInput{Name: "Acme"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, err := svc.Get(context.Background(), recruiterSession(), c.ID); !errors.Is(err, access.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if got, err := svc.Get(context.Background(), owner, c.ID); err != nil || got.ID != c.ID {
		t.Fatalf("owner read failed: %v", err)
	}
}

func TestRegister_DuplicateName(t *testing.T) {
	svc := NewService(newFakeCompanyRepo(), nil)
	sess := recruiterSession()

	if _, err := svc.Register(context.Background(), sess, RegisterInput{Name: "Acme"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), sess, RegisterInput{Name: "Acme"}); !errors.Is(err, company.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}
