package access

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"job-portal/internal/domain/user"
)

func TestAuthorize_AnonymousOnlyReadsPublic(t *testing.T) {
	if d := Authorize(nil, ActionReadPublic, Resource{}); !d.Allowed {
		t.Fatalf("anonymous read-public should be allowed, got %+v", d)
	}

	actions := []Action{
		ActionCreateCompany, ActionUpdateCompany, ActionReadCompany,
		ActionCreateJob, ActionUpdateJob, ActionReadAdminJobs,
		ActionReadApplicants, ActionUpdateApplicationStatus,
		ActionCreateApplication, ActionReadOwnApplications,
	}
	for _, a := range actions {
		d := Authorize(nil, a, Resource{})
		if d.Allowed {
			t.Fatalf("anonymous %s should be denied", a)
		}
		if d.Reason != DenyUnauthenticated {
			t.Fatalf("anonymous %s: expected %s, got %s", a, DenyUnauthenticated, d.Reason)
		}
	}
}

func TestAuthorize_RecruiterActionsDeniedForApplicants(t *testing.T) {
	sess := &Session{UserID: uuid.New(), Role: user.RoleApplicant}

	actions := []Action{
		ActionCreateJob, ActionUpdateJob, ActionReadAdminJobs,
		ActionReadApplicants, ActionUpdateApplicationStatus,
		ActionCreateCompany, ActionUpdateCompany,
	}
	for _, a := range actions {
		d := Authorize(sess, a, Resource{})
		if d.Allowed {
			t.Fatalf("applicant %s should be denied", a)
		}
		if d.Reason != DenyWrongRole {
			t.Fatalf("applicant %s: expected %s, got %s", a, DenyWrongRole, d.Reason)
		}
	}
}

func TestAuthorize_ApplicantActionsDeniedForRecruiters(t *testing.T) {
	sess := &Session{UserID: uuid.New(), Role: user.RoleRecruiter}

	for _, a := range []Action{ActionCreateApplication, ActionReadOwnApplications} {
		d := Authorize(sess, a, Resource{})
		if d.Allowed {
			t.Fatalf("recruiter %s should be denied", a)
		}
		if d.Reason != DenyWrongRole {
			t.Fatalf("recruiter %s: expected %s, got %s", a, DenyWrongRole, d.Reason)
		}
	}
}

func TestAuthorize_OwnershipRequiredWhenResourceOwned(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()

	cases := []struct {
		name    string
		sess    *Session
		res     Resource
		allowed bool
		reason  DenyReason
	}{
		{
			name:    "owner may update",
			sess:    &Session{UserID: owner, Role: user.RoleRecruiter},
			res:     Resource{OwnerID: owner, Owned: true},
			allowed: true,
		},
		{
			name:   "other recruiter denied",
			sess:   &Session{UserID: stranger, Role: user.RoleRecruiter},
			res:    Resource{OwnerID: owner, Owned: true},
			reason: DenyNotOwner,
		},
		{
			name:    "unowned resource needs role only",
			sess:    &Session{UserID: stranger, Role: user.RoleRecruiter},
			res:     Resource{},
			allowed: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, a := range []Action{ActionUpdateJob, ActionReadApplicants, ActionUpdateApplicationStatus} {
				d := Authorize(tc.sess, a, tc.res)
				if d.Allowed != tc.allowed {
					t.Fatalf("%s: expected allowed=%v, got %+v", a, tc.allowed, d)
				}
				if !tc.allowed && d.Reason != tc.reason {
					t.Fatalf("%s: expected reason %s, got %s", a, tc.reason, d.Reason)
				}
			}
		})
	}
}

func TestDecision_Err(t *testing.T) {
	if err := (Decision{Allowed: true}).Err(); err != nil {
		t.Fatalf("allowed decision should map to nil, got %v", err)
	}

	err := Authorize(nil, ActionCreateJob, Resource{}).Err()
	if !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}

	sess := &Session{UserID: uuid.New(), Role: user.RoleApplicant}
	err = Authorize(sess, ActionCreateJob, Resource{}).Err()
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

