// Package access is the single place where role and ownership rules are
// decided. Callers supply the session and the target's ownership metadata;
// the decision itself performs no I/O.
package access

import (
	"job-portal/internal/domain/user"

	"github.com/google/uuid"
)

type Action string

const (
	ActionReadPublic              Action = "read-public"
	ActionCreateCompany           Action = "create-company"
	ActionUpdateCompany           Action = "update-company"
	ActionReadCompany             Action = "read-company"
	ActionCreateJob               Action = "create-job"
	ActionUpdateJob               Action = "update-job"
	ActionReadAdminJobs           Action = "read-admin-jobs"
	ActionReadApplicants          Action = "read-applicants"
	ActionUpdateApplicationStatus Action = "update-application-status"
	ActionCreateApplication       Action = "create-application"
	ActionReadOwnApplications     Action = "read-own-applications"
)

// Session is the authenticated identity attached to a request. A nil
// *Session means anonymous.
type Session struct {
	UserID uuid.UUID
	Role   user.Role
}

// Resource carries the ownership metadata of the target entity. Owned is
// false for actions that have no concrete target yet (e.g. creating a
// company).
type Resource struct {
	OwnerID uuid.UUID
	Owned   bool
}

type DenyReason string

const (
	DenyUnauthenticated DenyReason = "unauthenticated"
	DenyWrongRole       DenyReason = "wrong role"
	DenyNotOwner        DenyReason = "not resource owner"
	DenyUnknownAction   DenyReason = "unknown action"
)

type Decision struct {
	Allowed bool
	Reason  DenyReason
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(reason DenyReason) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// Authorize decides whether the session may perform action on the resource.
// Deny overrides allow: anonymous sessions only get read-public, recruiter
// actions additionally require ownership whenever the resource carries it,
// and applicant actions require the applicant role.
func Authorize(sess *Session, action Action, res Resource) Decision {
	if action == ActionReadPublic {
		return allow()
	}
	if sess == nil {
		return deny(DenyUnauthenticated)
	}

	switch action {
	case ActionCreateCompany, ActionReadCompany, ActionReadAdminJobs:
		if sess.Role != user.RoleRecruiter {
			return deny(DenyWrongRole)
		}
		return requireOwnership(sess, res)

	case ActionCreateJob, ActionUpdateCompany, ActionUpdateJob,
		ActionReadApplicants, ActionUpdateApplicationStatus:
		if sess.Role != user.RoleRecruiter {
			return deny(DenyWrongRole)
		}
		return requireOwnership(sess, res)

	case ActionCreateApplication, ActionReadOwnApplications:
		if sess.Role != user.RoleApplicant {
			return deny(DenyWrongRole)
		}
		return allow()

	default:
		return deny(DenyUnknownAction)
	}
}

func requireOwnership(sess *Session, res Resource) Decision {
	if !res.Owned {
		return allow()
	}
	if res.OwnerID != sess.UserID {
		return deny(DenyNotOwner)
	}
	return allow()
}
