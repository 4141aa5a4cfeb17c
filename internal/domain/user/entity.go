package user

import (
	"time"

	"github.com/google/uuid"
)

// Role is fixed at registration and never changes afterwards. Authorization
// decisions depend on it and on nothing else from the profile.
type Role string

const (
	RoleApplicant Role = "applicant"
	RoleRecruiter Role = "recruiter"
)

func (r Role) Valid() bool {
	return r == RoleApplicant || r == RoleRecruiter
}

type User struct {
	ID           uuid.UUID
	FullName     string
	Email        string
	PhoneNumber  string
	PasswordHash string
	Role         Role
	Profile      Profile
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Profile struct {
	Bio       string
	Skills    []string
	ResumeURL string
	AvatarURL string
}
