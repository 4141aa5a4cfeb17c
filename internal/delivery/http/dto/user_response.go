package dto

import (
	"time"

	"github.com/google/uuid"

	"job-portal/internal/domain/user"
)

type ProfileResponse struct {
	Bio       string   `json:"bio"`
	Skills    []string `json:"skills"`
	ResumeURL string   `json:"resume_url"`
	AvatarURL string   `json:"avatar_url"`
}

type UserResponse struct {
	ID          uuid.UUID       `json:"id"`
	FullName    string          `json:"full_name"`
	Email       string          `json:"email"`
	PhoneNumber string          `json:"phone_number"`
	Role        user.Role       `json:"role"`
	Profile     ProfileResponse `json:"profile"`
	CreatedAt   time.Time       `json:"created_at"`
}

func FromUser(u user.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		FullName:    u.FullName,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Role:        u.Role,
		Profile: ProfileResponse{
			Bio:       u.Profile.Bio,
			Skills:    u.Profile.Skills,
			ResumeURL: u.Profile.ResumeURL,
			AvatarURL: u.Profile.AvatarURL,
		},
		CreatedAt: u.CreatedAt,
	}
}
