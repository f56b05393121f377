// AngelaMos | 2026
// dto.go

package user

import (
	"time"
)

type UpdateProfileRequest struct {
	Name     *string `json:"name"     validate:"omitempty,min=1,max=100"`
	Phone    *string `json:"phone"    validate:"omitempty,max=20"`
	Location *string `json:"location" validate:"omitempty,max=255"`
}

type ProfileResponse struct {
	ID            string     `json:"id"`
	Email         string     `json:"email"`
	Name          string     `json:"name"`
	Phone         *string    `json:"phone,omitempty"`
	UserType      string     `json:"user_type"`
	Location      *string    `json:"location,omitempty"`
	EmailVerified bool       `json:"email_verified"`
	CreatedAt     time.Time  `json:"created_at"`
	LastLogin     *time.Time `json:"last_login,omitempty"`
}

func toProfileResponse(u *User) ProfileResponse {
	return ProfileResponse{
		ID:            u.ID,
		Email:         u.Email,
		Name:          u.Name,
		Phone:         u.Phone,
		UserType:      u.UserType,
		Location:      u.Location,
		EmailVerified: u.EmailVerified,
		CreatedAt:     u.CreatedAt,
		LastLogin:     u.LastLogin,
	}
}
