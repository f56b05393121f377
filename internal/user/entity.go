// AngelaMos | 2026
// entity.go

package user

import (
	"time"
)

type User struct {
	ID            string     `db:"id"`
	Email         string     `db:"email"`
	PasswordHash  string     `db:"password_hash"`
	Name          string     `db:"name"`
	Phone         *string    `db:"phone"`
	UserType      string     `db:"user_type"`
	Location      *string    `db:"location"`
	IsActive      bool       `db:"is_active"`
	EmailVerified bool       `db:"email_verified"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
	LastLogin     *time.Time `db:"last_login"`
}

func (u *User) IsFarmer() bool {
	return u.UserType == RoleFarmer
}

func (u *User) IsGovernment() bool {
	return u.UserType == RoleGovernment
}

const (
	RoleFarmer     = "farmer"
	RoleGovernment = "government"
)
