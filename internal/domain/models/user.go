package models

import (
	"time"

	"bookingplan/internal/domain"
)

type User struct {
	ID           int64       `db:"id" json:"id"`
	Username     string      `db:"username" json:"username"`
	Email        string      `db:"email" json:"email"`
	PasswordHash string      `db:"password_hash" json:"-"`
	Role         domain.Role `db:"role" json:"role"`
	CreatedAt    time.Time   `db:"created_at" json:"created_at"`
}

type PublicUser struct {
	ID        int64       `json:"id"`
	Username  string      `json:"username"`
	Email     string      `json:"email"`
	Role      domain.Role `json:"role"`
	CreatedAt time.Time   `json:"created_at"`
}

func (u *User) ToPublic() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// Profile holds the personal details attached one-to-one to a user.
type Profile struct {
	UserID            int64  `db:"user_id" json:"user_id"`
	FullName          string `db:"full_name" json:"full_name" validate:"required,max=255"`
	PhoneNumber       string `db:"phone_number" json:"phone_number" validate:"required,max=15"`
	Address           string `db:"address" json:"address" validate:"required,max=255"`
	TravelPreferences string `db:"travel_preferences" json:"travel_preferences"`
	ProfilePicture    string `db:"profile_picture" json:"profile_picture" validate:"max=255"`
}
