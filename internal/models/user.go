package models

import (
	"time"
)

// User roles and membership badges.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"

	BadgeBronze = "bronze"
	BadgeGold   = "gold"
)

// User is an account. Email doubles as the identity the vote reconciler and
// author-scoped listings key on.
type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Email       string    `gorm:"not null;uniqueIndex" json:"email"`
	Password    string    `gorm:"not null" json:"-"`
	Image       string    `json:"image"`
	Role        string    `gorm:"not null;default:'user'" json:"role"`
	Badge       string    `gorm:"not null;default:'bronze'" json:"badge"`
	IsMember    bool      `gorm:"not null;default:false" json:"is_member"`
	CreatedAt   time.Time `json:"created_at"`
	LastLoginAt time.Time `json:"last_login_time"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
