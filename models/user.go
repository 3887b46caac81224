package models

import "time"

const UserTable = "sdh_users"

const (
	RoleAdmin  = "ADMIN"
	RoleReader = "READER"
)

type User struct {
	ID           string `gorm:"primaryKey;type:uuid" json:"id"`
	Username     string `gorm:"uniqueIndex;size:255;not null" json:"username"`
	DisplayName  string `gorm:"size:255;not null" json:"displayName"`
	PasswordHash string `gorm:"size:64;not null" json:"-"`
	Role         string `gorm:"size:20;not null;default:'READER'" json:"role"`

	LastLoginAt *time.Time `gorm:"index" json:"lastLoginAt,omitempty"`
	LastSeenAt  *time.Time `gorm:"index" json:"lastSeenAt,omitempty"`
	LoginCount  int64      `gorm:"not null;default:0" json:"loginCount"`
	LastLoginIP string     `gorm:"size:45" json:"-"`
	LastLoginUA string     `gorm:"size:255" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (User) TableName() string { return UserTable }

func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
