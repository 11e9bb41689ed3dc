package models

import (
	"time"

	"gorm.io/gorm"
)

// User corresponds to the users table in the database.
// These are staff accounts for the resolution workflow, not rider accounts.
type User struct {
	ID           int64          `json:"id" gorm:"primaryKey;autoIncrement"`
	Username     string         `json:"username" gorm:"column:username;unique;not null;size:255"`
	PasswordHash string         `json:"-" gorm:"column:password_hash;not null;size:255"` // never exposed through JSON
	Role         string         `json:"role" gorm:"column:role;not null;default:'staff';size:50"`
	CreatedAt    time.Time      `json:"createdAt" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt    time.Time      `json:"updatedAt" gorm:"column:updated_at;not null;autoUpdateTime"`
	DeletedAt    gorm.DeletedAt `json:"deletedAt,omitempty" gorm:"index"`
}

// TableName specifies the database table name for the User struct.
func (User) TableName() string {
	return "users"
}
