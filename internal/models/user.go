package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents the users table in database.
type User struct {
	ID             uint   `gorm:"primaryKey"`
	Username       string `gorm:"unique;not null"`
	Name           string
	PasswordHash   string `gorm:"not null"`
	AvatarTemplate string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"` // for soft deletes
}

// UserCustomField is one row of the generic per-user key-value store.
// The follow lists live here under the "following" and "followers" names,
// encoded as comma-joined decimal id strings.
type UserCustomField struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"not null;uniqueIndex:idx_user_custom_fields_user_name"`
	Name      string `gorm:"not null;uniqueIndex:idx_user_custom_fields_user_name"`
	Value     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Custom field names owned by the follow feature.
const (
	FollowingField = "following"
	FollowersField = "followers"
)
