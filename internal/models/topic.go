package models

import "time"

// Topic is a forum topic. Only the columns the following filter needs.
type Topic struct {
	ID        uint   `gorm:"primaryKey"`
	Title     string `gorm:"not null"`
	UserID    uint   `gorm:"index"`
	Posts     []Post
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Post is a single post inside a topic.
type Post struct {
	ID        uint `gorm:"primaryKey"`
	TopicID   uint `gorm:"index;not null"`
	UserID    uint `gorm:"index;not null"`
	Raw       string
	CreatedAt time.Time
	UpdatedAt time.Time
}
