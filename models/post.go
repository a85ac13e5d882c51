package models

import (
	"time"
)

type Post struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	Title       string    `json:"title" gorm:"size:256;not null"`
	Text        string    `json:"text" gorm:"type:text;not null"`
	PubDate     time.Time `json:"pub_date" gorm:"not null;index"`
	AuthorID    uint      `json:"author_id" gorm:"not null;index"`
	Author      User      `json:"author" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	LocationID  *uint     `json:"location_id"`
	Location    *Location `json:"location,omitempty" gorm:"foreignKey:LocationID;constraint:OnDelete:SET NULL"`
	CategoryID  *uint     `json:"category_id"`
	Category    *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	Image       string    `json:"image,omitempty" gorm:"size:255"`
	IsPublished bool      `json:"is_published" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`

	// Filled by listing queries with a COUNT subquery; never stored.
	CommentCount int64 `json:"comment_count" gorm:"->;-:migration"`
}
