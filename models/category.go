package models

import (
	"time"
)

// Category groups posts under a public slug. Unpublishing a category hides
// its posts from public listings without deleting them.
type Category struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	Title       string    `json:"title" gorm:"size:256;not null"`
	Description string    `json:"description" gorm:"type:text"`
	Slug        string    `json:"slug" gorm:"uniqueIndex;size:256;not null"`
	IsPublished bool      `json:"is_published" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
}
