package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsPubliclyVisible(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	categoryID := uint(7)
	published := &Category{ID: categoryID, IsPublished: true}
	hidden := &Category{ID: categoryID, IsPublished: false}

	tests := []struct {
		name string
		post *Post
		want bool
	}{
		{"published in published category", &Post{IsPublished: true, PubDate: now.Add(-time.Minute), CategoryID: &categoryID, Category: published}, true},
		{"pub date equal to now", &Post{IsPublished: true, PubDate: now, CategoryID: &categoryID, Category: published}, true},
		{"no category", &Post{IsPublished: true, PubDate: now.Add(-time.Minute)}, true},
		{"unpublished", &Post{IsPublished: false, PubDate: now.Add(-time.Minute), CategoryID: &categoryID, Category: published}, false},
		{"scheduled", &Post{IsPublished: true, PubDate: now.Add(time.Second), CategoryID: &categoryID, Category: published}, false},
		{"hidden category", &Post{IsPublished: true, PubDate: now.Add(-time.Minute), CategoryID: &categoryID, Category: hidden}, false},
		{"category not loaded", &Post{IsPublished: true, PubDate: now.Add(-time.Minute), CategoryID: &categoryID}, false},
		{"nil post", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPubliclyVisible(tt.post, now))
		})
	}
}

func TestCanRead(t *testing.T) {
	now := time.Now()
	draft := &Post{AuthorID: 1, IsPublished: false, PubDate: now.Add(time.Hour)}

	assert.True(t, CanRead(draft, 1, now))
	assert.False(t, CanRead(draft, 2, now))
	assert.False(t, CanRead(draft, 0, now))
	assert.False(t, CanRead(nil, 1, now))
}

func TestValidationErrorMessage(t *testing.T) {
	err := NewValidationError("title", "required").Add("category_id", "unknown category")
	assert.Equal(t, "validation failed: category_id: unknown category; title: required", err.Error())
}
