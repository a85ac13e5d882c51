package models

import "time"

// IsPubliclyVisible reports whether post may be shown to readers other than
// its author. A post without a category passes the category check.
func IsPubliclyVisible(post *Post, now time.Time) bool {
	if post == nil || !post.IsPublished {
		return false
	}
	if post.PubDate.After(now) {
		return false
	}
	if post.CategoryID != nil && (post.Category == nil || !post.Category.IsPublished) {
		return false
	}
	return true
}

// CanRead applies the detail-view rule: authors always read their own posts.
func CanRead(post *Post, viewerID uint, now time.Time) bool {
	if post == nil {
		return false
	}
	if viewerID != 0 && post.AuthorID == viewerID {
		return true
	}
	return IsPubliclyVisible(post, now)
}
